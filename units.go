package stylesys

import (
	"strconv"
)

// ToCSSUnit turns bare numbers into pixel lengths. Strings and any other
// values are returned unchanged.
//
//	ToCSSUnit(10)      // "10px"
//	ToCSSUnit(1.5)     // "1.5px"
//	ToCSSUnit("50%")   // "50%"
func ToCSSUnit(value any) any {
	if n, ok := number(value); ok {
		return n + "px"
	}
	return value
}

// number formats Go numeric kinds with the shortest representation.
func number(value any) (string, bool) {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}
