package compare

import "reflect"

// IsNil 判断接口里装的是不是 nil，包括带类型的 nil 指针、map、slice、chan、func
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	vi := reflect.ValueOf(i)
	switch vi.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return vi.IsNil()
	}
	return false
}
