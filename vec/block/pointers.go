package block

import "reflect"

// rejectPointerElems returns ErrPointerElems when T contains pointers at
// any depth. Used by NewMapped on every platform so the contract does not
// vary with the backend actually chosen.
func rejectPointerElems[T any]() error {
	if typeHasPointers(reflect.TypeOf((*T)(nil)).Elem()) {
		return ErrPointerElems
	}
	return nil
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, channels, funcs, interfaces, strings.
		return true
	}
}
