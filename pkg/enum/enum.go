package enum

import (
	"fmt"
	"reflect"
)

var enumManager = map[string]any{}

type enum[T comparable] struct {
	toEnum map[string]T
	values *[]T
}

// New registers value as a member of its type's closed set and returns it.
// Registration order is preserved by Values.
func New[T comparable](value T) T {
	v := reflect.ValueOf(value)
	t := v.Type()
	if _, ok := enumManager[t.Name()]; !ok {
		enumManager[t.Name()] = enum[T]{toEnum: make(map[string]T), values: &[]T{}}
	}

	e := enumManager[t.Name()].(enum[T])
	if _, ok := e.toEnum[v.String()]; !ok {
		*e.values = append(*e.values, value)
	}
	e.toEnum[v.String()] = value
	return value
}

func ToEnum[T comparable](s string) (T, error) {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT).Name()]
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.(enum[T]).toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return t, nil
}

// Values returns every registered value of T in registration order.
func Values[T comparable]() []T {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT).Name()]
	if !ok {
		return nil
	}

	values := *e.(enum[T]).values
	return append([]T(nil), values...)
}

func IsValid[T comparable](value T) bool {
	_, err := ToEnum[T](reflect.ValueOf(value).String())
	return err == nil
}
