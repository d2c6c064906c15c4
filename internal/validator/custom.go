package validator

import (
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var unitSystems = map[string]struct{}{
	"metric":   {},
	"imperial": {},
}

func finiteValidator(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		v := f.Float()
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	default:
		return false
	}
}

func unitSystemValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, known := unitSystems[val]
	return known
}
