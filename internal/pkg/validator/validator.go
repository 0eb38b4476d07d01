package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate - struct validation
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// FailedFields returns the json names of the fields that failed validation.
func FailedFields(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field())
	}
	return fields
}
