package validator

import (
	"reflect"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	models "github.com/dubaitostars/starclient/internal"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("iso_date", validateISODate)
	v.RegisterValidation("trip_dates", validateTripDates)
	v.RegisterValidation("future_date", validateFutureDate)
	v.RegisterValidation("strong_password", validateStrongPassword)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := models.ParseWireDate(fl.Field().String())
	return err == nil
}

// validateTripDates checks a return date against the sibling
// DepartureDate field: the trip must be at least one day long.
func validateTripDates(fl validator.FieldLevel) bool {
	ret, err := models.ParseWireDate(fl.Field().String())
	if err != nil {
		return false
	}

	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	depField := parent.FieldByName("DepartureDate")
	if !depField.IsValid() || depField.Kind() != reflect.String {
		return false
	}
	dep, err := models.ParseWireDate(depField.String())
	if err != nil {
		return false
	}
	return ret.After(dep)
}

func validateFutureDate(fl validator.FieldLevel) bool {
	date, err := models.ParseWireDate(fl.Field().String())
	if err != nil {
		return false
	}
	return date.After(time.Now())
}

// validateStrongPassword mirrors the account service's rule: at least 8
// characters with an uppercase letter, a lowercase letter and a digit.
func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
