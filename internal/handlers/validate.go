package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/hbc-community/community-backend/internal/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// "inphone" enforces the +91xxxxxxxxxx phone format used across the
	// submission and update payloads
	_ = v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
		return utils.ValidPhone(fl.Field().String())
	})

	return v
}

// phoneFormatViolated reports whether a validation error was caused by the
// phone-format rule, so handlers can return the dedicated error body.
func phoneFormatViolated(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == "inphone" {
			return true
		}
	}
	return false
}
