package utils

import (
	"arogya-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("record_type", validateRecordType)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "migrant" || value == "doctor" || value == "govt" || value == "admin"
}

func validateRecordType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case "doctor_visit", "lab_report", "vaccination", "prescription":
		return true
	}
	return false
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	re := regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
	return re.MatchString(phoneNumber)
}
