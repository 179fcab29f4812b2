package validators

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("rating_value", validateRatingValue)
	validate.RegisterValidation("license_plate", validateLicensePlate)
	validate.RegisterValidation("future_date", validateFutureDate)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Fields flattens the errors into a field -> message map for API responses.
func (v ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(v))
	for _, err := range v {
		fields[err.Field] = err.Message
	}
	return fields
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationError := ValidationError{
				Field:   strings.ToLower(err.Field()),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: messageForTag(err.Tag(), err.Param()),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", param)
	case "max":
		return fmt.Sprintf("must be at most %s", param)
	case "object_id":
		return "must be a valid object ID"
	case "phone_number":
		return "must be a valid phone number"
	case "rating_value":
		return "rating must be between 1 and 5"
	case "license_plate":
		return "must be a valid license plate"
	case "future_date":
		return "must be a date in the future"
	default:
		return fmt.Sprintf("failed %s validation", tag)
	}
}

func validateObjectID(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case primitive.ObjectID:
		return !v.IsZero()
	case string:
		_, err := primitive.ObjectIDFromHex(v)
		return err == nil
	default:
		return false
	}
}

var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phone := strings.ReplaceAll(fl.Field().String(), " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return phoneRegex.MatchString(phone)
}

func validateRatingValue(fl validator.FieldLevel) bool {
	rating := fl.Field().Int()
	return rating >= 1 && rating <= 5
}

// License plates are stored uppercased without separators. Accepts 2 to 10
// alphanumeric characters, which covers UK and most EU formats.
var licensePlateRegex = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

func validateLicensePlate(fl validator.FieldLevel) bool {
	plate := strings.ToUpper(strings.ReplaceAll(fl.Field().String(), " ", ""))
	return licensePlateRegex.MatchString(plate)
}

func validateFutureDate(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(time.Time)
	if !ok {
		if ptr, okPtr := fl.Field().Interface().(*time.Time); okPtr && ptr != nil {
			date = *ptr
		} else {
			return false
		}
	}
	return date.After(time.Now())
}

// NormalizeLicensePlate uppercases and strips spaces so the unique index on
// license_plate cannot be dodged by formatting.
func NormalizeLicensePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(plate, " ", ""))
}
