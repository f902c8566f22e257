package person

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationMessages flattens validator errors into the field -> messages map
// used as the 400 response body, keyed by the lower-case JSON field name.
func validationMessages(err error) map[string][]string {
	messages := map[string][]string{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["detail"] = []string{err.Error()}
		return messages
	}

	for _, fieldError := range validationErrors {
		field := strings.ToLower(fieldError.Field())

		var msg string
		switch fieldError.Tag() {
		case "required":
			msg = "is required"
		case "max":
			if fieldError.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fieldError.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fieldError.Param())
			}
		default:
			msg = fmt.Sprintf("failed on the %s rule", fieldError.Tag())
		}

		messages[field] = append(messages[field], msg)
	}

	return messages
}
