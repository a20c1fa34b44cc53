package middleware

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fittrackapp/fittrack-backend/internal/dto"
)

const (
	bodyKey = "validated_body"
	rawKey  = "raw_body"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the json field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateBody parses the JSON request body into T, validates it, and makes
// both the typed value and the raw field map available to the handler. Any
// parse or field failure rejects with 400 and the handler never runs.
func ValidateBody[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := make(map[string]json.RawMessage)
		body := c.Body()
		if len(body) == 0 {
			body = []byte("{}")
		}
		if err := json.Unmarshal(body, &raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.NewError(fiber.StatusBadRequest, "Invalid request body"))
		}

		var parsed T
		if err := json.Unmarshal(body, &parsed); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.NewValidationError(fiber.StatusBadRequest, unmarshalFieldErrors(err)))
		}

		if err := validate.Struct(&parsed); err != nil {
			var verrs validator.ValidationErrors
			fields := make(map[string][]string)
			if errors.As(err, &verrs) {
				for _, fe := range verrs {
					fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
				}
			} else {
				fields["body"] = []string{err.Error()}
			}
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.NewValidationError(fiber.StatusBadRequest, fields))
		}

		c.Locals(bodyKey, &parsed)
		c.Locals(rawKey, raw)
		return c.Next()
	}
}

// BodyFrom returns the typed body stored by ValidateBody.
func BodyFrom[T any](c *fiber.Ctx) (*T, bool) {
	body, ok := c.Locals(bodyKey).(*T)
	return body, ok
}

// HasField reports whether the raw JSON body contained the field at all,
// which lets partial updates tell "absent" from "explicit null".
func HasField(c *fiber.Ctx, name string) bool {
	raw, ok := c.Locals(rawKey).(map[string]json.RawMessage)
	if !ok {
		return false
	}
	_, present := raw[name]
	return present
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "failed validation: " + fe.Tag()
	}
}

func unmarshalFieldErrors(err error) map[string][]string {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok && typeErr.Field != "" {
		return map[string][]string{
			typeErr.Field: {"invalid value: expected " + typeErr.Type.String()},
		}
	}
	return map[string][]string{"body": {err.Error()}}
}
