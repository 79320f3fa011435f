package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/campus-labs/college-enroll-api/internal/models"
	appErrors "github.com/campus-labs/college-enroll-api/pkg/errors"
)

var (
	studentIDPattern  = regexp.MustCompile(`^S\d{5}$`)
	courseCodePattern = regexp.MustCompile(`^[A-Z]{4}\d{4}$`)
)

// NewValidator returns a validator with the domain rules registered. Field
// names in error messages come from the json tags so clients see the names
// they sent.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("student_id", func(fl validator.FieldLevel) bool {
		return studentIDPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("course_code", func(fl validator.FieldLevel) bool {
		return courseCodePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("program", oneOf(models.Programs))
	_ = v.RegisterValidation("semester", oneOf(models.Semesters))
	_ = v.RegisterValidation("grade", oneOf(models.Grades))

	return v
}

func oneOf(allowed []string) validator.Func {
	set := make(map[string]struct{}, len(allowed))
	for _, value := range allowed {
		set[value] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}

// fieldError converts a validator failure into a client error naming the
// first offending field.
func fieldError(err error) *appErrors.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	fe := verrs[0]
	return appErrors.Clone(appErrors.ErrValidation, fieldMessage(fe))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "student_id":
		return fmt.Sprintf("%s must be 'S' followed by 5 digits (e.g. S12345)", fe.Field())
	case "course_code":
		return fmt.Sprintf("%s must be 4 letters followed by 4 digits (e.g. COMP1234)", fe.Field())
	case "program":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(models.Programs, ", "))
	case "semester":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(models.Semesters, ", "))
	case "grade":
		return fmt.Sprintf("%s is not a valid grade", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
