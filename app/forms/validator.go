package forms

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	slugRegexp     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	usernameRegexp = regexp.MustCompile(`^[\p{L}\p{N}@.+\-_]+$`)

	validate = newValidator()
)

const (
	RequiredMessage = "Обязательное поле."
	SlugMessage     = "Значение должно состоять только из латинских букв, цифр, знаков подчеркивания или дефиса."
	UsernameMessage = "Имя пользователя может содержать только буквы, цифры и символы @/./+/-/_."
	MismatchMessage = "Введенные пароли не совпадают."
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report the form field name instead of the struct field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegexp.MatchString(fl.Field().String())
	})

	return v
}

// validateStruct runs the struct tags of s and records every failure on f.
func validateStruct(f *Form, s interface{}) {
	err := validate.Struct(s)
	if err == nil {
		return
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		f.AddError(NonFieldErrors, err.Error())
		return
	}

	for _, fe := range errs {
		f.AddError(fe.Field(), message(fe))
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return RequiredMessage
	case "max":
		return fmt.Sprintf("Убедитесь, что это значение содержит не более %s символов (сейчас %d).", fe.Param(), len([]rune(fe.Value().(string))))
	case "min":
		return fmt.Sprintf("Убедитесь, что это значение содержит не менее %s символов (сейчас %d).", fe.Param(), len([]rune(fe.Value().(string))))
	case "slug":
		return SlugMessage
	case "username":
		return UsernameMessage
	case "eqfield":
		return MismatchMessage
	default:
		return "Введите правильное значение."
	}
}
