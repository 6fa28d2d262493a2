package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags for common validations.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// La contraseña debe tener al menos 6 caracteres
		v.RegisterAlias("pwd", "min=6")
	}
}

// ToDetails converts binding errors into a map[field]message suitable for
// the error detail of the API envelope. Messages are user-facing Spanish.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "JSON inválido"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "payload inválido"}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un email válido"
	case "min", "pwd":
		if fe.Tag() == "pwd" {
			param = "6"
		}
		return "debe tener al menos " + param + " caracteres"
	case "max":
		return "debe tener como máximo " + param + " caracteres"
	case "oneof":
		return "debe ser uno de: " + strings.Join(strings.Fields(param), ", ")
	case "uri", "url":
		return "debe ser una URL válida"
	default:
		if param != "" {
			return "no cumple la regla '" + fe.Tag() + "' con parámetro '" + param + "'"
		}
		return "no cumple la regla '" + fe.Tag() + "'"
	}
}
