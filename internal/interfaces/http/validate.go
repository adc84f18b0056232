package http

import (
	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; validator es seguro para uso concurrente.
var validate = validator.New()

// validationFields convierte los errores del validador en un mapa campo → regla
// para el detalle de ErrorResponse.Fields.
func validationFields(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
