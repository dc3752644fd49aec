package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
)

// Validator valida DTOs con las etiquetas `validate` y devuelve domain.BadRequest.
type Validator struct {
	v *validator.Validate
}

// NewValidator los nombres de campo en los mensajes son los de json (o query).
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = f.Tag.Get("query")
		}
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal es un struct: se compara como número en gte/gt.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return &Validator{v: v}
}

// Struct BadRequest con el primer campo inválido.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return domain.BadRequest("%s", fieldMessage(verrs[0]))
	}
	return domain.BadRequest("datos inválidos: %v", err)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es obligatorio", field)
	case "email":
		return fmt.Sprintf("el campo %s debe ser un email válido", field)
	case "uuid":
		return fmt.Sprintf("el campo %s debe ser un UUID válido", field)
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("el campo %s debe tener al menos %s elementos o caracteres", field, fe.Param())
		}
		return fmt.Sprintf("el campo %s debe ser mayor o igual a %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("el campo %s admite como máximo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("el campo %s debe ser menor o igual a %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("el campo %s no puede ser negativo", field)
	case "gt":
		return fmt.Sprintf("el campo %s debe ser mayor que %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("el campo %s debe ser uno de: %s", field, fe.Param())
	}
	return fmt.Sprintf("el campo %s no cumple la regla %s", field, fe.Tag())
}

// ── Lectura de la petición ───────────────────────────────────────────────────

// bindBody JSON del cuerpo más validación.
func bindBody(c *fiber.Ctx, val *Validator, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.BadRequest("cuerpo de la petición inválido")
	}
	return val.Struct(out)
}

// bindQuery parámetros de consulta más validación.
func bindQuery(c *fiber.Ctx, val *Validator, out any) error {
	if err := c.QueryParser(out); err != nil {
		return domain.BadRequest("parámetros de consulta inválidos")
	}
	return val.Struct(out)
}

// paramID id de la ruta; BadRequest si no es un UUID.
func paramID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, domain.BadRequest("id inválido: %q", c.Params("id"))
	}
	return id, nil
}
