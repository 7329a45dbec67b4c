package http

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
)

var (
	nombrePersonaRe = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ ]+$`)
	telefonoRe      = regexp.MustCompile(`^[+]?[0-9\s\-()]+$`)
)

// Validator valida la forma de los cuerpos de petición antes de invocar el caso de uso.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// NewValidator registra las reglas propias del registro de clientes. now puede ser nil (time.Now).
func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	val := &Validator{v: validator.New(), now: now}

	// Nombres de campo como en el JSON.
	val.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	val.v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		f, ok := field.Interface().(dto.Fecha)
		if !ok || f.IsZero() {
			return nil
		}
		return f.Time
	}, dto.Fecha{})

	reglas := map[string]validator.Func{
		"notblank":        validators.NotBlank,
		"nombre_persona":  patron(nombrePersonaRe),
		"telefono":        patron(telefonoRe),
		"ocupacion":       validarOcupacion,
		"email_recortado": val.validarEmail,
		"fecha_pasada":    val.validarFechaPasada,
	}
	for tag, fn := range reglas {
		if err := val.v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("registrar validación %s: %v", tag, err))
		}
	}
	return val
}

func patron(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(strings.TrimSpace(fl.Field().String()))
	}
}

func validarOcupacion(fl validator.FieldLevel) bool {
	_, err := entity.ParseOcupacion(fl.Field().String())
	return err == nil
}

func (val *Validator) validarEmail(fl validator.FieldLevel) bool {
	return val.v.Var(strings.TrimSpace(fl.Field().String()), "email") == nil
}

// validarFechaPasada la fecha debe ser anterior al día de hoy.
func (val *Validator) validarFechaPasada(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	y, m, d := val.now().Date()
	hoy := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	fy, fm, fd := t.Date()
	return time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC).Before(hoy)
}

// Struct valida s y devuelve los errores por campo (nil si es válido).
func (val *Validator) Struct(s any) map[string]string {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, ok := out[fe.Field()]; ok {
			continue
		}
		out[fe.Field()] = mensajeCampo(fe)
	}
	return out
}

func mensajeCampo(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "El campo es obligatorio"
	case "max":
		return fmt.Sprintf("No puede exceder %s caracteres", fe.Param())
	case "nombre_persona":
		return "Solo puede contener letras y espacios"
	case "telefono":
		return "El teléfono solo puede contener números, espacios, guiones, paréntesis y el signo +"
	case "email_recortado":
		return "El correo electrónico debe tener un formato válido"
	case "ocupacion":
		return "La ocupación debe ser Empleado, Independiente o Pensionado"
	case "fecha_pasada":
		return "La fecha de nacimiento debe ser anterior a hoy"
	default:
		return "Valor inválido"
	}
}
