package httpx

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/mbolis/reward-web/log"
)

// Validator checks request bodies before they are forwarded to the backend.
// Field errors are reported under their JSON names.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

func (v *Validator) Var(field any, tag string) error {
	return v.validate.Var(field, tag)
}

// Will log a validation failure, and send a 422 response listing the
// offending fields; other errors are answered with 400
func LogValidation(w http.ResponseWriter, r *http.Request, code string, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		log.Debugf("%s: %s", code, err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Namespace()
		if _, rest, found := strings.Cut(name, "."); found && !strings.HasPrefix(name, "[") {
			name = rest
		}
		fields[name] = fe.Tag()
	}
	log.Debugf("%s: invalid fields %v", code, fields)

	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, ErrorBody{Code: "VALIDATION_FAILED", Fields: fields})
}
