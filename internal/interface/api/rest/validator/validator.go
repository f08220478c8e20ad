package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"pim-api/internal/domain/page"
)

var (
	codeRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_]{0,99}$`)

	std = New()
)

func ValidatePage(pg string) (int, error) {
	if pg == "" {
		return 1, nil
	}
	p, err := strconv.Atoi(pg)
	if err != nil || p < 1 {
		return 0, errors.New("page must be a positive integer")
	}

	return p, nil
}

func ValidateLimit(limit string) (int, error) {
	if limit == "" {
		return page.DefaultLimit, nil
	}
	l, err := strconv.Atoi(limit)
	if err != nil || l < 1 || l > page.MaxLimit {
		return 0, fmt.Errorf("limit must be an integer between 1 and %d", page.MaxLimit)
	}

	return l, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// Validator wraps go-playground/validator and reports fields by their wire names.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	registerRules(v)

	return &Validator{validate: v}
}

func registerRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation tag %q: %v", tag, err))
		}
	}

	// code: family and attribute codes, lowercased by the service afterwards.
	mustRegister("code", func(fl validator.FieldLevel) bool {
		return codeRe.MatchString(fl.Field().String())
	})
}

// Struct returns nil when i is valid, otherwise field name -> message.
func (v *Validator) Struct(i any) map[string]string {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	errs := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		errs[fieldPath(fe)] = message(fe)
	}
	return errs
}

// ValidateStruct runs the shared validator.
func ValidateStruct(i any) map[string]string { return std.Struct(i) }

// fieldPath drops the root struct name: "Request.attributes[1]" -> "attributes[1]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "code":
		return "must start with a letter or digit and contain only letters, digits and '_'"
	default:
		return fmt.Sprintf("is invalid (failed on %q)", fe.Tag())
	}
}
