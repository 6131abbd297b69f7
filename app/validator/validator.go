// Package validator checks decoded request payloads against their `validate` struct tags.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/traductor/traductor/app/enum"
)

// ErrUnsupportedLang marks validation failures caused by an unknown language code.
var ErrUnsupportedLang = errors.New("unsupported language code")

// FieldError describes one failed field, named by its json tag.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// Error is returned by Struct when a payload fails validation.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.message())
	}
	return strings.Join(msgs, "; ")
}

// Is makes errors.Is(err, ErrUnsupportedLang) true when any field failed a language check.
func (e *Error) Is(target error) bool {
	if target != ErrUnsupportedLang { //nolint:errorlint // sentinel comparison
		return false
	}
	for _, f := range e.Fields {
		if f.Tag == "lang" || f.Tag == "target_lang" {
			return true
		}
	}
	return false
}

func (f FieldError) message() string {
	switch f.Tag {
	case "required":
		return fmt.Sprintf("missing field '%s'", f.Field)
	case "notblank":
		return fmt.Sprintf("field '%s' is empty", f.Field)
	case "lang", "target_lang":
		return fmt.Sprintf("%s in '%s'", ErrUnsupportedLang, f.Field)
	default:
		if f.Param != "" {
			return fmt.Sprintf("field '%s' failed %s=%s", f.Field, f.Tag, f.Param)
		}
		return fmt.Sprintf("field '%s' failed %s", f.Field, f.Tag)
	}
}

// Service validates structs. Safe for concurrent use.
type Service struct {
	validate *validator.Validate
}

// NewService makes a validator with the language tags registered:
// `lang` accepts any known code including auto, `target_lang` only translation targets.
func NewService() *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// registration fails only on empty tag names or nil funcs
	_ = v.RegisterValidation("lang", func(fl validator.FieldLevel) bool {
		_, err := enum.ParseLang(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("target_lang", func(fl validator.FieldLevel) bool {
		l, err := enum.ParseLang(fl.Field().String())
		return err == nil && l.IsTarget()
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Service{validate: v}
}

// Struct validates s and returns *Error listing the failed fields.
func (s *Service) Struct(st any) error {
	err := s.validate.Struct(st)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("can't validate: %w", err)
	}
	res := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		res.Fields = append(res.Fields, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return res
}

// SupportedTargets returns codes accepted as translation target.
func (s *Service) SupportedTargets() []string {
	langs := enum.TargetLangs()
	res := make([]string, 0, len(langs))
	for _, l := range langs {
		res = append(res, l.String())
	}
	return res
}
