package model

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// fieldValidate checks string constraints on field values.
var fieldValidate *validator.Validate

func init() {
	fieldValidate = validator.New()
}

// LangString is a piece of text tagged with an optional language code.
type LangString struct {
	Text string `json:"text" yaml:"text" validate:"required"`
	Lang string `json:"lang,omitempty" yaml:"lang,omitempty"`
}

func (l LangString) String() string {
	if l.Lang == "" {
		return l.Text
	}
	return l.Text + "@" + l.Lang
}

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected string, got %T", ErrInvalidType, v)
	}
	return strings.TrimSpace(s), nil
}

// asOptionalString returns "" for nil and rejects strings that trim to empty.
func asOptionalString(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	s, err := asString(v)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("%w: must not be empty when set", ErrInvalidValue)
	}
	return s, nil
}

// asStrings accepts []string or a single string, trims every entry and
// rejects empty ones.
func asStrings(v any) ([]string, error) {
	var in []string
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		in = []string{t}
	case []string:
		in = t
	default:
		return nil, fmt.Errorf("%w: expected []string, got %T", ErrInvalidType, v)
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	if err := fieldValidate.Var(out, "dive,required"); err != nil {
		return nil, fmt.Errorf("%w: empty strings are not allowed", ErrInvalidValue)
	}
	return out, nil
}

// asLangStrings accepts LangString, []LangString, string or []string.
func asLangStrings(v any) ([]LangString, error) {
	var in []LangString
	switch t := v.(type) {
	case nil:
		return nil, nil
	case LangString:
		in = []LangString{t}
	case []LangString:
		in = t
	case string:
		in = []LangString{{Text: t}}
	case []string:
		in = make([]LangString, len(t))
		for i, s := range t {
			in[i] = LangString{Text: s}
		}
	default:
		return nil, fmt.Errorf("%w: expected []LangString, got %T", ErrInvalidType, v)
	}
	out := make([]LangString, len(in))
	for i, l := range in {
		l.Text = strings.TrimSpace(l.Text)
		l.Lang = strings.TrimSpace(l.Lang)
		if err := fieldValidate.Struct(l); err != nil {
			return nil, fmt.Errorf("%w: empty text is not allowed", ErrInvalidValue)
		}
		out[i] = l
	}
	return out, nil
}

func asBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrInvalidType, v)
	}
	return b, nil
}

func asInt(v any) (int, error) {
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("%w: expected int, got %T", ErrInvalidType, v)
	}
	return n, nil
}

func asTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t != nil {
			return *t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: expected time.Time, got %T", ErrInvalidType, v)
}

func asOptionalTime(v any) (*time.Time, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case *time.Time:
		if t == nil {
			return nil, nil
		}
		c := *t
		return &c, nil
	case time.Time:
		return &t, nil
	}
	return nil, fmt.Errorf("%w: expected time.Time, got %T", ErrInvalidType, v)
}

// isNilNode reports whether n is nil or a typed nil pointer.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
