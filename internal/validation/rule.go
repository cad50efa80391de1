// Package validation turns untrusted request parameters into typed values.
//
// A Rule describes the constraints on one named input. A Form holds the raw
// parameters of one request and evaluates rules against them, collecting
// every failure instead of stopping at the first one:
//
//	form := validation.NewForm(c.Request.PostForm)
//	id := validation.Input(form, "eoiId", validation.Rule[int]{
//		Name:     "EOI ID",
//		Required: true,
//		Filter:   validation.FilterDigits,
//		Mapper:   validation.IntMapper{},
//	})
//	if form.HasErrors() {
//		// 400 with form.Messages()
//	}
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Filter is a format check that needs more than a regular expression.
type Filter int

const (
	FilterNone Filter = iota
	// FilterEmail accepts RFC 5322 addresses.
	FilterEmail
	// FilterDigits accepts ASCII digits only.
	FilterDigits
)

var validate = validator.New()

func (f Filter) check(s string) *Failure {
	var tag, phrase string
	switch f {
	case FilterEmail:
		tag, phrase = "email", "is not a valid email address"
	case FilterDigits:
		tag, phrase = "number", "must contain digits only"
	default:
		return nil
	}
	if err := validate.Var(s, tag); err != nil {
		return &Failure{Kind: KindBadFormat, Phrase: phrase}
	}
	return nil
}

// Rule is the constraint set for one input. Zero MinLength/MaxLength mean
// unbounded. With no Mapper, T must be string and the trimmed input is returned.
type Rule[T any] struct {
	Name      string
	Required  bool
	Filter    Filter
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Mapper    Mapper[T]
}

// Result is the outcome of applying a Rule to one value: a value, null, or a failure.
type Result[T any] struct {
	Value T
	Null  bool
	Err   *Failure
}

func (r Result[T]) OK() bool { return r.Err == nil }

// Apply checks raw in a fixed order: presence, filter, length, pattern, mapping.
// The first failing check decides the result.
func (r Rule[T]) Apply(raw string) Result[T] {
	s := strings.TrimSpace(raw)
	if s == "" {
		if r.Required {
			return Result[T]{Err: newFailure(KindRequired, 0)}
		}
		return Result[T]{Null: true}
	}

	if f := r.Filter.check(s); f != nil {
		return Result[T]{Err: f}
	}

	n := utf8.RuneCountInString(s)
	if r.MinLength > 0 && n < r.MinLength {
		return Result[T]{Err: newFailure(KindTooShort, r.MinLength)}
	}
	if r.MaxLength > 0 && n > r.MaxLength {
		return Result[T]{Err: newFailure(KindTooLong, r.MaxLength)}
	}

	if r.Pattern != nil && !r.Pattern.MatchString(s) {
		return Result[T]{Err: newFailure(KindBadFormat, 0)}
	}

	if r.Mapper == nil {
		v, ok := any(s).(T)
		if !ok {
			return Result[T]{Err: newFailure(KindMapFailed, 0)}
		}
		return Result[T]{Value: v}
	}

	v, err := r.Mapper.Map(s)
	if err != nil {
		return Result[T]{Err: &Failure{Kind: KindMapFailed, Phrase: phraseOf(err)}}
	}
	return Result[T]{Value: v}
}

func (r Rule[T]) readableName(key string) string {
	if r.Name != "" {
		return r.Name
	}
	return key
}
