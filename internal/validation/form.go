package validation

import (
	"net/url"

	"go.uber.org/multierr"
)

// Form is the validation context of one request. Errors are append-only.
// A Form is not safe for concurrent use; create one per request.
type Form struct {
	values url.Values
	errors []*FieldError
}

// NewForm wraps raw request parameters. List parameters may be sent either as
// repeated "key" or as repeated "key[]".
func NewForm(values url.Values) *Form {
	if values == nil {
		values = url.Values{}
	}
	return &Form{values: values}
}

func (f *Form) scalar(key string) string {
	if v, ok := f.values[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

func (f *Form) list(key string) []string {
	out := append([]string(nil), f.values[key]...)
	return append(out, f.values[key+"[]"]...)
}

// Input evaluates rule against the scalar parameter key. It returns nil when
// the value is absent and optional, or when it fails; failures are recorded
// on the form.
func Input[T any](f *Form, key string, rule Rule[T]) *T {
	raw := f.scalar(key)
	res := rule.Apply(raw)
	if res.Err != nil {
		f.errors = append(f.errors, &FieldError{
			Key:      key,
			Name:     rule.readableName(key),
			Original: raw,
			Failure:  *res.Err,
		})
		return nil
	}
	if res.Null {
		return nil
	}
	v := res.Value
	return &v
}

// InputOr is Input with a fallback for absent or invalid values. Failures are
// still recorded.
func InputOr[T any](f *Form, key string, rule Rule[T], fallback T) T {
	if v := Input(f, key, rule); v != nil {
		return *v
	}
	return fallback
}

// InputArray evaluates rule against every member of the list parameter key.
// rule.Required applies to the list as a whole; a blank member is always a
// failure. On success the values keep their input order. If any member fails,
// one error naming every failing member is recorded and nil is returned.
func InputArray[T any](f *Form, key string, rule Rule[T]) []T {
	raws := f.list(key)
	if len(raws) == 0 {
		if rule.Required {
			f.errors = append(f.errors, &FieldError{
				Key:     key,
				Name:    rule.readableName(key),
				Failure: *newFailure(KindRequired, 0),
			})
		}
		return nil
	}

	member := rule
	member.Required = true

	out := make([]T, 0, len(raws))
	var failed []MemberError
	for i, raw := range raws {
		res := member.Apply(raw)
		if res.Err != nil {
			failed = append(failed, MemberError{Index: i, Value: raw, Failure: *res.Err})
			continue
		}
		out = append(out, res.Value)
	}

	if len(failed) > 0 {
		f.errors = append(f.errors, &FieldError{
			Key:     key,
			Name:    rule.readableName(key),
			Failure: Failure{Kind: KindInvalidMembers, Phrase: phraseLooksWrong},
			Members: failed,
		})
		return nil
	}
	return out
}

func (f *Form) HasErrors() bool { return len(f.errors) > 0 }

// Errors returns the recorded errors in the order the fields were evaluated.
func (f *Form) Errors() []*FieldError {
	return append([]*FieldError(nil), f.errors...)
}

// ErrorFor returns the error recorded for key, if any.
func (f *Form) ErrorFor(key string) *FieldError {
	for _, e := range f.errors {
		if e.Key == key {
			return e
		}
	}
	return nil
}

// Messages renders every error for display.
func (f *Form) Messages() []string {
	out := make([]string, 0, len(f.errors))
	for _, e := range f.errors {
		out = append(out, e.Message())
	}
	return out
}

// Err combines all errors into one, or nil.
func (f *Form) Err() error {
	var err error
	for _, e := range f.errors {
		err = multierr.Append(err, e)
	}
	return err
}
