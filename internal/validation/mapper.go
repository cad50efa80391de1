package validation

import (
	"errors"
	"strconv"
	"time"
)

// Mapper turns a checked, trimmed string into a typed value.
type Mapper[T any] interface {
	Map(value string) (T, error)
}

// MapperFunc adapts a plain function to Mapper.
type MapperFunc[T any] func(string) (T, error)

func (f MapperFunc[T]) Map(value string) (T, error) { return f(value) }

// MapError lets a mapper choose the phrase shown to the user. Any other
// error from a mapper is reported as "does not look correct".
type MapError struct {
	Phrase string
}

func (e *MapError) Error() string { return e.Phrase }

// Reject builds a MapError.
func Reject(phrase string) error {
	return &MapError{Phrase: phrase}
}

func phraseOf(err error) string {
	var me *MapError
	if errors.As(err, &me) && me.Phrase != "" {
		return me.Phrase
	}
	return phraseLooksWrong
}

// IntMapper parses a base-10 integer.
type IntMapper struct{}

func (IntMapper) Map(value string) (int, error) {
	return strconv.Atoi(value)
}

// EnumMapper maps a token onto an enumeration using its parse function.
type EnumMapper[E any] struct {
	Parse  func(string) (E, error)
	Phrase string
}

func (m EnumMapper[E]) Map(value string) (E, error) {
	v, err := m.Parse(value)
	if err != nil {
		var zero E
		if m.Phrase == "" {
			return zero, err
		}
		return zero, Reject(m.Phrase)
	}
	return v, nil
}

// OneOfMapper accepts only the listed tokens.
type OneOfMapper struct {
	Allowed []string
	Phrase  string
}

func (m OneOfMapper) Map(value string) (string, error) {
	for _, a := range m.Allowed {
		if a == value {
			return value, nil
		}
	}
	if m.Phrase == "" {
		return "", errors.New("value not allowed")
	}
	return "", Reject(m.Phrase)
}

// DateMapper parses a date with Layout. With Past set, dates that are not
// strictly before Now (time.Now if nil) are rejected.
type DateMapper struct {
	Layout string
	Past   bool
	Now    func() time.Time
}

func (m DateMapper) Map(value string) (time.Time, error) {
	t, err := time.Parse(m.Layout, value)
	if err != nil {
		return time.Time{}, err
	}
	if m.Past {
		now := time.Now
		if m.Now != nil {
			now = m.Now
		}
		if !t.Before(now()) {
			return time.Time{}, Reject("must be in the past")
		}
	}
	return t, nil
}
