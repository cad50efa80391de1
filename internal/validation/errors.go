package validation

import (
	"fmt"
	"strings"
)

// Kind classifies why a field was rejected.
type Kind int

const (
	// KindRequired: the value was absent or blank and the rule requires it.
	KindRequired Kind = iota + 1
	// KindBadFormat: the semantic filter or the pattern did not match.
	KindBadFormat
	// KindTooShort: fewer characters than the rule's MinLength (carried in Bound).
	KindTooShort
	// KindTooLong: more characters than the rule's MaxLength (carried in Bound).
	KindTooLong
	// KindMapFailed: the mapper rejected the value.
	KindMapFailed
	// KindInvalidMembers: one or more members of a list field failed; see FieldError.Members.
	KindInvalidMembers
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindBadFormat:
		return "bad_format"
	case KindTooShort:
		return "too_short"
	case KindTooLong:
		return "too_long"
	case KindMapFailed:
		return "map_failed"
	case KindInvalidMembers:
		return "invalid_members"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

const phraseLooksWrong = "does not look correct"

// Failure is the outcome of one failed check on one value.
type Failure struct {
	Kind   Kind
	Bound  int
	Phrase string
}

func newFailure(kind Kind, bound int) *Failure {
	f := &Failure{Kind: kind, Bound: bound}
	switch kind {
	case KindRequired:
		f.Phrase = "is required"
	case KindTooShort:
		f.Phrase = fmt.Sprintf("must be at least %d characters long", bound)
	case KindTooLong:
		f.Phrase = fmt.Sprintf("must be at most %d characters long", bound)
	default:
		f.Phrase = phraseLooksWrong
	}
	return f
}

// MemberError is a failure of one element of a list field.
type MemberError struct {
	Index int
	Value string
	Failure
}

// FieldError is one entry in a Form's error list.
type FieldError struct {
	Key      string
	Name     string
	Original string
	Failure
	Members []MemberError
}

// Message renders the error for display, e.g.
// "Your Email Address is not a valid email address. You wrote: bob@".
func (e *FieldError) Message() string {
	var b strings.Builder
	b.WriteString("Your ")
	b.WriteString(e.Name)
	b.WriteByte(' ')

	if e.Kind == KindInvalidMembers {
		b.WriteString("has entries that do not look correct: ")
		for i, m := range e.Members {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%q (%s)", m.Value, trimPhrase(m.Phrase))
		}
		b.WriteByte('.')
		return b.String()
	}

	b.WriteString(trimPhrase(e.Phrase))
	b.WriteByte('.')
	if e.Original != "" {
		b.WriteString(" You wrote: ")
		b.WriteString(e.Original)
	}
	return b.String()
}

func (e *FieldError) Error() string { return e.Message() }

// InvalidValues lists the offending values of a list field, in input order.
func (e *FieldError) InvalidValues() []string {
	out := make([]string, 0, len(e.Members))
	for _, m := range e.Members {
		out = append(out, m.Value)
	}
	return out
}

func trimPhrase(p string) string {
	return strings.TrimRight(strings.TrimSpace(p), ".")
}
