package validation

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleApply_RequiredBlank(t *testing.T) {
	rule := Rule[string]{
		Required:  true,
		Filter:    FilterEmail,
		MinLength: 3,
		Pattern:   regexp.MustCompile(`^x$`),
	}

	for _, raw := range []string{"", "   ", "\t\n"} {
		res := rule.Apply(raw)
		require.NotNil(t, res.Err, "raw %q", raw)
		assert.Equal(t, KindRequired, res.Err.Kind, "raw %q", raw)
	}
}

func TestRuleApply_OptionalBlankIsNull(t *testing.T) {
	rule := Rule[int]{Filter: FilterDigits, Mapper: IntMapper{}}

	for _, raw := range []string{"", "  "} {
		res := rule.Apply(raw)
		assert.Nil(t, res.Err)
		assert.True(t, res.Null)
	}
}

func TestRuleApply_CheckOrder(t *testing.T) {
	rule := Rule[string]{
		Filter:    FilterEmail,
		MinLength: 10,
		MaxLength: 12,
		Pattern:   regexp.MustCompile(`@example\.com$`),
	}

	tests := []struct {
		name  string
		raw   string
		kind  Kind
		bound int
	}{
		{name: "filter before length", raw: "no", kind: KindBadFormat},
		{name: "too short", raw: "a@b.co", kind: KindTooShort, bound: 10},
		{name: "too long", raw: "someone@example.org", kind: KindTooLong, bound: 12},
		{name: "pattern after length", raw: "ab@cd.co.uk", kind: KindBadFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := rule.Apply(tt.raw)
			require.NotNil(t, res.Err)
			assert.Equal(t, tt.kind, res.Err.Kind)
			assert.Equal(t, tt.bound, res.Err.Bound)
		})
	}
}

func TestRuleApply_TrimsAndIsIdempotent(t *testing.T) {
	rule := Rule[string]{
		MinLength: 2,
		MaxLength: 20,
		Pattern:   regexp.MustCompile(`^[A-Za-z' -]+$`),
	}

	first := rule.Apply("  Mary-Jane O'Neil ")
	require.True(t, first.OK())
	assert.Equal(t, "Mary-Jane O'Neil", first.Value)

	second := rule.Apply(first.Value)
	require.True(t, second.OK())
	assert.Equal(t, first.Value, second.Value)
}

func TestRuleApply_LengthCountsCharacters(t *testing.T) {
	rule := Rule[string]{MaxLength: 4}
	assert.True(t, rule.Apply("ᛒᚨᚾᚨ").OK())
	assert.False(t, rule.Apply("ᛒᚨᚾᚨᛞ").OK())
}

func TestRuleApply_Mapper(t *testing.T) {
	t.Run("plain error gets the generic phrase", func(t *testing.T) {
		rule := Rule[int]{Mapper: IntMapper{}}
		res := rule.Apply("12a")
		require.NotNil(t, res.Err)
		assert.Equal(t, KindMapFailed, res.Err.Kind)
		assert.Equal(t, "does not look correct", res.Err.Phrase)
	})

	t.Run("custom phrase", func(t *testing.T) {
		rule := Rule[string]{Mapper: MapperFunc[string](func(string) (string, error) {
			return "", Reject("is not a valid status.")
		})}
		res := rule.Apply("Pending")
		require.NotNil(t, res.Err)
		assert.Equal(t, KindMapFailed, res.Err.Kind)
		assert.Equal(t, "is not a valid status.", res.Err.Phrase)
	})

	t.Run("wrapped custom phrase", func(t *testing.T) {
		rule := Rule[string]{Mapper: MapperFunc[string](func(string) (string, error) {
			return "", errors.Join(errors.New("lookup"), Reject("is taken"))
		})}
		res := rule.Apply("x")
		require.NotNil(t, res.Err)
		assert.Equal(t, "is taken", res.Err.Phrase)
	})

	t.Run("success", func(t *testing.T) {
		rule := Rule[int]{Filter: FilterDigits, Mapper: IntMapper{}}
		res := rule.Apply(" 3000 ")
		require.True(t, res.OK())
		assert.Equal(t, 3000, res.Value)
	})

	t.Run("non-string type without mapper", func(t *testing.T) {
		rule := Rule[int]{}
		res := rule.Apply("5")
		require.NotNil(t, res.Err)
		assert.Equal(t, KindMapFailed, res.Err.Kind)
	})
}

func TestFilters(t *testing.T) {
	email := Rule[string]{Filter: FilterEmail}
	assert.True(t, email.Apply("jo@example.com").OK())
	assert.False(t, email.Apply("jo@").OK())
	assert.Equal(t, "is not a valid email address", email.Apply("jo at example").Err.Phrase)

	digits := Rule[string]{Filter: FilterDigits}
	assert.True(t, digits.Apply("0412345678").OK())
	assert.False(t, digits.Apply("-1").OK())
	assert.False(t, digits.Apply("1.5").OK())
}

func TestDateMapper(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC) }
	m := DateMapper{Layout: "02/01/2006", Past: true, Now: now}

	got, err := m.Map("07/02/1998")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1998, 2, 7, 0, 0, 0, 0, time.UTC), got)

	_, err = m.Map("31/02/1998")
	require.Error(t, err)
	assert.Equal(t, "does not look correct", phraseOf(err))

	_, err = m.Map("01/01/2030")
	require.Error(t, err)
	assert.Equal(t, "must be in the past", phraseOf(err))
}

func TestEnumMapper(t *testing.T) {
	type color string
	parse := func(s string) (color, error) {
		if s == "red" {
			return color(s), nil
		}
		return "", errors.New("nope")
	}

	m := EnumMapper[color]{Parse: parse, Phrase: "is not a colour"}
	got, err := m.Map("red")
	require.NoError(t, err)
	assert.Equal(t, color("red"), got)

	_, err = m.Map("blue")
	assert.Equal(t, "is not a colour", phraseOf(err))

	_, err = EnumMapper[color]{Parse: parse}.Map("blue")
	assert.Equal(t, "does not look correct", phraseOf(err))
}
