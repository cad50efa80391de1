package validation

import (
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var skillRule = Rule[string]{
	Name:   "Skills",
	Mapper: OneOfMapper{Allowed: []string{"scripting", "iam_mfa", "soc_siem"}, Phrase: "is not a skill we know"},
}

func TestForm_EvaluatesEveryField(t *testing.T) {
	form := NewForm(url.Values{
		"email":    {"not-an-email"},
		"postcode": {"30000"},
		"name":     {"Ada"},
	})

	email := Input(form, "email", Rule[string]{Name: "Email Address", Required: true, Filter: FilterEmail})
	ref := Input(form, "reference", Rule[string]{Name: "Job Reference ID", Required: true})
	postcode := Input(form, "postcode", Rule[int]{
		Name: "Postcode", Filter: FilterDigits, MinLength: 4, MaxLength: 4, Mapper: IntMapper{},
	})
	name := Input(form, "name", Rule[string]{Name: "First Name", Required: true})

	assert.Nil(t, email)
	assert.Nil(t, ref)
	assert.Nil(t, postcode)
	require.NotNil(t, name)
	assert.Equal(t, "Ada", *name)

	require.True(t, form.HasErrors())
	assert.Equal(t, []string{
		"Your Email Address is not a valid email address. You wrote: not-an-email",
		"Your Job Reference ID is required.",
		"Your Postcode must be at most 4 characters long. You wrote: 30000",
	}, form.Messages())

	kinds := []Kind{}
	for _, e := range form.Errors() {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []Kind{KindBadFormat, KindRequired, KindTooLong}, kinds)
	assert.Equal(t, 4, form.ErrorFor("postcode").Bound)
}

func TestForm_OptionalAbsentHasNoErrors(t *testing.T) {
	form := NewForm(nil)

	assert.Nil(t, Input(form, "suburb", Rule[string]{MaxLength: 40}))
	assert.Nil(t, InputArray(form, "skills", Rule[string]{}))
	assert.False(t, form.HasErrors())
	assert.NoError(t, form.Err())
}

func TestForm_ScalarUsesFirstValue(t *testing.T) {
	form := NewForm(url.Values{"q": {" first ", "second"}})
	got := Input(form, "q", Rule[string]{})
	require.NotNil(t, got)
	assert.Equal(t, "first", *got)
}

func TestForm_InputOr(t *testing.T) {
	rule := Rule[string]{Name: "Sort Direction", Mapper: OneOfMapper{Allowed: []string{"ASC", "DESC"}}}

	assert.Equal(t, "DESC", InputOr(NewForm(nil), "dir", rule, "DESC"))
	assert.Equal(t, "ASC", InputOr(NewForm(url.Values{"dir": {"ASC"}}), "dir", rule, "DESC"))

	form := NewForm(url.Values{"dir": {"sideways"}})
	assert.Equal(t, "DESC", InputOr(form, "dir", rule, "DESC"))
	assert.True(t, form.HasErrors())
}

func TestInputArray_PreservesOrder(t *testing.T) {
	form := NewForm(url.Values{"skills[]": {"soc_siem", "scripting", "iam_mfa"}})
	got := InputArray(form, "skills", skillRule)
	assert.False(t, form.HasErrors())
	assert.Equal(t, []string{"soc_siem", "scripting", "iam_mfa"}, got)
}

func TestInputArray_AcceptsBothKeyForms(t *testing.T) {
	form := NewForm(url.Values{"skills": {"scripting"}, "skills[]": {"iam_mfa"}})
	assert.Equal(t, []string{"scripting", "iam_mfa"}, InputArray(form, "skills", skillRule))
}

func TestInputArray_NamesEveryFailingMember(t *testing.T) {
	form := NewForm(url.Values{"skills[]": {"scripting", "cooking", " ", "juggling"}})

	got := InputArray(form, "skills", skillRule)
	assert.Nil(t, got)

	require.Len(t, form.Errors(), 1)
	fe := form.Errors()[0]
	assert.Equal(t, KindInvalidMembers, fe.Kind)
	assert.Equal(t, []string{"cooking", " ", "juggling"}, fe.InvalidValues())
	assert.Equal(t, KindMapFailed, fe.Members[0].Kind)
	assert.Equal(t, KindRequired, fe.Members[1].Kind)
	assert.Equal(t, 3, fe.Members[2].Index)
	assert.Equal(t,
		`Your Skills has entries that do not look correct: "cooking" (is not a skill we know), " " (is required), "juggling" (is not a skill we know).`,
		fe.Message(),
	)
}

func TestInputArray_RequiredEmpty(t *testing.T) {
	rule := skillRule
	rule.Required = true

	form := NewForm(url.Values{})
	assert.Nil(t, InputArray(form, "skills", rule))
	require.Len(t, form.Errors(), 1)
	assert.Equal(t, KindRequired, form.Errors()[0].Kind)
	assert.Equal(t, "Your Skills is required.", form.Messages()[0])
}

func TestInputArray_MemberPattern(t *testing.T) {
	rule := Rule[string]{Name: "Tags", Pattern: regexp.MustCompile(`^[a-z]+$`), MaxLength: 5}
	form := NewForm(url.Values{"tags": {"ok", "Nope", "toolong"}})

	InputArray(form, "tags", rule)
	fe := form.ErrorFor("tags")
	require.NotNil(t, fe)
	require.Len(t, fe.Members, 2)
	assert.Equal(t, KindBadFormat, fe.Members[0].Kind)
	assert.Equal(t, KindTooLong, fe.Members[1].Kind)
	assert.Equal(t, 5, fe.Members[1].Bound)
}

func TestForm_ErrCombinesAll(t *testing.T) {
	form := NewForm(url.Values{})
	Input(form, "a", Rule[string]{Name: "A", Required: true})
	Input(form, "b", Rule[string]{Name: "B", Required: true})

	err := form.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Your A is required.")
	assert.Contains(t, err.Error(), "Your B is required.")
}

func TestForms_DoNotShareErrors(t *testing.T) {
	a := NewForm(nil)
	b := NewForm(nil)
	Input(a, "x", Rule[string]{Required: true})
	assert.True(t, a.HasErrors())
	assert.False(t, b.HasErrors())
}
