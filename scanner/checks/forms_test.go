package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/a11yker/a11yk"
	"gitlab.com/a11yker/mock"
	"gitlab.com/a11yker/scanner/checks"
)

func TestForms(t *testing.T) {
	doc := &mock.Document{ControlS: []*a11yk.FormControl{
		{Type: a11yk.INPUT, InputType: "text", ID: "email", Label: "Email", HasLabel: true, Position: 1},
		{Type: a11yk.INPUT, InputType: "text", ID: "phone", Position: 2},
		{Type: a11yk.SELECT, Name: "country", Position: 3},
		{Type: a11yk.TEXTAREA, Position: 4},
	}}
	findings := checks.Forms(a11yk.DefaultRules(), doc)
	require.Len(t, findings, 3)

	assert.Equal(t, "input[type=text]#phone", findings[0].Locator())
	assert.Equal(t, "select[name=country]", findings[1].Locator())
	assert.Equal(t, "textarea #4", findings[2].Locator())
	for _, f := range findings {
		assert.Equal(t, "form control missing associated label", f.Issue())
		assert.Equal(t, "1.3.1, 4.1.2", f.WCAG())
		assert.Equal(t, a11yk.CatForms, f.Category())
	}
}

func TestFormsAllLabelled(t *testing.T) {
	doc := &mock.Document{ControlS: []*a11yk.FormControl{
		{Type: a11yk.INPUT, ID: "q", HasLabel: true, Position: 1},
	}}
	assert.Empty(t, checks.Forms(a11yk.DefaultRules(), doc))
}

func TestDefaultOrder(t *testing.T) {
	def := checks.Default()
	require.Len(t, def, 5)
	for i, c := range def {
		assert.Equal(t, a11yk.Categories[i], c.Category)
		assert.NotNil(t, c.Run)
	}
	assert.Equal(t, checks.ImagesID, checks.ByID(checks.ImagesID).ID)
	assert.Nil(t, checks.ByID("nope"))
}
