package tutor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorMatch(t *testing.T) {
	selector := NewDefaultSelector()

	tests := []struct {
		name string
		text string
		want Category
	}{
		{name: "math keyword", text: "How do I solve this equation?", want: CategoryMathematics},
		{name: "calculus question", text: "Can you help me with calculus?", want: CategoryMathematics},
		{name: "science keyword", text: "Explain this physics experiment", want: CategoryScience},
		{name: "history keyword", text: "Tell me about ancient Rome", want: CategoryHistory},
		{name: "language arts keyword", text: "Check my essay grammar", want: CategoryLanguageArts},
		{name: "no keyword", text: "Hello there", want: CategoryGeneral},
		{name: "empty text", text: "", want: CategoryGeneral},
		{name: "case insensitive", text: "BIOLOGY homework", want: CategoryScience},
		{name: "substring match", text: "what is aftermath", want: CategoryMathematics},
		{name: "math wins over science", text: "science and math", want: CategoryMathematics},
		{name: "science wins over history", text: "the history of science", want: CategoryScience},
		{name: "history wins over english", text: "an essay on the past", want: CategoryHistory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selector.Match(tt.text).Category)
		})
	}
}

func TestSelectorSelectReturnsTemplate(t *testing.T) {
	selector := NewDefaultSelector()

	assert.Equal(t, MathematicsTemplate, selector.Select("Can you help me with calculus?"))
	assert.Equal(t, GeneralTemplate, selector.Select("good morning"))
}

func TestSelectorCustomRules(t *testing.T) {
	fallback := Rule{Category: CategoryGeneral, Template: "fallback"}
	selector := NewSelector([]Rule{
		{Category: "first", Keywords: []string{"shared"}, Template: "one"},
		{Category: "second", Keywords: []string{"shared", "other"}, Template: "two"},
	}, fallback)

	assert.Equal(t, "one", selector.Select("a SHARED word"))
	assert.Equal(t, "two", selector.Select("the other one"))
	assert.Equal(t, "fallback", selector.Select("nothing here"))
}

func TestTemplatesKeepTrailingWhitespace(t *testing.T) {
	assert.Contains(t, MathematicsTemplate, "what you need to find \n3.")
	assert.Contains(t, ScienceTemplate, "\"how\"** questions \n\n")
	assert.True(t, strings.HasSuffix(ScienceTemplate, "specific concepts!\n                "))
	assert.True(t, strings.HasSuffix(MathematicsTemplate, "more targeted help!"))
}
