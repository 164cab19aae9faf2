package tutor

import "strings"

const DefaultSubject = "general"

var subjectSuggestions = map[string][]string{
	"math": {
		"Practice problems daily for 15-30 minutes",
		"Use visual aids like graphs and diagrams",
		"Explain solutions out loud to yourself",
		"Check your work by substituting answers back",
	},
	"science": {
		"Create concept maps to connect ideas",
		"Do hands-on experiments when possible",
		"Watch educational videos for visual learning",
		"Form study groups to discuss concepts",
	},
	"history": {
		"Create timeline charts for important events",
		"Use mnemonic devices for dates and facts",
		"Read primary sources when available",
		"Connect historical events to current events",
	},
	"english": {
		"Read diverse genres and authors",
		"Keep a vocabulary journal",
		"Practice writing different types of essays",
		"Join book clubs or discussion groups",
	},
}

var defaultSuggestions = []string{
	"Set specific, achievable study goals",
	"Use active recall techniques",
	"Teach the material to someone else",
	"Take regular breaks to avoid burnout",
}

// Suggestions returns the four study tips for a subject. Lookup ignores case;
// unknown subjects get the general list. The result is a fresh copy.
func Suggestions(subject string) []string {
	tips, ok := subjectSuggestions[strings.ToLower(subject)]
	if !ok {
		tips = defaultSuggestions
	}
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
