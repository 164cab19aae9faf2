package tutor

import "strings"

// Selector maps accumulated conversation text to one canned reply.
type Selector struct {
	rules    []Rule
	fallback Rule
}

func NewSelector(rules []Rule, fallback Rule) *Selector {
	return &Selector{
		rules:    rules,
		fallback: fallback,
	}
}

// NewDefaultSelector uses the built-in study rule table.
func NewDefaultSelector() *Selector {
	return NewSelector(DefaultRules, DefaultRule)
}

// Match returns the first rule whose keyword occurs in text, ignoring case.
func (s *Selector) Match(text string) Rule {
	lower := strings.ToLower(text)
	for _, rule := range s.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule
			}
		}
	}
	return s.fallback
}

func (s *Selector) Select(text string) string {
	return s.Match(text).Template
}
