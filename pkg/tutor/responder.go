package tutor

import (
	"context"
	"fmt"
	"strings"

	"study-assistant-be/pkg/llm"
)

// Responder produces the primary reply for the accumulated conversation text.
type Responder interface {
	Respond(ctx context.Context, input string) (string, error)
}

// KeywordResponder answers from the rule table and never fails.
type KeywordResponder struct {
	selector *Selector
}

func NewKeywordResponder(selector *Selector) *KeywordResponder {
	return &KeywordResponder{selector: selector}
}

func (r *KeywordResponder) Respond(_ context.Context, input string) (string, error) {
	return r.selector.Select(input), nil
}

const studyPromptTemplate = `You are a helpful study assistant for students. Please provide a clear, educational response to this question:

Question: %s

Please:
1. Give a clear, easy-to-understand answer
2. Include examples if helpful
3. Break down complex concepts
4. Encourage further learning

Response: `

// StudyPrompt wraps a student question in the tutoring instructions.
func StudyPrompt(question string) string {
	return fmt.Sprintf(studyPromptTemplate, question)
}

// LLMResponder asks a live model. Errors and blank answers are returned as errors
// so the engine can fall back.
type LLMResponder struct {
	provider llm.LLMProvider
	opts     []llm.Option
}

func NewLLMResponder(provider llm.LLMProvider, opts ...llm.Option) *LLMResponder {
	return &LLMResponder{
		provider: provider,
		opts:     opts,
	}
}

func (r *LLMResponder) Respond(ctx context.Context, input string) (string, error) {
	reply, err := r.provider.Generate(ctx, StudyPrompt(input), r.opts...)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("empty reply from llm provider")
	}
	return reply, nil
}
