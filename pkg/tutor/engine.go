package tutor

import (
	"context"
	"fmt"
	"strings"

	"study-assistant-be/internal/pkg/logger"
)

// Engine turns a question plus recent context into a reply. Reply is total:
// whatever the primary responder does, a non-empty string comes back.
type Engine struct {
	primary Responder
	logger  logger.ILogger
}

func NewEngine(primary Responder, logger logger.ILogger) *Engine {
	return &Engine{
		primary: primary,
		logger:  logger,
	}
}

// NewKeywordEngine is the default engine backed by the rule table alone.
func NewKeywordEngine(logger logger.ILogger) *Engine {
	return NewEngine(NewKeywordResponder(NewDefaultSelector()), logger)
}

// Reply selects on context and question together, falling back on the raw question.
func (e *Engine) Reply(ctx context.Context, conversation, question string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("TUTOR", "Responder panicked, using fallback", map[string]interface{}{
				"panic": fmt.Sprint(r),
			})
			reply = Fallback(question)
		}
	}()

	input := strings.TrimSpace(conversation + " " + question)
	reply, err := e.primary.Respond(ctx, input)
	if err != nil || strings.TrimSpace(reply) == "" {
		e.logger.Warn("TUTOR", "Primary responder unavailable, using fallback", map[string]interface{}{
			"error":          fmt.Sprint(err),
			"fallback_index": FallbackIndex(question),
		})
		return Fallback(question)
	}
	return reply
}
