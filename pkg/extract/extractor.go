package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hugocool/fateforger/pkg/llm"
)

// Generator is the LLM surface the extractors need. *llm.Client
// satisfies it; tests substitute a canned generator.
type Generator interface {
	CollectText(ctx context.Context, sessionID string, messages []llm.Message) (string, error)
}

// Run calls the generator with a bounded timeout and parses the
// response into the schema type. The label names the extractor in
// timeout and parse errors so fallback paths can log what failed.
func Run[T any](ctx context.Context, gen Generator, sessionID, label string, messages []llm.Message, timeout time.Duration) (*T, error) {
	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := gen.CollectText(callCtx, sessionID, messages)
	if err != nil {
		return nil, fmt.Errorf("%s extractor: %w", label, err)
	}

	var out T
	if err := RecoverJSON(text, &out); err != nil {
		return nil, fmt.Errorf("%s extractor: %w", label, err)
	}

	slog.Default().Debug("Extractor completed",
		"extractor", label, "session_id", sessionID,
		"duration_ms", time.Since(start).Milliseconds())
	return &out, nil
}
