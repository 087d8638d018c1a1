// Package outfmt carries the output mode chosen with --json through the
// context. Commands consult it to decide between machine-readable JSON on
// stdout and the human tables/messages rendered by the ui package.
package outfmt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Mode selects how command results are written.
type Mode struct {
	// JSON switches stdout to one pretty-printed JSON document per command.
	JSON bool
}

type ctxKey struct{}

// WithMode stores the output mode in the context.
func WithMode(ctx context.Context, mode Mode) context.Context {
	return context.WithValue(ctx, ctxKey{}, mode)
}

// IsJSON reports whether the context requests JSON output.
func IsJSON(ctx context.Context) bool {
	if v := ctx.Value(ctxKey{}); v != nil {
		if m, ok := v.(Mode); ok {
			return m.JSON
		}
	}

	return false
}

// WriteJSON writes v to w as indented JSON. HTML escaping is off so snippet
// URLs and preset paths come out verbatim.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}
