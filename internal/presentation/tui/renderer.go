package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderTrace renders a recommendation and its explanation trace as
// terminal markdown. Falls back to the plain markdown when the renderer
// cannot be initialized (e.g. no usable terminfo).
func RenderTrace(value string, effects []string) string {
	md := traceMarkdown(value, effects)

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Detect light/dark background
	)
	if err != nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func traceMarkdown(value string, effects []string) string {
	var b strings.Builder

	if value == "" {
		b.WriteString("# No recommendation\n\n")
		b.WriteString("The tree stopped before reaching a suggestion.\n")
	} else {
		fmt.Fprintf(&b, "# %s\n", value)
	}

	if len(effects) > 0 {
		b.WriteString("\n**How we got here:**\n\n")
		for i, effect := range effects {
			fmt.Fprintf(&b, "%d. %s\n", i+1, effect)
		}
	}

	return b.String()
}
