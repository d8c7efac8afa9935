package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Bough.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Green-to-amber gradient, canopy to trunk
	lines := []struct {
		text  string
		color string
	}{
		{` _                       _     `, "#4ade80"},
		{`| |__   ___  _   _  __ _| |__  `, "#86efac"},
		{`| '_ \ / _ \| | | |/ _' | '_ \ `, "#bef264"},
		{`| |_) | (_) | |_| | (_| | | | |`, "#facc15"},
		{`|_.__/ \___/ \__,_|\__, |_| |_|`, "#f59e0b"},
		{`                   |___/       `, "#d97706"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Printf("  decision trees that explain themselves · v%s\n\n", version)
}
