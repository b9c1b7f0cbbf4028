package card

import (
	"github.com/fatih/color"
)

// Style controls how cards are rendered for display
type Style struct {
	Color bool // Render hearts and diamonds in red
}

// Format renders a card using the style
func (st Style) Format(c Card) string {
	if !st.Color || !c.suit.Red() {
		return c.String()
	}

	// color.NoColor is process-wide and set from stdout detection, so force
	// the escape codes on this printer only.
	red := color.New(color.FgRed)
	red.EnableColor()
	return red.Sprint(c.String())
}
