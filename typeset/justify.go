package typeset

import "fmt"

// Alignment specifies how a line is set horizontally.
type Alignment int

const (
	// AlignLeft places words one Regular space apart from the left margin.
	AlignLeft Alignment = iota
	// AlignJustify spreads the leftover width evenly between words.
	AlignJustify
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignJustify:
		return "Justify"
	default:
		return unknownStr
	}
}

// PositionedRun is a run with its X offset from the left margin.
type PositionedRun struct {
	WordRun
	X     float64
	Width float64
}

// LineAlignment returns the alignment used for l: last lines and
// single-word lines are left-aligned, every other line is justified.
func LineAlignment(l *Line) Alignment {
	if l.Last || len(l.Runs) <= 1 {
		return AlignLeft
	}
	return AlignJustify
}

// Justify computes the offsets of every run of l relative to the left margin.
//
// A justified line advances by wordWidth + extra after each word, where
// extra = (maxWidth - Σ wordWidths) / (n - 1), so the last word ends exactly
// at maxWidth. Justify is pure: the same input always yields the same offsets.
func Justify(l *Line, maxWidth float64, m Measurer, sizePt float64) []PositionedRun {
	out, _ := justify(l, maxWidth, m, sizePt)
	return out
}

// JustifyChecked is Justify that reports ErrNegativeSpacing when a justified
// line is wider than maxWidth. Lines produced by Wrap never trigger it.
func JustifyChecked(l *Line, maxWidth float64, m Measurer, sizePt float64) ([]PositionedRun, error) {
	out, extra := justify(l, maxWidth, m, sizePt)
	if extra < 0 {
		return out, fmt.Errorf("%w: %.3fpt", ErrNegativeSpacing, extra)
	}
	return out, nil
}

// justify returns the positioned runs and the inter-word advance used
// (the Regular space width for left-aligned lines).
func justify(l *Line, maxWidth float64, m Measurer, sizePt float64) ([]PositionedRun, float64) {
	if len(l.Runs) == 0 {
		return nil, 0
	}

	out := make([]PositionedRun, len(l.Runs))
	for i, r := range l.Runs {
		out[i] = PositionedRun{WordRun: r, Width: m.Measure(r.Role, r.Text, sizePt)}
	}

	gap := m.SpaceWidth(sizePt)
	if LineAlignment(l) == AlignJustify {
		var words float64
		for i := range out {
			words += out[i].Width
		}
		gap = (maxWidth - words) / float64(len(out)-1)
	}

	var x float64
	for i := range out {
		out[i].X = x
		x += out[i].Width + gap
	}
	return out, gap
}
