package typeset

import "unicode/utf8"

// unitMeasurer gives every rune a fixed width per role at size 10.
// Widths scale linearly with size, spaces use the Regular unit.
type unitMeasurer map[FontRole]float64

func (m unitMeasurer) Measure(role FontRole, text string, sizePt float64) float64 {
	return float64(utf8.RuneCountInString(text)) * m[role] * sizePt / 10
}

func (m unitMeasurer) SpaceWidth(sizePt float64) float64 {
	return m.Measure(Regular, " ", sizePt)
}

// uniform is a measurer where every rune of every face is 1pt wide at size 10.
var uniform = unitMeasurer{Regular: 1, Medium: 1, SemiBold: 1}

// words builds Regular runs from the given texts.
func words(texts ...string) []WordRun {
	runs := make([]WordRun, len(texts))
	for i, t := range texts {
		runs[i] = WordRun{Text: t, Role: Regular}
	}
	return runs
}

// texts returns the texts of the runs of a line.
func texts(l Line) []string {
	out := make([]string, len(l.Runs))
	for i, r := range l.Runs {
		out[i] = r.Text
	}
	return out
}
