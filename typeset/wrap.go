package typeset

// Line is an ordered group of runs that fits on one typeset line.
type Line struct {
	// Runs are the words of the line, in paragraph order.
	Runs []WordRun

	// Last is true for the final line of a paragraph.
	// Last lines are left-aligned instead of justified.
	Last bool
}

// WordsWidth returns the sum of the word widths, without spaces.
func (l *Line) WordsWidth(m Measurer, sizePt float64) float64 {
	var w float64
	for _, r := range l.Runs {
		w += m.Measure(r.Role, r.Text, sizePt)
	}
	return w
}

// Width returns the natural width of the line: word widths plus one
// Regular space per gap.
func (l *Line) Width(m Measurer, sizePt float64) float64 {
	return runsWidth(l.Runs, m, sizePt)
}

// runsWidth measures runs joined by single spaces.
func runsWidth(runs []WordRun, m Measurer, sizePt float64) float64 {
	if len(runs) == 0 {
		return 0
	}
	var w float64
	for _, r := range runs {
		w += m.Measure(r.Role, r.Text, sizePt)
	}
	return w + float64(len(runs)-1)*m.SpaceWidth(sizePt)
}

// Wrap breaks runs into lines no wider than maxWidth.
//
// Breaking is greedy: each run is appended to the current line unless the
// trial line would exceed maxWidth, in which case the current line is
// flushed and the run starts the next one. Runs are atomic, so a single run
// wider than maxWidth overflows on its own line. The final line is marked
// Last. An empty run slice yields no lines.
func Wrap(runs []WordRun, maxWidth float64, m Measurer, sizePt float64) []Line {
	if len(runs) == 0 {
		return nil
	}

	space := m.SpaceWidth(sizePt)
	lines := make([]Line, 0, 4)

	var (
		current []WordRun
		width   float64 // natural width of current
	)

	for _, run := range runs {
		runWidth := m.Measure(run.Role, run.Text, sizePt)

		trial := runWidth
		if len(current) > 0 {
			trial = width + space + runWidth
		}

		if trial > maxWidth && len(current) > 0 {
			lines = append(lines, Line{Runs: current})
			current = []WordRun{run}
			width = runWidth
			continue
		}

		current = append(current, run)
		width = trial
	}

	return append(lines, Line{Runs: current, Last: true})
}
