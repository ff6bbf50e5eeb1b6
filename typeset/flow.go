package typeset

// FlowOptions configures the vertical placement of the two paragraphs.
type FlowOptions struct {
	// X is the left margin shared by every line.
	X float64

	// AnchorY is the baseline of the first line of the first paragraph.
	AnchorY float64

	// LineHeight is the distance between consecutive baselines.
	LineHeight float64

	// ParagraphGap is added once between the two paragraphs.
	ParagraphGap float64
}

// DefaultFlowOptions returns the geometry of the standard certificate
// template (points, origin top-left).
func DefaultFlowOptions() FlowOptions {
	return FlowOptions{
		X:            70,
		AnchorY:      330,
		LineHeight:   18,
		ParagraphGap: 2,
	}
}

// PlacedLine is a line with its absolute baseline position.
type PlacedLine struct {
	Line
	X float64
	Y float64
}

// Flow places the lines of both paragraphs top-down from AnchorY.
func Flow(first, second []Line, opts FlowOptions) []PlacedLine {
	placed := make([]PlacedLine, 0, len(first)+len(second))
	y := opts.AnchorY

	for _, l := range first {
		placed = append(placed, PlacedLine{Line: l, X: opts.X, Y: y})
		y += opts.LineHeight
	}

	if len(first) > 0 {
		y += opts.ParagraphGap
	}

	for _, l := range second {
		placed = append(placed, PlacedLine{Line: l, X: opts.X, Y: y})
		y += opts.LineHeight
	}
	return placed
}
