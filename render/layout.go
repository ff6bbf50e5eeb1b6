// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/certgen/typeset"

// DefaultNameOffsetX is the optical correction added to the centered name.
const DefaultNameOffsetX = 6

// Layout holds the fixed geometry of the certificate template.
type Layout struct {
	// NameSize is the font size of the recipient name, set in the Medium face.
	NameSize float64

	// NameY is the baseline of the recipient name.
	NameY float64

	// NameOffsetX is added to the centered X of the name.
	NameOffsetX float64

	// BodySize is the font size of both body paragraphs.
	BodySize float64

	// MaxWidth is the width of the body text block.
	// If 0, the page width minus the left margin on both sides is used.
	MaxWidth float64

	// Flow places the body lines. Flow.X is the left margin.
	Flow typeset.FlowOptions

	// TextColor is the RGB color of all drawn text.
	TextColor [3]int
}

// DefaultLayout returns the geometry of the standard certificate template.
func DefaultLayout() Layout {
	return Layout{
		NameSize:    30,
		NameY:       265,
		NameOffsetX: DefaultNameOffsetX,
		BodySize:    12,
		Flow:        typeset.DefaultFlowOptions(),
		TextColor:   [3]int{33, 33, 33},
	}
}

// bodyWidth returns the width of the body block on a page of the given width.
func (l Layout) bodyWidth(pageWidth float64) float64 {
	if l.MaxWidth > 0 {
		return l.MaxWidth
	}
	return pageWidth - 2*l.Flow.X
}
