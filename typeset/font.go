package typeset

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/certgen"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// FontRole selects one of the three faces used on a certificate.
type FontRole uint8

const (
	// Regular is the body text face.
	Regular FontRole = iota
	// Medium renders the recipient name.
	Medium
	// SemiBold highlights the workshop title.
	SemiBold
)

// Roles lists every role in loading order.
var Roles = [...]FontRole{Regular, Medium, SemiBold}

// String returns the string representation of the role.
func (r FontRole) String() string {
	switch r {
	case Regular:
		return "Regular"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	default:
		return unknownStr
	}
}

// Measurer measures text advance widths in points.
//
// Implementations must be deterministic and additive: the width of a
// multi-word string equals the sum of its word widths plus one
// SpaceWidth per gap.
type Measurer interface {
	// Measure returns the advance width of text set in the given face at sizePt.
	Measure(role FontRole, text string, sizePt float64) float64

	// SpaceWidth returns the width of one inter-word space at sizePt.
	// It is always taken from the Regular face.
	SpaceWidth(sizePt float64) float64
}

// FontBuffers holds the raw TTF/OTF data for each role.
type FontBuffers struct {
	Regular  []byte
	Medium   []byte
	SemiBold []byte
}

// Get returns the buffer for a role.
func (b FontBuffers) Get(role FontRole) []byte {
	switch role {
	case Regular:
		return b.Regular
	case Medium:
		return b.Medium
	case SemiBold:
		return b.SemiBold
	default:
		return nil
	}
}

// FontResource is one parsed face plus the bytes needed to embed it.
type FontResource struct {
	role FontRole
	data []byte
	font *font.Font
	upem float64
}

// Role returns the role of the resource.
func (r *FontResource) Role() FontRole { return r.role }

// Bytes returns the raw font data. Callers must not modify it.
func (r *FontResource) Bytes() []byte { return r.data }

// measure sums nominal glyph advances (no kerning) scaled to sizePt.
// Runes missing from the cmap measure as glyph 0 (.notdef).
func (r *FontResource) measure(text string, sizePt float64) float64 {
	if text == "" || sizePt <= 0 {
		return 0
	}

	// font.Face is not safe for concurrent use; font.Font is.
	face := font.NewFace(r.font)

	var units float64
	for _, ch := range text {
		gid, _ := face.NominalGlyph(ch)
		units += float64(face.HorizontalAdvance(gid))
	}
	return units * sizePt / r.upem
}

// FontSet is the read-only collection of the three faces shared by every
// recipient of a generation session.
//
// FontSet is safe for concurrent use.
type FontSet struct {
	faces [len(Roles)]*FontResource
}

// LoadFontSet parses all three font buffers.
// The buffers are copied and can be reused after this call.
//
// A missing or malformed buffer yields a *certgen.ResourceLoadError: the
// renderer never proceeds with a partial set of fonts.
func LoadFontSet(buffers FontBuffers) (*FontSet, error) {
	fs := &FontSet{}
	for _, role := range Roles {
		res, err := loadFontResource(role, buffers.Get(role))
		if err != nil {
			return nil, &certgen.ResourceLoadError{Resource: "font:" + role.String(), Err: err}
		}
		fs.faces[role] = res
	}
	return fs, nil
}

func loadFontResource(role FontRole, data []byte) (*FontResource, error) {
	if len(data) == 0 {
		return nil, ErrMissingFont
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("typeset: failed to parse font: %w", err)
	}
	upem := float64(face.Upem())
	if upem == 0 {
		return nil, fmt.Errorf("typeset: font has zero units per em")
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	return &FontResource{
		role: role,
		data: dataCopy,
		font: face.Font,
		upem: upem,
	}, nil
}

// Resource returns the font for a role, or nil for an unknown role.
func (s *FontSet) Resource(role FontRole) *FontResource {
	if int(role) >= len(s.faces) {
		return nil
	}
	return s.faces[role]
}

// Bytes returns the raw font data for a role.
func (s *FontSet) Bytes(role FontRole) []byte {
	if r := s.Resource(role); r != nil {
		return r.data
	}
	return nil
}

// Measure implements Measurer.
func (s *FontSet) Measure(role FontRole, text string, sizePt float64) float64 {
	r := s.Resource(role)
	if r == nil {
		return 0
	}
	return r.measure(text, sizePt)
}

// SpaceWidth implements Measurer.
func (s *FontSet) SpaceWidth(sizePt float64) float64 {
	return s.Measure(Regular, " ", sizePt)
}
