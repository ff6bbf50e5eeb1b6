// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/certgen"
	"github.com/gogpu/certgen/typeset"
)

// fontFamilies maps each role to the family name it is registered under
// in the output document.
var fontFamilies = [...]string{
	typeset.Regular:  "cert-regular",
	typeset.Medium:   "cert-medium",
	typeset.SemiBold: "cert-semibold",
}

// ErrNilResource is returned when a Renderer is used without fonts or template.
var ErrNilResource = errors.New("render: renderer has no fonts or template")

// Renderer draws certificates for one generation session.
//
// Renderer is safe for concurrent use.
type Renderer struct {
	fonts    *typeset.FontSet
	template *Template
	layout   Layout
}

// NewRenderer creates a Renderer over shared, already loaded resources.
func NewRenderer(fonts *typeset.FontSet, template *Template, layout Layout) *Renderer {
	return &Renderer{fonts: fonts, template: template, layout: layout}
}

// Layout returns the geometry used by the renderer.
func (r *Renderer) Layout() Layout { return r.layout }

// BodyWidth returns the width of the body text block.
func (r *Renderer) BodyWidth() float64 {
	w, _ := r.template.Size()
	return r.layout.bodyWidth(w)
}

// Compose typesets both body paragraphs of a certificate.
func (r *Renderer) Compose(meta typeset.CertificateMetadata) []typeset.PlacedLine {
	maxWidth := r.BodyWidth()
	size := r.layout.BodySize

	first := typeset.Wrap(typeset.BuildParagraph1Runs(meta), maxWidth, r.fonts, size)
	second := typeset.Wrap(typeset.BuildParagraph2Runs(meta), maxWidth, r.fonts, size)
	return typeset.Flow(first, second, r.layout.Flow)
}

// NamePlacement returns the uppercased recipient name and the baseline
// origin it is drawn at: horizontally centered on the page, plus
// NameOffsetX.
func (r *Renderer) NamePlacement(name string) (text string, x, y float64) {
	// cases.Caser is stateful; one per call keeps Renderer goroutine-safe.
	text = cases.Upper(language.Spanish).String(strings.TrimSpace(name))

	pageWidth, _ := r.template.Size()
	width := r.fonts.Measure(typeset.Medium, text, r.layout.NameSize)
	x = (pageWidth-width)/2 + r.layout.NameOffsetX
	return text, x, r.layout.NameY
}

// RenderCertificate composes and renders the certificate of one recipient.
func (r *Renderer) RenderCertificate(name string, meta typeset.CertificateMetadata) ([]byte, error) {
	if r.fonts == nil || r.template == nil {
		return nil, &certgen.RenderError{Err: ErrNilResource}
	}
	return r.Render(name, r.Compose(meta))
}

// Render draws the centered name and the placed body lines onto a fresh
// copy of the template page and returns the serialized PDF.
//
// Font embedding and drawing failures are returned as *certgen.RenderError.
// The shared template is never modified.
func (r *Renderer) Render(name string, lines []typeset.PlacedLine) (out []byte, err error) {
	if r.fonts == nil || r.template == nil {
		return nil, &certgen.RenderError{Err: ErrNilResource}
	}

	defer func() {
		if err != nil {
			var tplErr *certgen.TemplateError
			if !errors.As(err, &tplErr) {
				err = &certgen.RenderError{Err: err}
			}
		}
	}()
	defer recoverInto(&err)

	pdf, err := r.newTarget()
	if err != nil {
		return nil, err
	}

	text, x, y := r.NamePlacement(name)
	pdf.SetFont(fontFamilies[typeset.Medium], "", r.layout.NameSize)
	pdf.Text(x, y, text)

	r.drawBody(pdf, lines)

	if pdf.Err() {
		return nil, pdf.Error()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// newTarget creates the per-render document: one page holding an imported
// copy of the template, with all three fonts embedded.
func (r *Renderer) newTarget() (*fpdf.Fpdf, error) {
	w, h := r.template.Size()

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	for _, role := range typeset.Roles {
		pdf.AddUTF8FontFromBytes(fontFamilies[role], "", r.fonts.Bytes(role))
		if pdf.Err() {
			return nil, pdf.Error()
		}
	}

	pdf.AddPage()

	imp := gofpdi.NewImporter()
	rs := r.template.reader()
	tpl := imp.ImportPageFromStream(pdf, &rs, 1, templateBox)
	imp.UseImportedTemplate(pdf, tpl, 0, 0, w, h)
	if pdf.Err() {
		return nil, &certgen.TemplateError{Err: pdf.Error()}
	}

	c := r.layout.TextColor
	pdf.SetTextColor(c[0], c[1], c[2])
	return pdf, nil
}

// drawBody draws every placed line word by word at its justified offset.
func (r *Renderer) drawBody(pdf *fpdf.Fpdf, lines []typeset.PlacedLine) {
	maxWidth := r.BodyWidth()
	size := r.layout.BodySize

	current := -1
	for i := range lines {
		pl := &lines[i]
		for _, run := range typeset.Justify(&pl.Line, maxWidth, r.fonts, size) {
			if int(run.Role) != current {
				pdf.SetFont(fontFamilies[run.Role], "", size)
				current = int(run.Role)
			}
			pdf.Text(pl.X+run.X, pl.Y, run.Text)
		}
	}
}
