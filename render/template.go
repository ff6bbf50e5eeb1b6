// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"

	"github.com/gogpu/certgen"
)

// templateBox is the page box imported from the template.
const templateBox = "/MediaBox"

// trailerWindow is how far from the end of the file the startxref keyword
// and the EOF marker are looked for.
const trailerWindow = 1024

// Template errors, wrapped in *certgen.TemplateError.
var (
	// ErrEmptyTemplate is returned for an empty template buffer.
	ErrEmptyTemplate = errors.New("render: empty template data")

	// ErrNotPDF is returned when the template does not start with a PDF header.
	ErrNotPDF = errors.New("render: template is not a PDF document")

	// ErrNoPageSize is returned when the template page has no usable media box.
	ErrNoPageSize = errors.New("render: template page has no media box")

	// ErrNoTrailer is returned when the template lacks a startxref/%%EOF
	// trailer, as truncated downloads do.
	ErrNoTrailer = errors.New("render: template has no PDF trailer")
)

// Template is a validated one-page PDF template.
// It is read-only and safe for concurrent use: each render imports the page
// from its own reader over the shared bytes.
type Template struct {
	data   []byte
	width  float64
	height float64
}

// LoadTemplate validates a template PDF and reads the size of its first page.
// The data slice is copied internally and can be reused after this call.
func LoadTemplate(data []byte) (*Template, error) {
	if len(data) == 0 {
		return nil, &certgen.TemplateError{Err: ErrEmptyTemplate}
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, &certgen.TemplateError{Err: ErrNotPDF}
	}
	// gofpdi never returns on a file without a cross-reference trailer.
	if !hasTrailer(data) {
		return nil, &certgen.TemplateError{Err: ErrNoTrailer}
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	t := &Template{data: dataCopy}
	w, h, err := t.probe()
	if err != nil {
		return nil, &certgen.TemplateError{Err: err}
	}
	t.width, t.height = w, h
	return t, nil
}

// hasTrailer reports whether the tail of data holds both the startxref
// keyword and the %%EOF marker.
func hasTrailer(data []byte) bool {
	tail := data[max(0, len(data)-trailerWindow):]
	i := bytes.LastIndex(tail, []byte("startxref"))
	return i >= 0 && bytes.Contains(tail[i:], []byte("%%EOF"))
}

// probe imports the first page into a scratch document to make sure the
// template parses, and returns its media box size in points.
func (t *Template) probe() (w, h float64, err error) {
	defer recoverInto(&err)

	scratch := fpdf.NewCustom(&fpdf.InitType{UnitStr: "pt", OrientationStr: "P"})
	scratch.AddPage()

	imp := gofpdi.NewImporter()
	rs := t.reader()
	imp.ImportPageFromStream(scratch, &rs, 1, templateBox)
	if scratch.Err() {
		return 0, 0, scratch.Error()
	}

	box, ok := imp.GetPageSizes()[1][templateBox]
	if !ok || box["w"] <= 0 || box["h"] <= 0 {
		return 0, 0, ErrNoPageSize
	}
	return box["w"], box["h"], nil
}

// reader returns a new independent reader over the template bytes.
func (t *Template) reader() io.ReadSeeker {
	return bytes.NewReader(t.data)
}

// Size returns the page width and height in points.
func (t *Template) Size() (width, height float64) {
	return t.width, t.height
}

// Len returns the size of the template document in bytes.
func (t *Template) Len() int {
	return len(t.data)
}

// recoverInto converts a panic raised by the PDF libraries into an error.
// gofpdi reports malformed input by panicking.
func recoverInto(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = fmt.Errorf("render: pdf: %w", e)
			return
		}
		*err = fmt.Errorf("render: pdf: %v", r)
	}
}
