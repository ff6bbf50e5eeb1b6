package batch

import (
	"bytes"
	"context"
	"slices"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/certgen/render"
	"github.com/gogpu/certgen/typeset"
)

func realRenderer(t *testing.T) *render.Renderer {
	t.Helper()

	pdf := fpdf.New("L", "pt", "Letter", "")
	pdf.AddPage()
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("make template: %v", err)
	}
	tpl, err := render.LoadTemplate(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}

	fonts, err := typeset.LoadFontSet(typeset.FontBuffers{
		Regular:  goregular.TTF,
		Medium:   gomedium.TTF,
		SemiBold: gobold.TTF,
	})
	if err != nil {
		t.Fatalf("LoadFontSet() error = %v", err)
	}
	return render.NewRenderer(fonts, tpl, render.DefaultLayout())
}

// TestRenderBatchWithRenderer tests a full batch against real fonts and a
// real template.
func TestRenderBatchWithRenderer(t *testing.T) {
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	meta := typeset.CertificateMetadata{
		WorkshopTitle:  "Taller de Ventas",
		DurationHours:  "3",
		DateRangeStart: day,
		DateRangeEnd:   day,
		IssueDate:      day.AddDate(0, 0, 5),
	}
	a := NewAssembler(realRenderer(t), meta, WithWorkers(2))

	archive, err := a.RenderBatch(context.Background(), []Recipient{
		{ID: "10", DisplayName: "Ana Ruiz"},
		{ID: "11", DisplayName: "Juan Pérez"},
		{ID: "12"},
	})
	if err != nil {
		t.Fatalf("RenderBatch() error = %v", err)
	}
	if archive.Failed() != 0 {
		t.Fatalf("Failures = %v", archive.Failures)
	}

	want := []string{"Ana_Ruiz.pdf", "Juan_Perez.pdf", "Sin_nombre.pdf"}
	names, contents := readArchive(t, archive.Bytes)
	if !slices.Equal(names, want) {
		t.Errorf("zip entries = %q, want %q", names, want)
	}
	for _, n := range names {
		if _, err := render.LoadTemplate([]byte(contents[n])); err != nil {
			t.Errorf("%s is not a valid PDF: %v", n, err)
		}
	}
}
