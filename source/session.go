package source

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/certgen"
	"github.com/gogpu/certgen/render"
	"github.com/gogpu/certgen/typeset"
)

// Locations names where the shared resources of a session come from.
// Each value is a file path or an http(s) URL.
type Locations struct {
	Template string
	Regular  string
	Medium   string
	SemiBold string
}

// Session holds the read-only resources shared by every recipient of one
// generation call: they are fetched once and never per recipient.
type Session struct {
	Fonts    *typeset.FontSet
	Template *render.Template
}

// LoadSession fetches the template and the three fonts concurrently and
// parses them. Any failure aborts the whole session with a
// *certgen.ResourceLoadError or *certgen.TemplateError.
func LoadSession(ctx context.Context, loader Loader, locs Locations) (*Session, error) {
	var (
		tplData []byte
		fonts   typeset.FontBuffers
	)

	g, gctx := errgroup.WithContext(ctx)
	fetch := func(resource, location string, dst *[]byte) {
		g.Go(func() error {
			data, err := loader.Fetch(gctx, location)
			if err != nil {
				return &certgen.ResourceLoadError{Resource: resource, Err: err}
			}
			*dst = data
			return nil
		})
	}
	fetch("template", locs.Template, &tplData)
	fetch("font:"+typeset.Regular.String(), locs.Regular, &fonts.Regular)
	fetch("font:"+typeset.Medium.String(), locs.Medium, &fonts.Medium)
	fetch("font:"+typeset.SemiBold.String(), locs.SemiBold, &fonts.SemiBold)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fs, err := typeset.LoadFontSet(fonts)
	if err != nil {
		return nil, err
	}
	if err := render.CheckFonts(fs); err != nil {
		return nil, err
	}
	tpl, err := render.LoadTemplate(tplData)
	if err != nil {
		return nil, err
	}

	w, h := tpl.Size()
	certgen.ComponentLogger("source").Info("generation session loaded",
		"template_bytes", tpl.Len(), "page_width", w, "page_height", h)

	return &Session{Fonts: fs, Template: tpl}, nil
}

// Renderer returns a renderer over the session resources.
func (s *Session) Renderer(layout render.Layout) *render.Renderer {
	return render.NewRenderer(s.Fonts, s.Template, layout)
}
