// Package certgen generates workshop participation certificates as PDF
// documents.
//
// # Overview
//
// A certificate is a fixed one-page PDF template overlaid with the
// recipient's name, centered and uppercased, and two justified body
// paragraphs that mix three font weights. One document is rendered per
// recipient; a batch of documents is packed into a single ZIP archive.
//
// # Packages
//
//   - typeset: font loading and measurement, word runs, line breaking,
//     justification and paragraph flow
//   - render: template loading and per-recipient PDF rendering
//   - batch: single and batch rendering, filename sanitizing, archives
//   - source: fetching templates and fonts, parsing recipients and metadata
//
// # Quick Start
//
//	session, err := source.LoadSession(ctx, &source.Fetcher{}, source.Locations{
//		Template: "plantilla.pdf",
//		Regular:  "Poppins-Regular.ttf",
//		Medium:   "Poppins-Medium.ttf",
//		SemiBold: "Poppins-SemiBold.ttf",
//	})
//	if err != nil {
//		return err
//	}
//	asm := batch.NewAssembler(session.Renderer(render.DefaultLayout()), meta)
//	archive, err := asm.RenderBatch(ctx, recipients)
//
// # Errors
//
// Resource failures (*ResourceLoadError, *TemplateError) abort a session.
// Per-recipient failures (*RenderError) are skipped by a batch and reported
// in the archive. UserMessage maps any of them to a short Spanish message
// suitable for display.
//
// # Logging
//
// certgen is silent by default. Call SetLogger to route its log/slog output.
package certgen
