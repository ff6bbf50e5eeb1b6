// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws certificates onto a one-page PDF template.
//
// A Renderer combines three read-only resources that are loaded once per
// generation session and shared by every recipient:
//
//   - typeset.FontSet: the Regular, Medium and SemiBold faces
//   - Template: the validated bytes of the template PDF and its page size
//   - Layout: the fixed certificate geometry (sizes, anchors, margins)
//
// Every Render call builds an independent document: a fresh github.com/go-pdf/fpdf
// document, a fresh gofpdi importer over its own reader of the template
// bytes, and freshly embedded fonts. Renders therefore share no mutable
// state and a Renderer may be used from several goroutines at once.
//
// # Usage
//
//	tpl, err := render.LoadTemplate(templateBytes)
//	if err != nil {
//	    return err // *certgen.TemplateError
//	}
//	r := render.NewRenderer(fonts, tpl, render.DefaultLayout())
//	pdf, err := r.RenderCertificate("Ana Ruiz", meta)
//
// # Coordinate System
//
// Coordinates are PDF points with the origin at the top-left corner of the
// page and Y increasing downwards. Y values are text baselines.
package render
