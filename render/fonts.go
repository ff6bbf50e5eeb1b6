// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/go-pdf/fpdf"

	"github.com/gogpu/certgen"
	"github.com/gogpu/certgen/typeset"
)

// ErrFontNotEmbeddable is returned when a font parses but the PDF writer
// cannot embed it, e.g. CFF-flavoured OpenType.
var ErrFontNotEmbeddable = errors.New("render: font cannot be embedded")

// CheckFonts embeds every face of fonts into a scratch document, the same
// way Render does. A face that fails yields a *certgen.ResourceLoadError
// naming its role, so the failure surfaces once per session instead of once
// per recipient.
func CheckFonts(fonts *typeset.FontSet) error {
	if fonts == nil {
		return &certgen.ResourceLoadError{Resource: "fonts", Err: ErrNilResource}
	}
	for _, role := range typeset.Roles {
		if err := checkFont(fonts, role); err != nil {
			return &certgen.ResourceLoadError{Resource: "font:" + role.String(), Err: err}
		}
	}
	return nil
}

func checkFont(fonts *typeset.FontSet, role typeset.FontRole) (err error) {
	defer recoverInto(&err)

	scratch := fpdf.NewCustom(&fpdf.InitType{UnitStr: "pt", OrientationStr: "P"})
	scratch.AddUTF8FontFromBytes(fontFamilies[role], "", fonts.Bytes(role))
	if scratch.Err() {
		return errors.Join(ErrFontNotEmbeddable, scratch.Error())
	}

	// fpdf skips some unsupported fonts without an error; SetFont then
	// reports the family as undefined.
	scratch.AddPage()
	scratch.SetFont(fontFamilies[role], "", 12)
	if scratch.Err() {
		return errors.Join(ErrFontNotEmbeddable, scratch.Error())
	}
	return nil
}
