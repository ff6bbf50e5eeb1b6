// Package typeset lays out the body text of a certificate.
//
// The pipeline is split into small pure steps:
//
//   - FontSet: the three shared faces (Regular, Medium, SemiBold) and their
//     advance-width measurement
//   - WordRun builders: metadata decomposed into space-delimited words, each
//     tagged with the face that renders it
//   - Wrap: greedy line breaking of a run sequence within a maximum width
//   - Justify: per-word X offsets for justified or left-aligned lines
//   - Flow: absolute Y positions for two consecutive paragraphs
//
// # Example usage
//
//	fonts, err := typeset.LoadFontSet(typeset.FontBuffers{
//	    Regular:  regular,
//	    Medium:   medium,
//	    SemiBold: semibold,
//	})
//	if err != nil {
//	    return err
//	}
//
//	p1 := typeset.Wrap(typeset.BuildParagraph1Runs(meta), 460, fonts, 12)
//	p2 := typeset.Wrap(typeset.BuildParagraph2Runs(meta), 460, fonts, 12)
//	placed := typeset.Flow(p1, p2, typeset.DefaultFlowOptions())
//
// All measurement goes through the Measurer interface, so layout can be
// tested without real fonts.
package typeset
