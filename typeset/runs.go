package typeset

import (
	"fmt"
	"strings"
	"time"
)

// Quote glyphs wrapped around the workshop title.
const (
	openQuote  = "“"
	closeQuote = "”"
)

// Fixed sentences of the certificate body.
const (
	paragraph1Preamble = "Por su destacada participación en el taller"
	paragraph1Closing  = "con una duración de %s horas, llevado a cabo del %s."
	paragraph2Sentence = "La presente constancia se expide a los %s."
)

// CertificateMetadata describes the workshop a certificate is issued for.
// It is supplied already validated by the caller.
type CertificateMetadata struct {
	WorkshopTitle  string    `json:"workshop_title"`
	DurationHours  string    `json:"duration_hours"`
	DateRangeStart time.Time `json:"date_range_start"`
	DateRangeEnd   time.Time `json:"date_range_end"`
	IssueDate      time.Time `json:"issue_date"`
}

// WordRun is a single space-delimited word annotated with the face that
// renders it. Attached punctuation is part of Text.
type WordRun struct {
	Text string
	Role FontRole
}

// String returns the run as "text/Role", useful in test failures.
func (r WordRun) String() string {
	return r.Text + "/" + r.Role.String()
}

// appendWords splits s on whitespace and appends one run per word.
// Empty and whitespace-only strings append nothing.
func appendWords(dst []WordRun, s string, role FontRole) []WordRun {
	for _, w := range strings.Fields(s) {
		dst = append(dst, WordRun{Text: w, Role: role})
	}
	return dst
}

// titleRuns returns the SemiBold runs of the workshop title, quoted and
// followed by a comma. A one-word title carries both decorations.
func titleRuns(title string) []WordRun {
	runs := appendWords(nil, title, SemiBold)
	if len(runs) == 0 {
		return nil
	}
	runs[0].Text = openQuote + runs[0].Text
	last := len(runs) - 1
	runs[last].Text = runs[last].Text + closeQuote + ","
	return runs
}

// BuildParagraph1Runs returns the runs of the first paragraph: the Regular
// preamble, the SemiBold quoted title and the Regular closing sentence
// with duration and date range.
func BuildParagraph1Runs(meta CertificateMetadata) []WordRun {
	closing := fmt.Sprintf(paragraph1Closing,
		strings.TrimSpace(meta.DurationHours),
		FormatDateRange(meta.DateRangeStart, meta.DateRangeEnd))

	runs := appendWords(nil, paragraph1Preamble, Regular)
	runs = append(runs, titleRuns(meta.WorkshopTitle)...)
	return appendWords(runs, closing, Regular)
}

// BuildParagraph2Runs returns the runs of the second paragraph, all Regular.
func BuildParagraph2Runs(meta CertificateMetadata) []WordRun {
	return appendWords(nil, fmt.Sprintf(paragraph2Sentence, FormatDateText(meta.IssueDate)), Regular)
}
