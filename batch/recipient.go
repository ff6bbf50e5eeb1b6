package batch

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackName is the display name used when a recipient has none.
const FallbackName = "Sin nombre"

// fallbackFilename is used when nothing of the display name survives sanitizing.
const fallbackFilename = "certificado"

// Recipient is one attendee selected for a certificate.
type Recipient struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Name returns the display name, or FallbackName when it is blank.
func (r Recipient) Name() string {
	if name := strings.TrimSpace(r.DisplayName); name != "" {
		return name
	}
	return FallbackName
}

// GeneratedDocument is the finished certificate of one recipient.
// Bytes must not be modified once the document is returned.
type GeneratedDocument struct {
	RecipientID string
	Filename    string
	Bytes       []byte
}

// SanitizeFilename turns a display name into a portable file name stem:
// accents are folded ("Pérez" becomes "Perez"), every run of characters
// outside [A-Za-z0-9.-] becomes a single underscore, and leading or
// trailing separators are trimmed.
func SanitizeFilename(name string) string {
	// transform chains are stateful; build one per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pending := false
	for _, r := range folded {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			if pending {
				b.WriteByte('_')
				pending = false
			}
			b.WriteRune(r)
			continue
		}
		pending = b.Len() > 0
	}

	stem := strings.Trim(b.String(), "_.-")
	if stem == "" {
		return fallbackFilename
	}
	return stem
}

// filenamer hands out unique archive entry names.
type filenamer struct {
	used map[string]bool
}

func newFilenamer() *filenamer {
	return &filenamer{used: make(map[string]bool)}
}

// next returns "<stem>.pdf", or "<stem>-N.pdf" when that name is taken.
// Names are compared case-insensitively.
func (f *filenamer) next(displayName string) string {
	stem := SanitizeFilename(displayName)
	name := stem + ".pdf"
	for n := 2; f.used[strings.ToLower(name)]; n++ {
		name = stem + "-" + strconv.Itoa(n) + ".pdf"
	}
	f.used[strings.ToLower(name)] = true
	return name
}
