package source

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/gogpu/certgen/batch"
	"github.com/gogpu/certgen/typeset"
)

// dateLayout is the wire format of metadata dates.
const dateLayout = "2006-01-02"

// Input errors.
var (
	// ErrInvalidJSON is returned for malformed JSON input.
	ErrInvalidJSON = errors.New("source: invalid JSON")

	// ErrNotArray is returned when the recipient payload is not a JSON array.
	ErrNotArray = errors.New("source: recipients must be a JSON array")
)

// NameFields are the response fields searched, in order, for a display name.
// Paths use gjson syntax.
var NameFields = []string{
	"nombre",
	"name",
	"nombre_completo",
	"full_name",
	"respuestas.nombre",
	"answers.name",
}

// ParseRecipients decodes a JSON array of survey responses into recipients.
//
// The ID comes from "id" (string or number), falling back to the 1-based
// position. The display name is the first non-blank NameFields value, or
// batch.FallbackName when none is present.
func ParseRecipients(data []byte) ([]batch.Recipient, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrNotArray
	}

	var out []batch.Recipient
	root.ForEach(func(_, resp gjson.Result) bool {
		id := strings.TrimSpace(resp.Get("id").String())
		if id == "" {
			id = strconv.Itoa(len(out) + 1)
		}
		out = append(out, batch.Recipient{ID: id, DisplayName: displayName(resp)})
		return true
	})
	return out, nil
}

func displayName(resp gjson.Result) string {
	for _, path := range NameFields {
		if v := resp.Get(path); v.Type == gjson.String {
			if name := strings.Join(strings.Fields(v.String()), " "); name != "" {
				return name
			}
		}
	}
	return batch.FallbackName
}

// ParseMetadata decodes the workshop metadata:
//
//	{
//	  "workshop_title": "Taller de Ventas",
//	  "duration_hours": 3,
//	  "date_range_start": "2026-02-10",
//	  "date_range_end": "2026-02-10",
//	  "issue_date": "2026-02-15"
//	}
//
// date_range_end defaults to date_range_start. duration_hours may be a
// string or a number.
func ParseMetadata(data []byte) (typeset.CertificateMetadata, error) {
	var meta typeset.CertificateMetadata
	if !gjson.ValidBytes(data) {
		return meta, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)

	meta.WorkshopTitle = strings.TrimSpace(root.Get("workshop_title").String())
	meta.DurationHours = strings.TrimSpace(root.Get("duration_hours").String())

	var err error
	if meta.DateRangeStart, err = parseDate(root, "date_range_start"); err != nil {
		return meta, err
	}
	meta.DateRangeEnd = meta.DateRangeStart
	if root.Get("date_range_end").Exists() {
		if meta.DateRangeEnd, err = parseDate(root, "date_range_end"); err != nil {
			return meta, err
		}
	}
	if meta.IssueDate, err = parseDate(root, "issue_date"); err != nil {
		return meta, err
	}
	return meta, nil
}

func parseDate(root gjson.Result, field string) (time.Time, error) {
	v := root.Get(field)
	if !v.Exists() {
		return time.Time{}, fmt.Errorf("source: missing %s", field)
	}
	d, err := time.Parse(dateLayout, strings.TrimSpace(v.String()))
	if err != nil {
		return time.Time{}, fmt.Errorf("source: %s: %w", field, err)
	}
	return d, nil
}
