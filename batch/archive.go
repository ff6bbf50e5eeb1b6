package batch

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Failure records a recipient that could not be rendered.
type Failure struct {
	Recipient Recipient
	Err       error
}

// Archive is the outcome of a batch: the ZIP bytes plus the counts the
// caller reports to the user. A partial batch is a valid Archive.
type Archive struct {
	// Bytes is the ZIP archive holding one PDF per successful recipient.
	Bytes []byte

	// Documents are the successful documents, in input order.
	Documents []GeneratedDocument

	// Failures lists the skipped recipients, in input order.
	Failures []Failure

	// Pending counts recipients never attempted because the batch was cancelled.
	Pending int
}

// Entries returns the archive entry names in order.
func (a *Archive) Entries() []string {
	names := make([]string, len(a.Documents))
	for i, d := range a.Documents {
		names[i] = d.Filename
	}
	return names
}

// Succeeded returns the number of rendered recipients.
func (a *Archive) Succeeded() int { return len(a.Documents) }

// Failed returns the number of skipped recipients.
func (a *Archive) Failed() int { return len(a.Failures) }

// packDocuments writes the documents into a ZIP archive in slice order.
func packDocuments(docs []GeneratedDocument) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, doc := range docs {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   doc.Filename,
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, fmt.Errorf("batch: create entry %q: %w", doc.Filename, err)
		}
		if _, err := w.Write(doc.Bytes); err != nil {
			return nil, fmt.Errorf("batch: write entry %q: %w", doc.Filename, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("batch: close archive: %w", err)
	}
	return buf.Bytes(), nil
}
