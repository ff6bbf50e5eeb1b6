package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/certgen"
	"github.com/gogpu/certgen/typeset"
)

// CertificateRenderer renders the certificate of one recipient.
// *render.Renderer implements it.
type CertificateRenderer interface {
	RenderCertificate(name string, meta typeset.CertificateMetadata) ([]byte, error)
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithWorkers sets how many recipients are rendered concurrently.
// Values below 2 render sequentially, which is the default.
func WithWorkers(n int) Option {
	return func(a *Assembler) {
		a.workers = n
	}
}

// Assembler renders certificates of one generation session.
// The renderer and metadata are shared read-only by every recipient.
type Assembler struct {
	renderer CertificateRenderer
	meta     typeset.CertificateMetadata
	workers  int
}

// NewAssembler creates an Assembler for one workshop.
func NewAssembler(r CertificateRenderer, meta typeset.CertificateMetadata, opts ...Option) *Assembler {
	a := &Assembler{renderer: r, meta: meta, workers: 1}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RenderOne renders the certificate of a single recipient, e.g. for a
// preview or a single download. Failures are returned as *certgen.RenderError.
func (a *Assembler) RenderOne(ctx context.Context, rc Recipient) (GeneratedDocument, error) {
	if err := ctx.Err(); err != nil {
		return GeneratedDocument{}, err
	}

	start := time.Now()
	out, err := a.renderer.RenderCertificate(rc.Name(), a.meta)
	if err != nil {
		return GeneratedDocument{}, withRecipient(err, rc.ID)
	}

	certgen.ComponentLogger("batch").Debug("certificate rendered",
		"recipient", rc.ID, "bytes", len(out), "elapsed", time.Since(start))

	return GeneratedDocument{
		RecipientID: rc.ID,
		Filename:    SanitizeFilename(rc.Name()) + ".pdf",
		Bytes:       out,
	}, nil
}

// withRecipient attaches the recipient ID to a render failure.
func withRecipient(err error, id string) error {
	var re *certgen.RenderError
	if errors.As(err, &re) {
		tagged := *re
		tagged.RecipientID = id
		return &tagged
	}
	return &certgen.RenderError{RecipientID: id, Err: err}
}

// outcome is the result slot of one recipient.
type outcome struct {
	done bool
	doc  GeneratedDocument
	err  error
}

// RenderBatch renders every recipient and packs the successes into one ZIP
// archive. Entries follow the input order.
//
// An empty list is rejected with certgen.ErrEmptySelection before any work.
// Per-recipient failures never abort the batch; they are reported in
// Archive.Failures. If ctx is cancelled, recipients not yet started are
// skipped and RenderBatch returns the archive of the documents completed so
// far together with the context error.
func (a *Assembler) RenderBatch(ctx context.Context, recipients []Recipient) (*Archive, error) {
	if len(recipients) == 0 {
		return nil, certgen.ErrEmptySelection
	}

	start := time.Now()
	results := make([]outcome, len(recipients))

	if a.workers > 1 {
		a.renderParallel(ctx, recipients, results)
	} else {
		a.renderSequential(ctx, recipients, results)
	}

	archive, err := a.assemble(recipients, results)
	if err != nil {
		return nil, err
	}

	certgen.ComponentLogger("batch").Info("certificate batch finished",
		"succeeded", archive.Succeeded(),
		"failed", archive.Failed(),
		"pending", archive.Pending,
		"elapsed", time.Since(start))

	if err := ctx.Err(); err != nil {
		return archive, fmt.Errorf("batch: cancelled after %d of %d recipients: %w",
			archive.Succeeded()+archive.Failed(), len(recipients), err)
	}
	return archive, nil
}

func (a *Assembler) renderSequential(ctx context.Context, recipients []Recipient, results []outcome) {
	for i, rc := range recipients {
		if ctx.Err() != nil {
			return
		}
		results[i] = a.attempt(ctx, rc)
	}
}

func (a *Assembler) renderParallel(ctx context.Context, recipients []Recipient, results []outcome) {
	var g errgroup.Group
	g.SetLimit(a.workers)

	for i, rc := range recipients {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			// Each goroutine owns results[i]; no other slot is touched.
			results[i] = a.attempt(ctx, rc)
			return nil
		})
	}
	_ = g.Wait()
}

// attempt renders one recipient and logs a failure.
func (a *Assembler) attempt(ctx context.Context, rc Recipient) outcome {
	if ctx.Err() != nil {
		return outcome{}
	}
	doc, err := a.RenderOne(ctx, rc)
	if err != nil && errors.Is(err, ctx.Err()) {
		// Cancelled before rendering started: still pending, not failed.
		return outcome{}
	}
	if err != nil {
		certgen.ComponentLogger("batch").Warn("certificate skipped",
			"recipient", rc.ID, "name", rc.Name(), "error", err)
	}
	return outcome{done: true, doc: doc, err: err}
}

// assemble names the successful documents in input order and packs them.
func (a *Assembler) assemble(recipients []Recipient, results []outcome) (*Archive, error) {
	archive := &Archive{}
	names := newFilenamer()

	for i, res := range results {
		switch {
		case !res.done:
			archive.Pending++
		case res.err != nil:
			archive.Failures = append(archive.Failures, Failure{Recipient: recipients[i], Err: res.err})
		default:
			doc := res.doc
			doc.Filename = names.next(recipients[i].Name())
			archive.Documents = append(archive.Documents, doc)
		}
	}

	data, err := packDocuments(archive.Documents)
	if err != nil {
		return nil, err
	}
	archive.Bytes = data
	return archive, nil
}
