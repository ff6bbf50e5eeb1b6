// Package certgen implements the certgen command: it loads a generation
// session, renders every recipient and writes the resulting archive.
package certgen

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/gogpu/certgen"
	"github.com/gogpu/certgen/batch"
	"github.com/gogpu/certgen/render"
	"github.com/gogpu/certgen/source"
	"github.com/gogpu/certgen/typeset"
)

// DefaultArchiveName is the output file written when -out is not set.
const DefaultArchiveName = "certificados.zip"

// Config holds certgen command configuration.
type Config struct {
	Template     string        `env:"CERTGEN_TEMPLATE"`
	FontRegular  string        `env:"CERTGEN_FONT_REGULAR"`
	FontMedium   string        `env:"CERTGEN_FONT_MEDIUM"`
	FontSemiBold string        `env:"CERTGEN_FONT_SEMIBOLD"`
	Workers      int           `env:"CERTGEN_WORKERS"       envDefault:"1"`
	FetchTimeout time.Duration `env:"CERTGEN_FETCH_TIMEOUT" envDefault:"30s"`
	LogLevel     string        `env:"CERTGEN_LOG_LEVEL"     envDefault:"info"`

	Recipients string
	Metadata   string
	Out        string
	Preview    bool
}

// ParseConfig parses env vars and flags into a Config. Flags override env.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Template, "template", cfg.Template, "template PDF path or URL")
	fs.StringVar(&cfg.FontRegular, "font-regular", cfg.FontRegular, "regular font path or URL")
	fs.StringVar(&cfg.FontMedium, "font-medium", cfg.FontMedium, "medium font path or URL")
	fs.StringVar(&cfg.FontSemiBold, "font-semibold", cfg.FontSemiBold, "semibold font path or URL")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent renders")
	fs.DurationVar(&cfg.FetchTimeout, "fetch-timeout", cfg.FetchTimeout, "timeout per URL fetch")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Recipients, "recipients", "", "survey responses JSON path or URL")
	fs.StringVar(&cfg.Metadata, "metadata", "", "workshop metadata JSON path or URL")
	fs.StringVar(&cfg.Out, "out", DefaultArchiveName, "output file")
	fs.BoolVar(&cfg.Preview, "preview", false, "write only the first recipient's PDF")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	required := []struct{ name, value string }{
		{"template", c.Template},
		{"font-regular", c.FontRegular},
		{"font-medium", c.FontMedium},
		{"font-semibold", c.FontSemiBold},
		{"recipients", c.Recipients},
		{"metadata", c.Metadata},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("-%s is required", r.name)
		}
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})), nil
}

// Run executes the certgen command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	logger, err := newLogger(errOut, cfg.LogLevel)
	if err != nil {
		return err
	}
	certgen.SetLogger(logger)
	defer certgen.SetLogger(nil)

	fetcher := &source.Fetcher{Timeout: cfg.FetchTimeout}
	session, err := source.LoadSession(ctx, fetcher, source.Locations{
		Template: cfg.Template,
		Regular:  cfg.FontRegular,
		Medium:   cfg.FontMedium,
		SemiBold: cfg.FontSemiBold,
	})
	if err != nil {
		return err
	}

	recipients, err := loadRecipients(ctx, fetcher, cfg.Recipients)
	if err != nil {
		return err
	}
	meta, err := loadMetadata(ctx, fetcher, cfg.Metadata)
	if err != nil {
		return err
	}

	asm := batch.NewAssembler(session.Renderer(render.DefaultLayout()), meta,
		batch.WithWorkers(cfg.Workers))

	if cfg.Preview {
		return preview(ctx, asm, recipients, cfg.Out, out)
	}
	return generate(ctx, asm, recipients, cfg.Out, out)
}

func loadRecipients(ctx context.Context, l source.Loader, location string) ([]batch.Recipient, error) {
	data, err := l.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	recipients, err := source.ParseRecipients(data)
	if err != nil {
		return nil, fmt.Errorf("recipients %s: %w", location, err)
	}
	return recipients, nil
}

func loadMetadata(ctx context.Context, l source.Loader, location string) (meta typeset.CertificateMetadata, err error) {
	data, err := l.Fetch(ctx, location)
	if err != nil {
		return meta, err
	}
	meta, err = source.ParseMetadata(data)
	if err != nil {
		return meta, fmt.Errorf("metadata %s: %w", location, err)
	}
	return meta, nil
}

func preview(ctx context.Context, asm *batch.Assembler, recipients []batch.Recipient, path string, out io.Writer) error {
	if len(recipients) == 0 {
		return certgen.ErrEmptySelection
	}
	doc, err := asm.RenderOne(ctx, recipients[0])
	if err != nil {
		return err
	}
	if path == DefaultArchiveName {
		path = doc.Filename
	}
	if err := writeFile(path, doc.Bytes); err != nil {
		return err
	}
	fmt.Fprintf(out, "Vista previa de %s guardada en %s\n", recipients[0].Name(), path)
	return nil
}

func generate(ctx context.Context, asm *batch.Assembler, recipients []batch.Recipient, path string, out io.Writer) error {
	archive, err := asm.RenderBatch(ctx, recipients)
	if archive == nil {
		return err
	}
	if archive.Succeeded() > 0 {
		if werr := writeFile(path, archive.Bytes); werr != nil {
			return errors.Join(err, werr)
		}
	}

	fmt.Fprintf(out, "%d constancias generadas, %d con error", archive.Succeeded(), archive.Failed())
	if archive.Pending > 0 {
		fmt.Fprintf(out, ", %d sin procesar", archive.Pending)
	}
	fmt.Fprintln(out)
	for _, f := range archive.Failures {
		fmt.Fprintf(out, "  %s (%s): %s\n", f.Recipient.Name(), f.Recipient.ID, certgen.UserMessage(f.Err))
	}
	if archive.Succeeded() > 0 {
		fmt.Fprintf(out, "Archivo guardado en %s\n", path)
	}
	return err
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	// #nosec G306 -- generated certificates are meant to be shared
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
