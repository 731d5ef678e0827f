package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/logging"
)

const (
	fontFamily = "Helvetica"
	pdfCreator = "footprint"
)

// Renderer writes client reports as <Dir>/<sanitized name>_<Suffix>.pdf.
type Renderer struct {
	dir      string
	suffix   string
	compress bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCompression toggles PDF stream compression. Enabled by default.
func WithCompression(enabled bool) Option {
	return func(r *Renderer) { r.compress = enabled }
}

// NewRenderer returns a Renderer writing into dir with the given file suffix.
func NewRenderer(dir, suffix string, opts ...Option) *Renderer {
	r := &Renderer{dir: dir, suffix: suffix, compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the report path for a client name.
func (r *Renderer) Path(name string) string {
	return filepath.Join(r.dir, fmt.Sprintf("%s_%s.pdf", SanitizeName(name), r.suffix))
}

// WriteReport renders rec to its conventional path and returns that path.
func (r *Renderer) WriteReport(ctx context.Context, rec footprint.ClientRecord) (string, error) {
	log := logging.FromContext(ctx).With().Str("component", "report").Logger()

	path := r.Path(rec.Name)
	if _, err := os.Stat(path); err == nil {
		log.Warn().Str("path", path).Str("client", rec.Name).Msg("overwriting existing report")
	}

	if err := r.Render(rec, path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("report render failed")
		return "", err
	}

	log.Debug().
		Str("path", path).
		Str("client", rec.Name).
		Float64("footprint_kg", rec.TotalFootprint).
		Msg("report written")
	return path, nil
}

// Render writes rec as a one-page PDF to path, creating parent directories.
func (r *Renderer) Render(rec footprint.ClientRecord, path string) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if mkErr := os.MkdirAll(dir, 0o750); mkErr != nil {
			return fmt.Errorf("creating reports directory %q: %w", dir, mkErr)
		}
	}

	f, err := os.Create(path) //nolint:gosec // Path is built from a sanitized name.
	if err != nil {
		return fmt.Errorf("creating report %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing report %q: %w", path, closeErr)
		}
	}()

	if err = r.Write(f, rec); err != nil {
		return fmt.Errorf("writing report %q: %w", path, err)
	}
	return nil
}

// Write renders rec as PDF to w.
func (r *Renderer) Write(w io.Writer, rec footprint.ClientRecord) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	pdf.SetCompression(r.compress)
	pdf.SetCreator(pdfCreator, false)
	pdf.SetTitle(fmt.Sprintf("%s - %s", Title, rec.Name), true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Core fonts are cp1252; translate so accented names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range Layout(rec) {
		style := ""
		if line.Bold {
			style = "B"
		}
		pdf.SetFont(fontFamily, style, line.Size)
		pdf.Text(line.X, line.Y, tr(line.Text))
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("encoding pdf: %w", err)
	}
	return nil
}
