package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/pagegrid"
	"github.com/nao1215/pagegrid/deps"
)

// SaveHTML renders page and writes the document to path atomically.
func SaveHTML(page *pagegrid.Node, path string, opts ...Option) error {
	doc, err := HTML(page, opts...)
	if err != nil {
		return err
	}
	return writeAtomic(path, []byte(doc))
}

// SavePDF renders page, converts it with the configured converter, and
// writes the result to path atomically. Provisioning is forced inline
// so the engine never needs network access; a failed conversion writes
// nothing.
func SavePDF(page *pagegrid.Node, path string, opts ...Option) error {
	r := newRenderer(opts)
	r.source = deps.SourceInline

	doc, err := htmlDocument(page, r)
	if err != nil {
		return err
	}

	conv := r.converter
	if conv == nil {
		conv = &EngineConverter{}
	}
	pdf, err := conv.Convert(doc)
	if err != nil {
		return err
	}
	return writeAtomic(path, pdf)
}

// writeAtomic stages data in a temporary file beside path and renames
// it into place, so readers never observe a partial file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pagegrid-*")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck,gosec
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temporary file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
