package render

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultEngine is the external binary used for PDF conversion when no
// converter is configured.
const DefaultEngine = "weasyprint"

// Converter turns a self-contained HTML document into PDF bytes.
// Implementations receive the full document over the call boundary and
// must not fetch anything themselves.
type Converter interface {
	Convert(doc string) ([]byte, error)
}

// EngineConverter shells out to an external conversion engine that
// reads HTML on stdin and writes PDF to stdout.
type EngineConverter struct {
	// Engine is the binary name or path. Empty means DefaultEngine.
	Engine string
}

// Convert runs the engine over doc. A missing binary fails with
// ErrEngineNotFound; a nonzero exit with ErrConversionFailed carrying
// the engine's stderr.
func (c *EngineConverter) Convert(doc string) ([]byte, error) {
	engine := c.Engine
	if engine == "" {
		engine = DefaultEngine
	}

	path, err := exec.LookPath(engine)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrEngineNotFound, engine)
	}

	cmd := exec.Command(path, "-", "-")
	cmd.Stdin = strings.NewReader(doc)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrConversionFailed, engine,
			strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
