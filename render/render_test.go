package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/nao1215/pagegrid"
	"github.com/nao1215/pagegrid/content"
	"github.com/nao1215/pagegrid/deps"
)

func buildPage(t *testing.T, pageOpts ...pagegrid.PageOption) *pagegrid.Node {
	t.Helper()

	page := pagegrid.NewPage("Weekly Report", pageOpts...)
	if err := page.Set("Intro", "Hello *world*"); err != nil {
		t.Fatal(err)
	}
	if err := page.Set("Data", []any{"left", "right"}); err != nil {
		t.Fatal(err)
	}
	return page
}

func TestHTML(t *testing.T) {
	t.Parallel()

	page := buildPage(t, pagegrid.WithNavBrand("acme <labs>"))
	doc, err := HTML(page)
	if err != nil {
		t.Fatal(err)
	}

	wants := []string{
		"<!DOCTYPE html>",
		"<title>Weekly Report</title>",
		"acme &lt;labs&gt;",
		"cdnjs.cloudflare.com",
		"pg-page-body",
		"<em>world</em>",
	}
	for _, want := range wants {
		if !strings.Contains(doc, want) {
			t.Errorf("HTML() missing %q", want)
		}
	}
}

func TestHTMLIsWellFormed(t *testing.T) {
	t.Parallel()

	doc, err := HTML(buildPage(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := html.Parse(strings.NewReader(doc)); err != nil {
		t.Errorf("output does not parse as HTML: %v", err)
	}
}

func TestHTMLDeterministic(t *testing.T) {
	t.Parallel()

	page := buildPage(t)
	first, err := HTML(page)
	if err != nil {
		t.Fatal(err)
	}
	second, err := HTML(page)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("HTML() output differs across calls on an unmodified page")
	}
}

func TestHTMLInlineSource(t *testing.T) {
	t.Parallel()

	doc, err := HTML(buildPage(t), WithSource(deps.SourceInline))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(doc, "cdnjs.cloudflare.com") {
		t.Error("inline document still references the CDN")
	}
	if !strings.Contains(doc, ".col-lg") {
		t.Error("inline document missing embedded grid stylesheet")
	}
}

func TestHTMLRejectsNonPages(t *testing.T) {
	t.Parallel()

	if _, err := HTML(pagegrid.NewSection("S")); !errors.Is(err, ErrNotPage) {
		t.Errorf("HTML(section) error = %v, want ErrNotPage", err)
	}
	if _, err := HTML(nil); !errors.Is(err, ErrNotPage) {
		t.Errorf("HTML(nil) error = %v, want ErrNotPage", err)
	}
}

func TestHTMLScriptsAtEndOfBody(t *testing.T) {
	t.Parallel()

	doc, err := HTML(buildPage(t))
	if err != nil {
		t.Fatal(err)
	}

	script := strings.Index(doc, "<script>")
	body := strings.Index(doc, "pg-page-body")
	if script < 0 || body < 0 {
		t.Fatalf("document missing script or content region:\n%s", doc)
	}
	if script < body {
		t.Error("script region precedes page content")
	}
}

func TestFragment(t *testing.T) {
	t.Parallel()

	t.Run("content leaf", func(t *testing.T) {
		t.Parallel()

		fragment, err := Fragment(content.NewMarkdown("# Standalone"))
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"<h1", "pg-markdown", "<style>"} {
			if !strings.Contains(fragment, want) {
				t.Errorf("Fragment() missing %q", want)
			}
		}
	})

	t.Run("node subtree", func(t *testing.T) {
		t.Parallel()

		section := pagegrid.NewSection("Preview")
		if err := section.Append("body"); err != nil {
			t.Fatal(err)
		}

		fragment, err := Fragment(section)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(fragment, "pg-section-body") {
			t.Errorf("Fragment() = %q, want rendered section", fragment)
		}
	})
}

func TestSaveHTML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.html")
	if err := SaveHTML(buildPage(t), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<!DOCTYPE html>") {
		t.Error("saved file is not a complete document")
	}
}

// stubConverter returns fixed bytes so SavePDF can be tested without
// an installed engine.
type stubConverter struct {
	got string
}

func (s *stubConverter) Convert(doc string) ([]byte, error) {
	s.got = doc
	return []byte("%PDF-stub"), nil
}

func TestSavePDF(t *testing.T) {
	t.Parallel()

	t.Run("writes converter output", func(t *testing.T) {
		t.Parallel()

		conv := &stubConverter{}
		path := filepath.Join(t.TempDir(), "report.pdf")
		if err := SavePDF(buildPage(t), path, WithConverter(conv)); err != nil {
			t.Fatal(err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "%PDF-stub" {
			t.Errorf("saved bytes = %q, want converter output", data)
		}
		if strings.Contains(conv.got, "cdnjs.cloudflare.com") {
			t.Error("converter received a CDN document, want inline provisioning")
		}
	})

	t.Run("missing engine writes nothing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.pdf")
		err := SavePDF(buildPage(t), path,
			WithConverter(&EngineConverter{Engine: "pagegrid-no-such-engine"}))
		if !errors.Is(err, ErrEngineNotFound) {
			t.Fatalf("SavePDF() error = %v, want ErrEngineNotFound", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("failed conversion left a file at the destination")
		}
	})
}

func TestEngineConverterMissingBinary(t *testing.T) {
	t.Parallel()

	conv := &EngineConverter{Engine: "pagegrid-no-such-engine"}
	if _, err := conv.Convert("<html></html>"); !errors.Is(err, ErrEngineNotFound) {
		t.Errorf("Convert() error = %v, want ErrEngineNotFound", err)
	}
}
