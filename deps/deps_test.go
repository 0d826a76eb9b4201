package deps

import (
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/pagegrid/options"
)

// TestResolveCDN verifies reference-by-link provisioning.
func TestResolveCDN(t *testing.T) {
	t.Parallel()

	r := NewRegistry(options.Default())

	resolved, err := r.Resolve([]string{Bootstrap}, SourceCDN)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}

	if len(resolved.Head) != 1 {
		t.Fatalf("expected 1 head fragment, got %d", len(resolved.Head))
	}
	if !strings.Contains(resolved.Head[0], "<link") {
		t.Errorf("expected a link tag, got %q", resolved.Head[0])
	}
	if len(resolved.Tail) != 0 {
		t.Errorf("expected no tail fragments, got %d", len(resolved.Tail))
	}
}

// TestResolveInline verifies the self-contained provisioning mode.
func TestResolveInline(t *testing.T) {
	t.Parallel()

	r := NewRegistry(options.Default())

	resolved, err := r.Resolve([]string{Bootstrap}, SourceInline)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}

	if len(resolved.Head) != 1 {
		t.Fatalf("expected 1 head fragment, got %d", len(resolved.Head))
	}
	if !strings.HasPrefix(resolved.Head[0], "<style>") {
		t.Errorf("expected an embedded style block, got %q", resolved.Head[0][:20])
	}
	if strings.Contains(resolved.Head[0], "href=") {
		t.Error("inline output must not reference external resources")
	}
}

// TestResolveOrder verifies that fragments keep the input name order.
func TestResolveOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry(options.Default())
	r.Add(Dependency{Name: "first", CDN: "<link href='first'>", Inline: "<style>first</style>", Target: TargetHead})
	r.Add(Dependency{Name: "second", CDN: "<link href='second'>", Inline: "<style>second</style>", Target: TargetHead})

	resolved, err := r.Resolve([]string{"second", "first"}, SourceCDN)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}

	if len(resolved.Head) != 2 {
		t.Fatalf("expected 2 head fragments, got %d", len(resolved.Head))
	}
	if !strings.Contains(resolved.Head[0], "second") || !strings.Contains(resolved.Head[1], "first") {
		t.Errorf("expected input order preserved, got %v", resolved.Head)
	}
}

// TestResolveTailTarget verifies that script dependencies land in the
// tail region.
func TestResolveTailTarget(t *testing.T) {
	t.Parallel()

	r := NewRegistry(options.Default())
	r.Add(Dependency{Name: "plotlib", CDN: "<script src='plot.js'></script>", Inline: "<script>plot</script>", Target: TargetTail})

	resolved, err := r.Resolve([]string{Bootstrap, "plotlib"}, SourceCDN)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}

	if len(resolved.Head) != 1 || len(resolved.Tail) != 1 {
		t.Fatalf("expected 1 head and 1 tail fragment, got %d and %d",
			len(resolved.Head), len(resolved.Tail))
	}
}

// TestResolveErrors tests the resolver error paths.
func TestResolveErrors(t *testing.T) {
	t.Parallel()

	r := NewRegistry(options.Default())

	t.Run("unknown dependency", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve([]string{"nonexistent"}, SourceCDN)
		if !errors.Is(err, ErrUnknownDependency) {
			t.Errorf("expected ErrUnknownDependency, got %v", err)
		}
	})

	t.Run("invalid source", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve([]string{Bootstrap}, Source("floppy"))
		if !errors.Is(err, ErrInvalidSource) {
			t.Errorf("expected ErrInvalidSource, got %v", err)
		}
	})
}

// TestCustomCDNLink verifies that options override the bootstrap CDN.
func TestCustomCDNLink(t *testing.T) {
	t.Parallel()

	opts := options.Default()
	opts.BootstrapCDN = "<link href='https://example.com/my.css'>"

	r := NewRegistry(opts)
	resolved, err := r.Resolve([]string{Bootstrap}, SourceCDN)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if resolved.Head[0] != opts.BootstrapCDN {
		t.Errorf("expected custom CDN link, got %q", resolved.Head[0])
	}
}
