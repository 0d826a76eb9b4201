package deps

import (
	"fmt"

	"github.com/nao1215/pagegrid/internal/assets"
	"github.com/nao1215/pagegrid/options"
)

// Source selects how dependencies are provisioned.
type Source string

const (
	// SourceCDN emits reference tags; output is small but requires
	// network access at view time.
	SourceCDN Source = "cdn"

	// SourceInline embeds the full asset; output is larger but fully
	// self-contained.
	SourceInline Source = "inline"
)

// Target is the document region a dependency is injected into.
type Target string

const (
	// TargetHead places the dependency in the document head.
	// Stylesheets go here so content never renders unstyled.
	TargetHead Target = "head"

	// TargetTail places the dependency at the end of the body.
	// Scripts go here so content renders before they execute.
	TargetTail Target = "tail"
)

// Bootstrap is the name of the built-in base stylesheet dependency
// required by every layout node.
const Bootstrap = "bootstrap"

// Dependency describes one provisionable external resource.
type Dependency struct {
	// Name is the logical identifier content variants declare.
	Name string

	// CDN is the HTML emitted when provisioning by reference.
	CDN string

	// Inline is the HTML emitted when embedding the asset.
	Inline string

	// Target is the document region the dependency belongs in.
	Target Target
}

// Registry holds known dependencies. Registration order is preserved
// but plays no role in resolution: Resolve emits fragments in the order
// the caller's name list dictates.
type Registry struct {
	entries map[string]Dependency
}

// NewRegistry returns a Registry pre-populated with the built-in
// bootstrap dependency, using the given options for the CDN link.
func NewRegistry(opts *options.Options) *Registry {
	cdn := opts.BootstrapCDN
	if cdn == "" {
		cdn = options.DefaultBootstrapCDN
	}

	r := &Registry{entries: make(map[string]Dependency)}
	r.Add(Dependency{
		Name:   Bootstrap,
		CDN:    cdn,
		Inline: "<style>\n" + assets.GridCSS() + "\n</style>",
		Target: TargetHead,
	})
	return r
}

// Add registers a dependency, replacing any existing entry of the same
// name. Content variants with bespoke resources register here before
// rendering.
func (r *Registry) Add(d Dependency) {
	r.entries[d.Name] = d
}

// Resolved holds provisioned dependency fragments split by region.
type Resolved struct {
	// Head fragments belong in the document head.
	Head []string

	// Tail fragments belong at the end of the body.
	Tail []string
}

// Resolve maps each named dependency to its provisioned HTML fragment.
// Fragments keep the order of names, so callers that pass
// first-encountered collection order get deterministic output.
// Unknown names and unknown sources fail with a descriptive error.
func (r *Registry) Resolve(names []string, source Source) (Resolved, error) {
	if source != SourceCDN && source != SourceInline {
		return Resolved{}, fmt.Errorf("%w: %q", ErrInvalidSource, source)
	}

	var resolved Resolved
	for _, name := range names {
		dep, ok := r.entries[name]
		if !ok {
			return Resolved{}, fmt.Errorf("%w: %q", ErrUnknownDependency, name)
		}

		fragment := dep.CDN
		if source == SourceInline {
			fragment = dep.Inline
		}

		switch dep.Target {
		case TargetTail:
			resolved.Tail = append(resolved.Tail, fragment)
		default:
			resolved.Head = append(resolved.Head, fragment)
		}
	}
	return resolved, nil
}
