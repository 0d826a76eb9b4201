package options

// Default configuration values.
const (
	// DefaultSource provisions external resources as CDN links.
	// CDN output is small but requires network access at view time.
	DefaultSource = "cdn"

	// DefaultMaxWidth is the default maximum page content width in
	// pixels. 800px keeps long text lines readable on wide displays.
	DefaultMaxWidth = 800

	// DefaultFigureFormat renders figures as inline SVG markup.
	// Vector output scales cleanly in both HTML and PDF documents.
	DefaultFigureFormat = "svg"

	// DefaultBootstrapCDN is the stylesheet link injected when the
	// dependency source is "cdn". The integrity hash pins the exact
	// published artifact.
	DefaultBootstrapCDN = "<link rel='stylesheet' " +
		"href='https://cdnjs.cloudflare.com/ajax/libs/twitter-bootstrap/5.1.3/css/bootstrap.min.css' " +
		"integrity='sha512-GQGU0fMMi238uA+a/bdWJfpUGKUkBdgfFdgBm72SUQ6BeyWjoY/ton0tEjH+OSH9iP4Dfh+7HM0I9f5eR0L/4w==' " +
		"crossorigin='anonymous' referrerpolicy='no-referrer'>"
)

// Options holds rendering and output options for a document.
//
// Design decision: a single flat struct with one nested struct per
// content type mirrors the persisted YAML layout one-to-one, so the
// file format needs no mapping layer. The zero value is not usable;
// construct with Default and mutate fields as needed.
type Options struct {
	// DependencySource selects how external resources are provisioned:
	// "cdn" emits link/script tags, "inline" embeds the full asset so
	// the document is self-contained.
	DependencySource string `yaml:"dependency_source"`

	// BootstrapCDN is the HTML link tag used for the base stylesheet
	// when DependencySource is "cdn".
	BootstrapCDN string `yaml:"bootstrap_cdn"`

	// MaxWidth is the maximum page content width in pixels.
	MaxWidth int `yaml:"max_width"`

	// Figure holds options for graph figure rendering.
	Figure FigureOptions `yaml:"figure"`
}

// FigureOptions controls how graph figures are rendered.
type FigureOptions struct {
	// Format is the figure output format: "svg" or "png".
	// SVG embeds vector markup directly; PNG embeds a base64 raster.
	Format string `yaml:"format"`
}

// Default returns an Options populated with default values.
func Default() *Options {
	return &Options{
		DependencySource: DefaultSource,
		BootstrapCDN:     DefaultBootstrapCDN,
		MaxWidth:         DefaultMaxWidth,
		Figure: FigureOptions{
			Format: DefaultFigureFormat,
		},
	}
}

// Validate checks that all option values are usable.
// It returns one of the package sentinel errors on failure.
func (o *Options) Validate() error {
	switch o.DependencySource {
	case "cdn", "inline":
	default:
		return ErrInvalidSource
	}

	switch o.Figure.Format {
	case "svg", "png":
	default:
		return ErrInvalidFigureFormat
	}

	if o.MaxWidth <= 0 {
		return ErrInvalidMaxWidth
	}
	return nil
}
