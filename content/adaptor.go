package content

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// Rule is one dispatch rule: when Match reports true for a value, Wrap
// produces its Content.
type Rule struct {
	// Name identifies the rule in error messages and tests.
	Name string

	// Match reports whether this rule handles the value.
	Match func(v any) bool

	// Wrap converts the value to Content. Wrap failures (unreadable
	// file, undecodable image) abort dispatch; no later rule runs.
	Wrap func(v any) (Content, error)
}

// Adaptor dispatches arbitrary values to Content variants using an
// ordered rule list. The first matching rule wins.
type Adaptor struct {
	rules []Rule
}

// NewAdaptor returns an Adaptor with the default rule set.
func NewAdaptor() *Adaptor {
	return &Adaptor{rules: defaultRules()}
}

// Register adds a rule ahead of all existing rules. Registering never
// modifies the defaults, it only outranks them.
func (a *Adaptor) Register(rule Rule) {
	a.rules = append([]Rule{rule}, a.rules...)
}

// Adapt selects a Content variant for v. Values with no matching rule
// fail with ErrUnsupportedContent naming the Go type.
func (a *Adaptor) Adapt(v any) (Content, error) {
	for _, rule := range a.rules {
		if rule.Match(v) {
			return rule.Wrap(v)
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedContent, v)
}

// defaultAdaptor backs the package-level Adapt and Register functions.
var defaultAdaptor = NewAdaptor()

// Adapt dispatches v using the default adaptor.
func Adapt(v any) (Content, error) {
	return defaultAdaptor.Adapt(v)
}

// Register adds a rule to the default adaptor, ahead of the built-in
// rules.
func Register(rule Rule) {
	defaultAdaptor.Register(rule)
}

// Recognized file extensions for path-string dispatch.
var (
	imageExtensions = map[string]bool{
		".png":  true,
		".jpg":  true,
		".jpeg": true,
		".gif":  true,
		".svg":  true,
		".bmp":  true,
		".tiff": true,
		".webp": true,
	}

	textExtensions = map[string]bool{
		".md":       true,
		".markdown": true,
		".txt":      true,
	}
)

// pathWithExt reports whether v is a plausible file path string with an
// extension in exts. Strings containing a newline are never paths; they
// are literal markdown.
func pathWithExt(v any, exts map[string]bool) bool {
	s, ok := v.(string)
	if !ok || strings.ContainsRune(s, '\n') {
		return false
	}
	return exts[strings.ToLower(filepath.Ext(s))]
}

// defaultRules returns the built-in dispatch rules in precedence order:
//  1. existing Content passes through unchanged
//  2. image file path
//  3. markdown/text file path (file contents become markdown)
//  4. CSV file path
//  5. in-memory image object
//  6. tabular records
//  7. Graphviz DOT source
//  8. any other string is literal markdown
func defaultRules() []Rule {
	return []Rule{
		{
			Name:  "content",
			Match: func(v any) bool { _, ok := v.(Content); return ok },
			Wrap:  func(v any) (Content, error) { return v.(Content), nil },
		},
		{
			Name:  "image-file",
			Match: func(v any) bool { return pathWithExt(v, imageExtensions) },
			Wrap:  func(v any) (Content, error) { return NewImage(v.(string)) },
		},
		{
			Name:  "text-file",
			Match: func(v any) bool { return pathWithExt(v, textExtensions) },
			Wrap:  func(v any) (Content, error) { return NewMarkdownFromFile(v.(string)) },
		},
		{
			Name:  "csv-file",
			Match: func(v any) bool { return pathWithExt(v, map[string]bool{".csv": true}) },
			Wrap:  func(v any) (Content, error) { return NewTableFromCSV(v.(string)) },
		},
		{
			Name:  "image-object",
			Match: func(v any) bool { _, ok := v.(image.Image); return ok },
			Wrap:  func(v any) (Content, error) { return NewImageFromImage(v.(image.Image)) },
		},
		{
			Name:  "records",
			Match: func(v any) bool { _, ok := v.([][]string); return ok },
			Wrap:  func(v any) (Content, error) { return NewTable(v.([][]string)) },
		},
		{
			Name:  "dot",
			Match: func(v any) bool { _, ok := v.(DOT); return ok },
			Wrap:  func(v any) (Content, error) { return NewFigure(v.(DOT)) },
		},
		{
			Name:  "markdown",
			Match: func(v any) bool { _, ok := v.(string); return ok },
			Wrap:  func(v any) (Content, error) { return NewMarkdown(v.(string)), nil },
		},
	}
}
