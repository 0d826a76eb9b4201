// Package assets holds the static resources compiled into the library:
// the grid stylesheet, the document stylesheet, the page script, and
// the HTML page template.
//
// Design decision: assets are embedded with go:embed rather than
// resolved from the filesystem at run time. The library then has no
// installation footprint and inline provisioning can never fail on a
// missing file.
package assets
