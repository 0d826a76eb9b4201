package assets

import _ "embed"

//go:embed grid.css
var gridCSS string

//go:embed pagegrid.css
var pagegridCSS string

//go:embed pagegrid.js
var pagegridJS string

//go:embed page.html.tmpl
var pageTemplate string

// GridCSS returns the embedded grid stylesheet. It implements the
// row/column classes the serializer emits and substitutes for the CDN
// framework stylesheet when dependencies are provisioned inline.
func GridCSS() string { return gridCSS }

// PagegridCSS returns the document stylesheet applied to every page.
func PagegridCSS() string { return pagegridCSS }

// PagegridJS returns the script embedded at the end of every page.
func PagegridJS() string { return pagegridJS }

// PageTemplate returns the text/template source for the full HTML page.
func PageTemplate() string { return pageTemplate }
