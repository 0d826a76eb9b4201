// Package htmlutil provides HTML post-processing helpers used when
// assembling full documents.
//
// The serializer builds fragments by string concatenation for speed and
// determinism; this package covers the two places where a real HTML
// tree is needed: relocating scripts to the end of the body so content
// renders before any script executes, and re-parsing output to confirm
// it is well formed.
package htmlutil
