package content

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// Registered decoders for dimension probing. The x/image codecs
	// extend the stdlib set with formats common in report assets.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nao1215/pagegrid/options"
)

// imageMIMETypes maps decoded format names (as registered with the
// image package) to MIME types for the data URI.
var imageMIMETypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"webp": "image/webp",
}

// Image is image content embedded into the document as a data URI.
//
// The natural pixel dimensions are probed at construction so that bad
// data fails at wrap time and the rendered figure can default to the
// image's own width.
type Image struct {
	data    []byte
	mime    string
	alt     string
	caption string

	naturalWidth  int
	naturalHeight int

	width  int
	height int
	scale  float64
}

// NewImage loads image content from a file. Missing, unreadable, or
// undecodable files fail here, at wrap time.
func NewImage(path string) (*Image, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Author-provided document path is intentional
	if err != nil {
		return nil, fmt.Errorf("read image file: %w", err)
	}

	// SVG is valid image content but not decodable by the raster
	// codecs; embed it without probing.
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return &Image{data: data, mime: "image/svg+xml", alt: "Image"}, nil
	}
	return NewImageFromBytes(data)
}

// NewImageFromBytes wraps raw image bytes. The format is detected from
// the data itself.
func NewImageFromBytes(data []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	mime, ok := imageMIMETypes[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotImage, format)
	}

	return &Image{
		data:          data,
		mime:          mime,
		alt:           "Image",
		naturalWidth:  cfg.Width,
		naturalHeight: cfg.Height,
	}, nil
}

// NewImageFromImage encodes an in-memory image as PNG and wraps it.
func NewImageFromImage(img image.Image) (*Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	bounds := img.Bounds()
	return &Image{
		data:          buf.Bytes(),
		mime:          "image/png",
		alt:           "Image",
		naturalWidth:  bounds.Dx(),
		naturalHeight: bounds.Dy(),
	}, nil
}

// NaturalWidth returns the probed pixel width, or 0 for SVG input.
func (i *Image) NaturalWidth() int { return i.naturalWidth }

// NaturalHeight returns the probed pixel height, or 0 for SVG input.
func (i *Image) NaturalHeight() int { return i.naturalHeight }

// SetWidth sets the display width in pixels.
func (i *Image) SetWidth(width int) { i.width = width }

// SetHeight sets the display height in pixels.
func (i *Image) SetHeight(height int) { i.height = height }

// Rescale sets a scaling factor applied at display time.
func (i *Image) Rescale(scale float64) { i.scale = scale }

// SetCaption sets the figure caption rendered under the image.
func (i *Image) SetCaption(caption string) { i.caption = caption }

// SetAltText sets the image's alternative text.
func (i *Image) SetAltText(alt string) { i.alt = alt }

// HTML renders the image as a figure with an embedded data URI.
func (i *Image) HTML(_ *options.Options) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(i.data)

	width := "auto"
	switch {
	case i.width > 0:
		width = fmt.Sprintf("min(%dpx, 100%%)", i.width)
	case i.naturalWidth > 0:
		width = fmt.Sprintf("min(%dpx, 100%%)", i.naturalWidth)
	}

	height := "auto"
	if i.height > 0 {
		height = fmt.Sprintf("min(%dpx, 100%%)", i.height)
	}

	scale := ""
	if i.scale > 0 {
		scale = fmt.Sprintf(" transform: scale(%g);", i.scale)
	}

	var sb strings.Builder
	sb.WriteString("<figure class='pg-image-figure'>")
	fmt.Fprintf(&sb,
		"<img class='img-fluid figure-img rounded pg-image' style='width: %s; height: %s;%s' alt='%s' src='data:%s;base64,%s'>",
		width, height, scale, escapeAttr(i.alt), i.mime, encoded)
	if i.caption != "" {
		fmt.Fprintf(&sb, "<figcaption class='figure-caption'>%s</figcaption>", escapeText(i.caption))
	}
	sb.WriteString("</figure>")
	return sb.String(), nil
}

// Dependencies returns the base stylesheet dependency.
func (i *Image) Dependencies() []string { return []string{"bootstrap"} }

// Equal reports whether other is an Image with identical bytes.
func (i *Image) Equal(other Content) bool {
	o, ok := other.(*Image)
	return ok && bytes.Equal(i.data, o.data)
}

// String returns the display name used in tree summaries.
func (i *Image) String() string { return "Image" }
