package sitegen

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	_ "golang.org/x/image/webp"
)

// ImageInfo is the decoded header of an image file.
type ImageInfo struct {
	Path   string
	Format string
	Width  int
	Height int
}

// ProbeImage reads only the header of the image at p to learn its format
// and dimensions. PNG, JPEG, GIF and WebP are understood.
func ProbeImage(fsys fs.FS, p string) (ImageInfo, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return ImageInfo{}, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("decode image %s: %w", p, err)
	}
	return ImageInfo{Path: p, Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// PreviewSized reports whether the image matches the declared preview size.
func (i ImageInfo) PreviewSized() bool {
	return i.Width == previewImageWidth && i.Height == previewImageHeight
}
