package assets

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/Faultbox/tankterrain/internal/engine/texture"
)

// Decode reads an image, choosing the decoder from name's extension.
// Unknown extensions fall back to content sniffing.
func Decode(r io.Reader, name string) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tga":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return texture.DecodeTGA(data)
	case ".bmp":
		return bmp.Decode(r)
	case ".tif", ".tiff":
		return tiff.Decode(r)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("unrecognized image %s: %w", name, err)
	}
	return img, nil
}
