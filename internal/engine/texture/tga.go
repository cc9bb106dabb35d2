// Package texture decodes images into the pixel layouts the renderer uploads.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	TGATypeTrueColor    = 2
	TGATypeGray         = 3
	TGATypeTrueColorRLE = 10
	TGATypeGrayRLE      = 11
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("tga: pixel data truncated")

// DecodeTGA decodes an uncompressed or RLE TGA holding true-color (24/32 bpp)
// or grayscale (8 bpp) pixels. Grayscale files decode to *image.Gray so they
// can serve as heightmaps directly.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, errors.New("tga: header too short")
	}

	idLength := int(data[0])
	if data[1] != 0 {
		return nil, errors.New("tga: color-mapped images not supported")
	}
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	gray := imageType == TGATypeGray || imageType == TGATypeGrayRLE
	rle := imageType == TGATypeTrueColorRLE || imageType == TGATypeGrayRLE
	switch {
	case imageType != TGATypeTrueColor && imageType != TGATypeGray && !rle:
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	case gray && bpp != 8:
		return nil, fmt.Errorf("tga: unsupported grayscale depth %d", bpp)
	case !gray && bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("tga: unsupported true-color depth %d", bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	var pixels []byte
	var err error
	if rle {
		pixels, err = expandRLE(data[offset:], width*height, bpp/8)
	} else {
		pixels, err = data[offset:], nil
		if len(pixels) < width*height*bpp/8 {
			err = errTGATruncated
		}
	}
	if err != nil {
		return nil, err
	}

	rect := image.Rect(0, 0, width, height)
	if gray {
		img := image.NewGray(rect)
		for y := 0; y < height; y++ {
			row := pixels[y*width : (y+1)*width]
			copy(img.Pix[img.PixOffset(0, destRow(y, height, topToBottom)):], row)
		}
		return img, nil
	}

	img := image.NewRGBA(rect)
	stride := bpp / 8
	for y := 0; y < height; y++ {
		dy := destRow(y, height, topToBottom)
		for x := 0; x < width; x++ {
			p := pixels[(y*width+x)*stride:]
			a := uint8(255)
			if stride == 4 {
				a = p[3]
			}
			img.SetRGBA(x, dy, color.RGBA{R: p[2], G: p[1], B: p[0], A: a})
		}
	}
	return img, nil
}

func destRow(y, height int, topToBottom bool) int {
	if topToBottom {
		return y
	}
	return height - 1 - y
}

// expandRLE unpacks run-length packets into count raw pixels of size bytes.
func expandRLE(src []byte, count, size int) ([]byte, error) {
	out := make([]byte, 0, count*size)
	i := 0
	for len(out) < count*size {
		if i >= len(src) {
			return nil, errTGATruncated
		}
		packet := src[i]
		i++
		n := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if i+size > len(src) {
				return nil, errTGATruncated
			}
			for k := 0; k < n; k++ {
				out = append(out, src[i:i+size]...)
			}
			i += size
			continue
		}

		if i+n*size > len(src) {
			return nil, errTGATruncated
		}
		out = append(out, src[i:i+n*size]...)
		i += n * size
	}
	return out[:count*size], nil
}

// ImageToRGBA converts img to tightly packed RGBA with its origin at (0,0).
func ImageToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgba.Set(x-b.Min.X, y-b.Min.Y, img.At(x, y))
		}
	}
	return rgba
}

// Checker returns a size×size two-tone checkerboard with cells squares per side.
func Checker(size, cells int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if cells < 1 {
		cells = 1
	}
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
