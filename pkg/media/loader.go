// Package media loads still images into normalized RGBA frames for the
// editor, re-encodes them on export, and runs loads on a background
// worker so the interaction loop never blocks on a decode.
package media

import (
	"fmt"
	"image"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/JenkinsJB/roids/internal/utils"
)

// Frame is a decoded image normalized to 8-bit-per-channel RGBA,
// regardless of the source format or bit depth. Pixels holds 4 bytes per
// pixel in row-major order, non-premultiplied.
type Frame struct {
	Width  uint
	Height uint
	Pixels []byte
}

// Load decodes the image at path into a Frame. It accepts the common
// raster formats (jpg, png, gif, bmp, tiff, webp) and applies EXIF
// orientation.
func Load(path string) (*Frame, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		// Some webp variants are rejected by the registered decoder;
		// retry with the dedicated one before giving up.
		img, err = decodeWebPFile(path, err)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image %q: %w", path, err)
		}
	}
	return FromImage(img), nil
}

func decodeWebPFile(path string, openErr error) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openErr
	}
	defer f.Close()

	img, err := webp.Decode(f)
	if err != nil {
		return nil, openErr
	}
	return img, nil
}

// FromImage converts any image.Image into a Frame.
func FromImage(img image.Image) *Frame {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	return &Frame{
		Width:  uint(bounds.Dx()),
		Height: uint(bounds.Dy()),
		Pixels: nrgba.Pix,
	}
}

// Image reconstructs an image.Image view over the frame's pixel buffer.
func (f *Frame) Image() image.Image {
	return &image.NRGBA{
		Pix:    f.Pixels,
		Stride: int(f.Width) * 4,
		Rect:   image.Rect(0, 0, int(f.Width), int(f.Height)),
	}
}

// SaveOptions control re-encoding of a frame's image.
type SaveOptions struct {
	Quality  int  // JPEG/WebP quality (1-100)
	Lossless bool // WebP lossless mode
	MaxDim   int  // resize long side to at most this many pixels, 0 = original
}

// Save re-encodes an image to path, choosing the format by extension
// (jpg/jpeg, png, or webp).
func Save(img image.Image, path string, opts SaveOptions) error {
	if opts.MaxDim > 0 {
		b := img.Bounds()
		if w, h := b.Dx(), b.Dy(); w > opts.MaxDim || h > opts.MaxDim {
			if w >= h {
				img = imaging.Resize(img, opts.MaxDim, 0, imaging.Lanczos)
			} else {
				img = imaging.Resize(img, 0, opts.MaxDim, imaging.Lanczos)
			}
		}
	}

	quality := opts.Quality
	if quality <= 0 {
		quality = 90
	}

	switch ext := utils.GetFileExtension(path); ext {
	case "jpg", "jpeg":
		if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
			return fmt.Errorf("failed to save JPEG: %w", err)
		}
		return nil
	case "png":
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("failed to save PNG: %w", err)
		}
		return nil
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		webpOpts := &webp.Options{Lossless: opts.Lossless, Quality: float32(quality)}
		if err := webp.Encode(f, img, webpOpts); err != nil {
			return fmt.Errorf("failed to encode WebP: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q", ext)
	}
}
