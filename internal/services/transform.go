package services

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Limits for local transforms. The output cap keeps the RGBA buffer under
// 160 MiB whatever scale is asked for.
const (
	MaxOutputSide   = 16384
	MaxOutputPixels = 40_000_000
	MaxSourcePixels = 25_000_000
)

// TransformResult is the output of a local transform.
type TransformResult struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// LocalUpscaler resamples images in process with Catmull-Rom interpolation.
type LocalUpscaler struct{}

func NewLocalUpscaler() *LocalUpscaler {
	return &LocalUpscaler{}
}

// Upscale enlarges data by scale. JPEG input stays JPEG, everything else becomes PNG.
// Sources over MaxSourcePixels are rejected before any pixel is decoded.
func (u *LocalUpscaler) Upscale(data []byte, contentType string, scale int) (*TransformResult, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if err := withinPixelBudget(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := src.Bounds()
	width, height := fitWithin(bounds.Dx()*scale, bounds.Dy()*scale, MaxOutputSide, MaxOutputPixels)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	outType := "image/png"
	if format == "jpeg" {
		outType = "image/jpeg"
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 95})
	} else {
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	return &TransformResult{Data: buf.Bytes(), ContentType: outType, Width: width, Height: height}, nil
}

// fitWithin shrinks w x h proportionally so that neither side exceeds
// maxSide and the area does not exceed maxPixels.
func fitWithin(w, h, maxSide, maxPixels int) (int, int) {
	if w > maxSide || h > maxSide {
		if w >= h {
			w, h = maxSide, max(1, h*maxSide/w)
		} else {
			w, h = max(1, w*maxSide/h), maxSide
		}
	}
	if w*h > maxPixels {
		f := math.Sqrt(float64(maxPixels) / float64(w*h))
		w, h = max(1, int(float64(w)*f)), max(1, int(float64(h)*f))
	}
	return w, h
}

func withinPixelBudget(w, h int) error {
	if int64(w)*int64(h) > MaxSourcePixels {
		return &ImageTooLargeError{MaxMegapixels: MaxSourcePixels / 1_000_000}
	}
	return nil
}

// checkPixelBudget rejects encoded images whose header declares more than
// MaxSourcePixels. Undecodable data passes, the transform reports it.
func checkPixelBudget(data []byte) error {
	w, h := imageSize(data)
	return withinPixelBudget(w, h)
}

// imageSize reads the dimensions of an encoded image, or zeros if it cannot.
func imageSize(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
