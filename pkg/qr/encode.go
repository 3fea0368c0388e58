package qr

import (
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
)

// jpegQuality matches the export quality of the desktop formats.
const jpegQuality = 95

// EncodePNG writes img as lossless, alpha-capable PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// EncodeJPEG flattens any transparency onto an opaque white background and
// writes img as JPEG at quality 95.
func EncodeJPEG(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, bounds, img, bounds.Min, draw.Over)
	return jpeg.Encode(w, out, &jpeg.Options{Quality: jpegQuality})
}
