// Package qr renders QR code bitmaps with configurable colors, background
// transparency and an optional centered logo overlay.
package qr

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"net/url"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/skip2/go-qrcode"

	"github.com/qrforge/qrforge/internal/domain/common/errorz"
)

// Level is the error-correction tier of the symbol. Higher tiers tolerate
// more occlusion (for example a logo overlay) at the cost of matrix density.
type Level int

const (
	LevelLow      Level = iota // ~7% recoverable
	LevelMedium                // ~15% recoverable
	LevelQuartile              // ~25% recoverable
	LevelHigh                  // ~30% recoverable
)

const (
	// fixedVersion is the matrix version used when auto sizing is disabled.
	fixedVersion = 4

	// quietZoneModules is the standard quiet zone width. Without a quiet
	// zone a single blank module is still kept around the symbol.
	quietZoneModules  = 4
	marginlessModules = 1

	// logoMaxRatio caps the logo's larger dimension relative to the QR
	// image's smaller dimension.
	logoMaxRatio = 0.22
	logoPad      = 4
)

type Config struct {
	Content     string
	BoxSize     int // pixels per module
	Level       Level
	Foreground  color.RGBA
	Background  color.RGBA
	Transparent bool // strip the background; Background stays the key color
	AutoVersion bool // let the encoder pick the minimum matrix version
	QuietZone   bool
	LogoPath    string
}

func (l Level) recovery() qrcode.RecoveryLevel {
	switch l {
	case LevelLow:
		return qrcode.Low
	case LevelQuartile:
		return qrcode.High
	case LevelHigh:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// Generate produces the finished RGBA bitmap for cfg. The image is rendered
// fully opaque first; transparency is applied afterwards by stripping pixels
// that exactly match the background key color. Logo failures degrade
// gracefully: the QR image is returned without the logo.
func Generate(cfg Config) (*image.RGBA, error) {
	if strings.TrimSpace(cfg.Content) == "" {
		return nil, errorz.EmptyContent
	}
	if cfg.BoxSize <= 0 {
		return nil, fmt.Errorf("%w: box size must be positive", errorz.Validation)
	}

	code, err := encode(cfg)
	if err != nil {
		return nil, err
	}

	img := renderMatrix(code.Bitmap(), cfg)

	if cfg.Transparent {
		stripBackground(img, cfg.Background)
	}

	if cfg.LogoPath != "" {
		if _, err := os.Stat(cfg.LogoPath); err == nil {
			img = AddLogo(img, cfg.LogoPath)
		}
	}

	return img, nil
}

func encode(cfg Config) (*qrcode.QRCode, error) {
	var (
		code *qrcode.QRCode
		err  error
	)
	if cfg.AutoVersion {
		code, err = qrcode.New(cfg.Content, effectiveLevel(cfg).recovery())
	} else {
		code, err = qrcode.NewWithForcedVersion(cfg.Content, fixedVersion, effectiveLevel(cfg).recovery())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorz.Encoding, err)
	}
	// The renderer draws its own margin, so take the raw matrix.
	code.DisableBorder = true
	return code, nil
}

// effectiveLevel returns the error-correction tier actually used: a resolvable
// logo bumps the requested tier to at least quartile, since the overlay
// destroys scannable area.
func effectiveLevel(cfg Config) Level {
	level := cfg.Level
	if cfg.LogoPath != "" {
		if _, err := os.Stat(cfg.LogoPath); err == nil && level < LevelQuartile {
			level = LevelQuartile
		}
	}
	return level
}

// renderMatrix draws the module matrix onto an opaque canvas: background
// fill, then one square per dark module, with the margin in modules.
func renderMatrix(matrix [][]bool, cfg Config) *image.RGBA {
	margin := marginlessModules
	if cfg.QuietZone {
		margin = quietZoneModules
	}

	box := cfg.BoxSize
	total := (len(matrix) + 2*margin) * box

	dc := gg.NewContext(total, total)
	dc.SetColor(opaque(cfg.Background))
	dc.Clear()

	dc.SetColor(opaque(cfg.Foreground))
	for y, row := range matrix {
		for x, dark := range row {
			if !dark {
				continue
			}
			dc.DrawRectangle(float64((x+margin)*box), float64((y+margin)*box), float64(box), float64(box))
		}
	}
	dc.Fill()

	return dc.Image().(*image.RGBA)
}

// stripBackground replaces every pixel whose RGB exactly equals the key color
// with fully transparent white. The match is zero tolerance: pixels that
// drifted from the key color stay opaque.
func stripBackground(img *image.RGBA, key color.RGBA) {
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i] == key.R && pix[i+1] == key.G && pix[i+2] == key.B {
			pix[i] = 255
			pix[i+1] = 255
			pix[i+2] = 255
			pix[i+3] = 0
		}
	}
}

// AddLogo pastes the image at path over the center of qrImg, downscaled so
// its larger dimension stays within logoMaxRatio of the QR's smaller
// dimension and padded with an opaque white border. It never fails: on any
// load or decode error the input image is returned unchanged.
func AddLogo(qrImg *image.RGBA, path string) *image.RGBA {
	logo, err := gg.LoadImage(path)
	if err != nil {
		return qrImg
	}

	bounds := qrImg.Bounds()
	smaller := bounds.Dx()
	if bounds.Dy() < smaller {
		smaller = bounds.Dy()
	}
	maxDim := int(float64(smaller) * logoMaxRatio)
	if maxDim < 1 {
		return qrImg
	}

	logoW := logo.Bounds().Dx()
	logoH := logo.Bounds().Dy()
	if logoW > maxDim || logoH > maxDim {
		if logoW >= logoH {
			logo = resize.Resize(uint(maxDim), 0, logo, resize.Lanczos3)
		} else {
			logo = resize.Resize(0, uint(maxDim), logo, resize.Lanczos3)
		}
		logoW = logo.Bounds().Dx()
		logoH = logo.Bounds().Dy()
	}

	// White pad behind the logo so it stays legible on dark modules.
	pad := image.NewRGBA(image.Rect(0, 0, logoW+2*logoPad, logoH+2*logoPad))
	draw.Draw(pad, pad.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(pad, image.Rect(logoPad, logoPad, logoPad+logoW, logoPad+logoH), logo, logo.Bounds().Min, draw.Over)

	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, qrImg, bounds.Min, draw.Src)

	pos := image.Pt(
		bounds.Min.X+(bounds.Dx()-pad.Bounds().Dx())/2,
		bounds.Min.Y+(bounds.Dy()-pad.Bounds().Dy())/2,
	)
	draw.Draw(out, image.Rectangle{Min: pos, Max: pos.Add(pad.Bounds().Size())}, pad, image.Point{}, draw.Over)

	return out
}

// ValidateURL reports whether text parses as a URL with both a scheme and a
// host component.
func ValidateURL(text string) bool {
	u, err := url.Parse(text)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
