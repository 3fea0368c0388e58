package qr

import (
	"fmt"
	"strings"

	"github.com/qrforge/qrforge/internal/domain/common/errorz"
)

// RenderSVG produces a vector rendition of the configured symbol: one rect
// per dark module at BoxSize units, with the same margin rules as the bitmap
// renderer. A transparent configuration simply omits the background rect.
// The logo overlay is a raster operation and is not applied here.
func RenderSVG(cfg Config) ([]byte, error) {
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
	matrix := code.Bitmap()

	margin := marginlessModules
	if cfg.QuietZone {
		margin = quietZoneModules
	}
	box := cfg.BoxSize
	total := (len(matrix) + 2*margin) * box

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		total, total, total, total)

	if !cfg.Transparent {
		fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="rgb(%d,%d,%d)"/>`,
			total, total, cfg.Background.R, cfg.Background.G, cfg.Background.B)
	}

	fill := fmt.Sprintf("rgb(%d,%d,%d)", cfg.Foreground.R, cfg.Foreground.G, cfg.Foreground.B)
	for y, row := range matrix {
		for x, dark := range row {
			if !dark {
				continue
			}
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
				(x+margin)*box, (y+margin)*box, box, box, fill)
		}
	}

	b.WriteString(`</svg>`)
	return []byte(b.String()), nil
}
