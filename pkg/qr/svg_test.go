package qr

import (
	"fmt"
	"strings"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrforge/internal/domain/common/errorz"
)

func darkModuleCount(t *testing.T, content string) (dark, dimension int) {
	t.Helper()
	code, err := qrcode.New(content, qrcode.Medium)
	require.NoError(t, err)
	code.DisableBorder = true
	matrix := code.Bitmap()
	for _, row := range matrix {
		for _, set := range row {
			if set {
				dark++
			}
		}
	}
	return dark, len(matrix)
}

func TestRenderSVG_ModulesAndViewBox(t *testing.T) {
	cfg := testConfig()
	data, err := RenderSVG(cfg)
	require.NoError(t, err)
	svg := string(data)

	dark, dimension := darkModuleCount(t, cfg.Content)
	total := (dimension + 2*4) * cfg.BoxSize

	assert.Contains(t, svg, fmt.Sprintf(`viewBox="0 0 %d %d"`, total, total))
	// One rect per dark module plus the background rect.
	assert.Equal(t, dark+1, strings.Count(svg, "<rect"))
}

func TestRenderSVG_TransparentOmitsBackground(t *testing.T) {
	cfg := testConfig()
	cfg.Transparent = true
	data, err := RenderSVG(cfg)
	require.NoError(t, err)

	dark, _ := darkModuleCount(t, cfg.Content)
	assert.Equal(t, dark, strings.Count(string(data), "<rect"))
}

func TestRenderSVG_EmptyContent(t *testing.T) {
	cfg := testConfig()
	cfg.Content = ""
	_, err := RenderSVG(cfg)
	assert.ErrorIs(t, err, errorz.Validation)
}
