package cli

import (
	imgcolor "image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrforge/internal/adapters/config"
	"github.com/qrforge/qrforge/internal/adapters/storage"
	"github.com/qrforge/qrforge/pkg/qr"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    imgcolor.RGBA
		wantErr bool
	}{
		{input: "#000000", want: imgcolor.RGBA{A: 255}},
		{input: "ffffff", want: imgcolor.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{input: "#4F8CFF", want: imgcolor.RGBA{R: 0x4f, G: 0x8c, B: 0xff, A: 255}},
		{input: "#fff", wantErr: true},
		{input: "#gggggg", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseHexColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qr.Level
	}{
		{"L", qr.LevelLow},
		{"m", qr.LevelMedium},
		{"Q", qr.LevelQuartile},
		{"h", qr.LevelHigh},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := parseLevel("X")
	assert.Error(t, err)
}

func TestPresetAppendToList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")

	for _, args := range [][]string{
		{"phone", "+1 (555) 123-4567", "--append-to", path},
		{"website", "example.com", "--append-to", path},
	} {
		cmd := newPresetCmd()
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
	}

	items, err := storage.LoadList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"tel:+15551234567", "https://example.com"}, items)
}

func TestApplySetting(t *testing.T) {
	s := &config.Settings{}

	require.NoError(t, applySetting(s, "theme", "light"))
	require.NoError(t, applySetting(s, "default-size", "12"))
	require.NoError(t, applySetting(s, "debug", "true"))
	assert.Equal(t, "light", s.Theme)
	assert.Equal(t, 12, s.DefaultSize)
	assert.True(t, s.Debug)

	assert.Error(t, applySetting(s, "default-size", "zero"))
	assert.Error(t, applySetting(s, "default-size", "-3"))
	assert.Error(t, applySetting(s, "debug", "maybe"))
	assert.Error(t, applySetting(s, "no-such-key", "x"))
}
