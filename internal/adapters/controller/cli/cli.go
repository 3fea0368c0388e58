// Package cli is the interactive shell of the application: thin cobra
// commands over the engine, presets and batch service.
package cli

import (
	"fmt"
	imgcolor "image/color"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/cmd/app"
	"github.com/qrforge/qrforge/pkg/qr"
)

// Setup builds the root command tree around the application instance.
func Setup(a *app.App) *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:   "qrforge",
		Short: "Generate customizable QR codes, single or in batch",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newPresetCmd())
	root.AddCommand(newConfigCmd(a))

	return root
}

// parseHexColor parses a #RRGGBB (or RRGGBB) color.
func parseHexColor(param string) (imgcolor.RGBA, error) {
	param = strings.TrimPrefix(param, "#")
	if len(param) != 6 {
		return imgcolor.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB", param)
	}
	r, err1 := strconv.ParseUint(param[0:2], 16, 8)
	g, err2 := strconv.ParseUint(param[2:4], 16, 8)
	b, err3 := strconv.ParseUint(param[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return imgcolor.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB", param)
	}
	return imgcolor.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}

func parseLevel(s string) (qr.Level, error) {
	switch strings.ToUpper(s) {
	case "L":
		return qr.LevelLow, nil
	case "M":
		return qr.LevelMedium, nil
	case "Q":
		return qr.LevelQuartile, nil
	case "H":
		return qr.LevelHigh, nil
	}
	return 0, fmt.Errorf("invalid error-correction level %q: want L, M, Q or H", s)
}
