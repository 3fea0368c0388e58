package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/cmd/app"
	"github.com/qrforge/qrforge/pkg/qr"
)

func newGenerateCmd(a *app.App) *cobra.Command {
	var (
		output      string
		boxSize     int
		level       string
		fg          string
		bg          string
		transparent bool
		logoPath    string
		noQuiet     bool
		fixed       bool
	)

	cmd := &cobra.Command{
		Use:   "generate [content]",
		Short: "Generate a single QR code image (.png, .jpg or .svg by extension)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(a, args[0], boxSize, level, fg, bg, transparent, logoPath, noQuiet, fixed)
			if err != nil {
				return err
			}

			if strings.Contains(cfg.Content, "://") && !qr.ValidateURL(cfg.Content) {
				a.Logger.Warnf("content looks like a URL but does not parse as one: %s", cfg.Content)
			}

			if err := writeImage(cfg, output); err != nil {
				a.Logger.Errorf("generation failed: %v", err)
				return err
			}

			a.Logger.Infof("generated %s", output)
			color.Green("✓ saved %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "qr_code.png", "Output file")
	cmd.Flags().IntVar(&boxSize, "box-size", 0, "Pixels per module (default from settings)")
	cmd.Flags().StringVar(&level, "level", "M", "Error-correction level: L, M, Q or H")
	cmd.Flags().StringVar(&fg, "fg", "#000000", "Foreground color")
	cmd.Flags().StringVar(&bg, "bg", "#ffffff", "Background color (kept as the key color when transparent)")
	cmd.Flags().BoolVar(&transparent, "transparent", false, "Strip the background color to transparency")
	cmd.Flags().StringVar(&logoPath, "logo", "", "Logo image to overlay at the center")
	cmd.Flags().BoolVar(&noQuiet, "no-quiet-zone", false, "Drop the standard 4-module quiet zone")
	cmd.Flags().BoolVar(&fixed, "fixed-version", false, "Use matrix version 4 instead of the minimum fitting version")

	return cmd
}

func buildConfig(a *app.App, content string, boxSize int, level, fg, bg string, transparent bool, logoPath string, noQuiet, fixed bool) (qr.Config, error) {
	if boxSize == 0 {
		boxSize = a.Settings.DefaultSize
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return qr.Config{}, err
	}
	fgColor, err := parseHexColor(fg)
	if err != nil {
		return qr.Config{}, err
	}
	bgColor, err := parseHexColor(bg)
	if err != nil {
		return qr.Config{}, err
	}

	return qr.Config{
		Content:     content,
		BoxSize:     boxSize,
		Level:       lvl,
		Foreground:  fgColor,
		Background:  bgColor,
		Transparent: transparent,
		AutoVersion: !fixed,
		QuietZone:   !noQuiet,
		LogoPath:    logoPath,
	}, nil
}

// writeImage renders cfg into the format implied by the output extension.
func writeImage(cfg qr.Config, output string) error {
	switch strings.ToLower(filepath.Ext(output)) {
	case ".svg":
		data, err := qr.RenderSVG(cfg)
		if err != nil {
			return err
		}
		return os.WriteFile(output, data, 0644)
	case ".jpg", ".jpeg":
		img, err := qr.Generate(cfg)
		if err != nil {
			return err
		}
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()
		return qr.EncodeJPEG(file, img)
	default:
		img, err := qr.Generate(cfg)
		if err != nil {
			return err
		}
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()
		return qr.EncodePNG(file, img)
	}
}
