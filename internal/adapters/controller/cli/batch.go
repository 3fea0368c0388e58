package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/cmd/app"
	"github.com/qrforge/qrforge/internal/adapters/storage"
	"github.com/qrforge/qrforge/internal/domain/entity"
)

func newBatchCmd(a *app.App) *cobra.Command {
	var (
		outputDir   string
		naming      string
		format      string
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
		Use:   "batch [list-file]",
		Short: "Generate one QR code per line of a list file",
		Long:  "Reads a plain-text list (one content item per line) and generates an image for every non-blank line. Item failures are logged and counted, never abort the run. Interrupt (Ctrl-C) stops cooperatively after the current item.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := storage.LoadList(args[0])
			if err != nil {
				return err
			}

			var items []string
			for _, line := range lines {
				if trimmed := strings.TrimSpace(line); trimmed != "" {
					items = append(items, trimmed)
				}
			}
			if len(items) == 0 {
				return fmt.Errorf("list %s has no items to process", args[0])
			}

			template, err := buildConfig(a, "-", boxSize, level, fg, bg, transparent, logoPath, noQuiet, fixed)
			if err != nil {
				return err
			}
			template.Content = ""

			if outputDir == "" {
				outputDir = a.Settings.OutputDir
			}
			if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
				return err
			}
			if naming == "" {
				naming = a.Settings.NamingTemplate
			}

			outFormat := entity.FormatPNG
			if strings.EqualFold(format, "jpeg") || strings.EqualFold(format, "jpg") {
				outFormat = entity.FormatJPEG
			}

			events := a.Batch.Start(entity.BatchJob{
				Items:     items,
				Template:  template,
				OutputDir: outputDir,
				Naming:    naming,
				Format:    outFormat,
			})

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			go func() {
				if _, ok := <-interrupt; ok {
					color.Yellow("stopping after current item...")
					a.Batch.Stop()
				}
			}()

			for event := range events {
				switch e := event.(type) {
				case entity.Progress:
					fmt.Printf("[%d/%d] %s\n", e.Current, e.Total, e.Item)
				case entity.ItemError:
					color.Red("item %d: %s", e.Index, e.Message)
				case entity.Completed:
					if e.Failed > 0 {
						color.Yellow("done: %d succeeded, %d failed", e.Success, e.Failed)
					} else {
						color.Green("done: %d succeeded", e.Success)
					}
				}
			}
			signal.Stop(interrupt)
			close(interrupt)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "out-dir", "d", "", "Output directory (default from settings)")
	cmd.Flags().StringVar(&naming, "naming", "", "Filename template with {index} and {content} (default from settings)")
	cmd.Flags().StringVar(&format, "format", "png", "Output format: png or jpeg")
	cmd.Flags().IntVar(&boxSize, "box-size", 0, "Pixels per module (default from settings)")
	cmd.Flags().StringVar(&level, "level", "M", "Error-correction level: L, M, Q or H")
	cmd.Flags().StringVar(&fg, "fg", "#000000", "Foreground color")
	cmd.Flags().StringVar(&bg, "bg", "#ffffff", "Background color")
	cmd.Flags().BoolVar(&transparent, "transparent", false, "Strip the background color to transparency")
	cmd.Flags().StringVar(&logoPath, "logo", "", "Logo image to overlay at the center")
	cmd.Flags().BoolVar(&noQuiet, "no-quiet-zone", false, "Drop the standard 4-module quiet zone")
	cmd.Flags().BoolVar(&fixed, "fixed-version", false, "Use matrix version 4 instead of the minimum fitting version")

	return cmd
}
