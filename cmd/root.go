package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mj1618/redraw-master/internal/output"
	"github.com/mj1618/redraw-master/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "redraw-master",
	Short: "Project the cursor onto a reference image",
	Long: "Opens a translucent, always-on-top window over the right half of the screen showing a reference image, " +
		"and marks where the cursor sits on the left half so you can trace the image by hand.\n\n" +
		"Drag to pan, scroll to zoom, hold Ctrl (Cmd on macOS) while scrolling to resize the marker. " +
		"Copy an image to replace the reference; press F5 or Ctrl+V if it is not picked up.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runOverlay
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format for reports: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./redraw.yaml if present)")

	rootCmd.Flags().String("image", "", "Reference image to open (default from config: gojo.png)")
	rootCmd.Flags().String("strategy", "", "Clipboard change detection: auto, events, poll")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		slog.SetDefault(newLogger(verbose))

		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
