package cmd

import (
	"fmt"

	"github.com/mj1618/redraw-master/internal/overlay"
	"github.com/mj1618/redraw-master/internal/output"
	"github.com/mj1618/redraw-master/internal/platform"
	"github.com/spf13/cobra"
)

// ClipboardCheckResult is the output of `clipboard check`.
type ClipboardCheckResult struct {
	OK          bool   `yaml:"ok"                    json:"ok"`
	Action      string `yaml:"action"                json:"action"`
	HasImage    bool   `yaml:"has_image"             json:"has_image"`
	Bytes       int    `yaml:"bytes,omitempty"       json:"bytes,omitempty"`
	Fingerprint string `yaml:"fingerprint,omitempty" json:"fingerprint,omitempty"`
	Width       int    `yaml:"width,omitempty"       json:"width,omitempty"`
	Height      int    `yaml:"height,omitempty"      json:"height,omitempty"`
	Error       string `yaml:"error,omitempty"       json:"error,omitempty"`
	Strategy    string `yaml:"strategy"              json:"strategy"`
}

var clipboardCmd = &cobra.Command{
	Use:   "clipboard",
	Short: "Inspect the system clipboard",
	Long:  "Diagnose clipboard image pickup: whether an image is present, whether it decodes, and which detection strategy the overlay would use.",
}

var clipboardCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report the clipboard image the overlay would ingest",
	RunE:  runClipboardCheck,
}

func init() {
	rootCmd.AddCommand(clipboardCmd)
	clipboardCmd.AddCommand(clipboardCheckCmd)
}

func runClipboardCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	defer provider.Close()
	if provider.Clipboard == nil {
		return fmt.Errorf("clipboard not supported on this platform")
	}

	data, err := provider.Clipboard.ReadImage()
	if err != nil {
		return err
	}
	return output.Print(checkClipboardImage(data, cfg.MaxTexture, cfg.Strategy().Resolve(provider.Strategy)))
}

func checkClipboardImage(data []byte, maxSide int, strategy platform.Strategy) ClipboardCheckResult {
	res := ClipboardCheckResult{
		OK:       true,
		Action:   "clipboard-check",
		HasImage: len(data) > 0,
		Strategy: strategy.String(),
	}
	if !res.HasImage {
		return res
	}
	res.Bytes = len(data)
	res.Fingerprint = fmt.Sprintf("%016x", overlay.Fingerprint(data))

	img, err := overlay.DecodeBytes(data, maxSide)
	if err != nil {
		res.OK = false
		res.Error = err.Error()
		return res
	}
	size := img.Bounds().Size()
	res.Width, res.Height = size.X, size.Y
	return res
}
