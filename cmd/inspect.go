package cmd

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/mj1618/redraw-master/internal/overlay"
	"github.com/mj1618/redraw-master/internal/output"
	"github.com/spf13/cobra"
)

// InspectResult is the output of `inspect`.
type InspectResult struct {
	OK      bool    `yaml:"ok"      json:"ok"`
	Action  string  `yaml:"action"  json:"action"`
	Image   string  `yaml:"image"   json:"image"`
	Format  string  `yaml:"format"  json:"format"`
	Natural [2]int  `yaml:"natural" json:"natural"`
	Loaded  [2]int  `yaml:"loaded"  json:"loaded"`
	Window  [2]int  `yaml:"window"  json:"window"`
	Scale   float64 `yaml:"scale"   json:"scale"`
	Fit     [2]int  `yaml:"fit"     json:"fit"`
	Origin  [2]int  `yaml:"origin"  json:"origin"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [image]",
	Short: "Report how an image would be laid out in the overlay",
	Long:  "Decodes the image the overlay would open and prints its size and the fitted geometry for a given window size and zoom.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("window", "960x1080", "Window size as WxH")
	inspectCmd.Flags().Float64("scale", 1.0, "Zoom factor")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := cfg.Image
	if len(args) > 0 {
		path = args[0]
	}

	windowFlag, _ := cmd.Flags().GetString("window")
	window, err := ParseSize(windowFlag)
	if err != nil {
		return err
	}
	window = overlay.ClampWindow(window, cfg.MinWindow)
	scale, _ := cmd.Flags().GetFloat64("scale")
	if scale < cfg.Zoom.Min || scale > cfg.Zoom.Max {
		return fmt.Errorf("scale %v outside [%v, %v]", scale, cfg.Zoom.Min, cfg.Zoom.Max)
	}

	info, err := overlay.Probe(path)
	if err != nil {
		return err
	}
	pixels, err := overlay.Load(path, cfg.MaxTexture)
	if err != nil {
		return err
	}
	loaded := pixels.Bounds().Size()
	fit := overlay.FitSize(loaded, window, scale)
	origin := overlay.ImageOrigin(window, fit, image.Point{})

	return output.Print(InspectResult{
		OK:      true,
		Action:  "inspect",
		Image:   path,
		Format:  info.Format,
		Natural: [2]int{info.Width, info.Height},
		Loaded:  [2]int{loaded.X, loaded.Y},
		Window:  [2]int{window.X, window.Y},
		Scale:   scale,
		Fit:     [2]int{fit.X, fit.Y},
		Origin:  [2]int{origin.X, origin.Y},
	})
}

// ParseSize parses a "WxH" string.
func ParseSize(s string) (image.Point, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid size %q: expected WxH", s)
	}
	wv, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	hv, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if wv <= 0 || hv <= 0 {
		return image.Point{}, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return image.Pt(wv, hv), nil
}
