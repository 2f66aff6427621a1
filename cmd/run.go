package cmd

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"runtime"

	"github.com/mj1618/redraw-master/internal/config"
	"github.com/mj1618/redraw-master/internal/overlay"
	"github.com/mj1618/redraw-master/internal/platform"
	"github.com/mj1618/redraw-master/internal/ui"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	required := path != ""
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return config.Config{}, err
	}

	if f := cmd.Flags().Lookup("image"); f != nil && f.Changed {
		cfg.Image = f.Value.String()
	}
	if f := cmd.Flags().Lookup("strategy"); f != nil && f.Changed {
		cfg.ClipboardStrategy = f.Value.String()
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runOverlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := slog.Default()

	pixels, err := overlay.Load(cfg.Image, cfg.MaxTexture)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	strategy := cfg.Strategy().Resolve(provider.Strategy)
	watcher := platform.NewWatcher(ctx, strategy, provider.Clipboard, cfg.ClipboardInterval, logger)

	session := overlay.NewSession(pixels, cfg.Image, cfg.Marker.Radius, cfg.Limits())
	ingest := overlay.NewIngestor(session, cfg.MaxTexture, logger)
	primeIngestor(ingest, provider.Clipboard, logger)

	o := ui.New(session, ingest, provider, watcher, ui.Options{
		Title:          cfg.Title,
		Icon:           loadIcon(cfg.Icon, logger),
		Opacity:        cfg.Opacity,
		MarkerColor:    cfg.MarkerColor(),
		CursorInterval: cfg.CursorInterval,
		MinWindow:      cfg.MinWindow,
		GOOS:           runtime.GOOS,
	}, logger)
	if err := o.Run(); err != nil {
		return fmt.Errorf("overlay: %w", err)
	}
	return nil
}

// primeIngestor marks the current clipboard content as seen. Only later
// clipboard changes replace the image; F5 still pastes it on demand.
func primeIngestor(ingest *overlay.Ingestor, clip platform.ClipboardSource, logger *slog.Logger) {
	if clip == nil {
		return
	}
	data, err := clip.ReadImage()
	if err != nil {
		logger.Debug("clipboard not read at startup", "err", err)
		return
	}
	ingest.Prime(data)
}

// loadIcon returns the window icon, or nil when it is missing or unreadable.
func loadIcon(path string, logger *slog.Logger) image.Image {
	if path == "" {
		return nil
	}
	icon, err := overlay.Load(path, 256)
	if err != nil {
		logger.Debug("window icon not loaded", "path", path, "err", err)
		return nil
	}
	return icon
}
