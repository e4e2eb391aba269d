package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/pagestrip/assets/icon"
	"github.com/depeter/pagestrip/internal/app"
	"github.com/depeter/pagestrip/internal/config"
	"github.com/depeter/pagestrip/internal/i18n"
	"github.com/depeter/pagestrip/internal/jellyfin"
	"github.com/depeter/pagestrip/internal/logging"
	"github.com/depeter/pagestrip/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default: XDG config dir)")
	remote := flag.Bool("remote", true, "read media remote keys from /dev/input")
	flag.Parse()

	// Load config
	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.Setup(os.Stderr, cfg.UI.LogLevel)

	tr, err := i18n.New(cfg.UI.Language)
	if err != nil {
		logger.Warn("unsupported language, using English", "language", cfg.UI.Language, "error", err)
		if tr, err = i18n.New(""); err != nil {
			fatal(logger, "failed to load translations", err)
		}
	}

	if err := ui.InitFonts(goregular.TTF); err != nil {
		fatal(logger, "failed to init fonts", err)
	}

	var client *jellyfin.Client
	if cfg.Server.URL != "" && cfg.Server.Token != "" {
		if cfg.EnsureDeviceID() {
			if err := persistDeviceID(*configPath, cfg.Server.DeviceID); err != nil {
				logger.Warn("could not persist device id", "error", err)
			}
		}
		client = jellyfin.NewClient(cfg.Server.URL, cfg.Server.Token, cfg.Server.UserID, cfg.Server.DeviceID)
		logger.Info("jellyfin libraries enabled", "server", client.ServerURL())
	}

	game := app.NewGame(cfg, client, tr, logger)
	defer game.Close()

	if *remote {
		r := &ui.Remote{Logger: logger}
		if err := r.Watch(game.Context()); err != nil {
			logger.Warn("remote input unavailable", "error", err)
		} else {
			game.Remote = r
		}
	}

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("PageStrip")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		fatal(logger, "game loop exited", err)
	}
}

// loadConfig reads path (or the default location), then applies .env files
// and PAGESTRIP_* variables on top.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	envFiles := []string{".env"}
	if dir, err := config.ConfigDir(); err == nil {
		envFiles = append(envFiles, filepath.Join(dir, ".env"))
	}
	if err := config.LoadEnv(envFiles...); err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

func readConfigFile(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// persistDeviceID writes id into the config file without the environment
// overrides, so tokens passed by env stay out of it.
func persistDeviceID(path, id string) error {
	cfg, err := readConfigFile(path)
	if err != nil {
		return err
	}
	cfg.Server.DeviceID = id
	if path == "" {
		return cfg.Save()
	}
	return cfg.SaveFile(path)
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
