package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

type Config struct {
	Server   ServerConfig  `toml:"server"`
	UI       UIConfig      `toml:"ui"`
	Menu     MenuConfig    `toml:"menu"`
	Pager    PagerConfig   `toml:"pager"`
	Keybinds KeybindConfig `toml:"keybinds"`
	// Tabs are message IDs (or literal titles) for the built-in pages,
	// used when no server is configured.
	Tabs []string `toml:"tabs"`
}

type ServerConfig struct {
	URL         string `toml:"url"`
	Token       string `toml:"token"`
	UserID      string `toml:"user_id"`
	DeviceID    string `toml:"device_id"`
	LatestLimit int    `toml:"latest_limit"`
}

type UIConfig struct {
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Language   string `toml:"language"`
	LogLevel   string `toml:"log_level"`
}

type MenuConfig struct {
	Height          float64 `toml:"height"`
	CellSpacing     float64 `toml:"cell_spacing"`
	LeadingPadding  float64 `toml:"leading_padding"`
	TrailingPadding float64 `toml:"trailing_padding"`
	SafeInsetLeft   float64 `toml:"safe_inset_left"`
	SafeInsetRight  float64 `toml:"safe_inset_right"`
	CellPadding     float64 `toml:"cell_padding"`
	FontSize        float64 `toml:"font_size"`
	IndicatorWidth  float64 `toml:"indicator_width"`
	IndicatorHeight float64 `toml:"indicator_height"`
	// IndicatorBottomPadding is the gap between the indicator and the
	// strip's bottom edge.
	IndicatorBottomPadding float64 `toml:"indicator_bottom_padding"`
	AnimSpeed              float64 `toml:"anim_speed"`
}

type PagerConfig struct {
	AnimSpeed     float64 `toml:"anim_speed"`
	DragSlop      float64 `toml:"drag_slop"`
	FlickVelocity float64 `toml:"flick_velocity"`
}

type KeybindConfig struct {
	NextTab      string `toml:"next_tab"`
	PrevTab      string `toml:"prev_tab"`
	FirstTab     string `toml:"first_tab"`
	LastTab      string `toml:"last_tab"`
	Reload       string `toml:"reload"`
	DebugOverlay string `toml:"debug_overlay"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			LatestLimit: 16,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     720,
			Language:   "en",
			LogLevel:   "info",
		},
		Menu: MenuConfig{
			Height:                 56,
			CellSpacing:            10,
			LeadingPadding:         20,
			TrailingPadding:        20,
			CellPadding:            28,
			FontSize:               16,
			IndicatorWidth:         48,
			IndicatorHeight:        4,
			IndicatorBottomPadding: 2,
			AnimSpeed:              0.2,
		},
		Pager: PagerConfig{
			AnimSpeed:     0.18,
			DragSlop:      8,
			FlickVelocity: 12,
		},
		Keybinds: KeybindConfig{
			NextTab:      "Right",
			PrevTab:      "Left",
			FirstTab:     "Home",
			LastTab:      "End",
			Reload:       "R",
			DebugOverlay: "F12",
		},
		Tabs: []string{"tab_home", "tab_recent", "tab_favorites", "tab_downloads", "tab_settings"},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "pagestrip"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it is missing.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EnsureDeviceID assigns a random device ID when none is configured and
// reports whether it did.
func (c *Config) EnsureDeviceID() bool {
	if c.Server.DeviceID != "" {
		return false
	}
	c.Server.DeviceID = uuid.NewString()
	return true
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
