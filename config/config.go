package config

import (
	"encoding/json"
	"os"

	"github.com/soocke/chart-digitizer-go/domain/chart"
)

// Config holds runtime configuration for the digitizer UI. Fields may be
// loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Extraction defaults applied to the form on startup.
	DefaultMode       string `json:"default_mode"`
	DefaultStartMonth string `json:"default_start_month"`

	// Working raster bound: larger source images are scaled down to fit,
	// while the full-resolution original is kept for cropping.
	CanvasMaxW int `json:"canvas_max_w"`
	CanvasMaxH int `json:"canvas_max_h"`

	// Preview bound for the on-screen chart widget.
	PreviewMaxW int `json:"preview_max_w"`
	PreviewMaxH int `json:"preview_max_h"`

	// Screen grab rectangle persistence; zero width or height means the
	// whole screen.
	GrabX int `json:"grab_x"`
	GrabY int `json:"grab_y"`
	GrabW int `json:"grab_w"`
	GrabH int `json:"grab_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		DefaultMode:       chart.ModeTotal.String(),
		DefaultStartMonth: chart.MonthName(0),
		CanvasMaxW:        800,
		CanvasMaxH:        500,
		PreviewMaxW:       800,
		PreviewMaxH:       500,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.CanvasMaxW <= 0 {
		c.CanvasMaxW = 800
	}
	if c.CanvasMaxH <= 0 {
		c.CanvasMaxH = 500
	}
	if c.PreviewMaxW <= 0 {
		c.PreviewMaxW = c.CanvasMaxW
	}
	if c.PreviewMaxH <= 0 {
		c.PreviewMaxH = c.CanvasMaxH
	}
	if c.DefaultMode == "" {
		c.DefaultMode = chart.ModeTotal.String()
	}
	c.DefaultMode = chart.ParseMode(c.DefaultMode).String()
	if _, err := chart.ParseStartMonth(c.DefaultStartMonth); err != nil {
		c.DefaultStartMonth = chart.MonthName(0)
	}
	if c.GrabW < 0 {
		c.GrabW = 0
	}
	if c.GrabH < 0 {
		c.GrabH = 0
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
