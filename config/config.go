package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the overlay window and the
// capture pipeline. Fields may be loaded from a JSON file and overridden
// by command-line flags. Camera selection and window position are
// intentionally absent; neither survives a restart.
type Config struct {
	Debug bool `json:"debug"`

	// Overlay window geometry
	WindowWidth   int `json:"window_width"`
	WindowHeight  int `json:"window_height"`
	CornerPadding int `json:"corner_padding"`

	// Preview rendering
	PreviewFPS int `json:"preview_fps"`

	// Fallback display bounds used when the display provider cannot
	// report real metrics.
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`

	// Timing knobs (milliseconds)
	HotplugPollMS int `json:"hotplug_poll_ms"`
	DisplayPollMS int `json:"display_poll_ms"`
	SettleDelayMS int `json:"settle_delay_ms"`
	RetryDelayMS  int `json:"retry_delay_ms"`

	// Requested capture resolution; the driver may negotiate down.
	CaptureWidth  int `json:"capture_width"`
	CaptureHeight int `json:"capture_height"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		WindowWidth:   320,
		WindowHeight:  240,
		CornerPadding: 20,
		PreviewFPS:    24,
		ScreenWidth:   1920,
		ScreenHeight:  1080,
		HotplugPollMS: 1000,
		DisplayPollMS: 1000,
		SettleDelayMS: 500,
		RetryDelayMS:  1000,
		CaptureWidth:  640,
		CaptureHeight: 480,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 {
		c.WindowWidth = 320
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = 240
	}
	if c.CornerPadding < 0 {
		c.CornerPadding = 20
	}
	if c.PreviewFPS <= 0 || c.PreviewFPS > 60 {
		c.PreviewFPS = 24
	}
	if c.ScreenWidth <= 0 {
		c.ScreenWidth = 1920
	}
	if c.ScreenHeight <= 0 {
		c.ScreenHeight = 1080
	}
	if c.HotplugPollMS <= 0 {
		c.HotplugPollMS = 1000
	}
	if c.DisplayPollMS <= 0 {
		c.DisplayPollMS = 1000
	}
	if c.SettleDelayMS < 0 {
		c.SettleDelayMS = 500
	}
	if c.RetryDelayMS <= 0 {
		c.RetryDelayMS = 1000
	}
	if c.CaptureWidth <= 0 {
		c.CaptureWidth = 640
	}
	if c.CaptureHeight <= 0 {
		c.CaptureHeight = 480
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
