package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/phanxgames/cinescroll"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nesting levels: CINESCROLL_MOTION__REDUCED_MOTION=true.
const EnvPrefix = "CINESCROLL_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CINESCROLL_*). A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists from the file replace the default lists rather than merging into
	// them element by element.
	if k.Exists("sections") {
		cfg.Sections = nil
	}
	if k.Exists("cards") {
		cfg.Cards = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps CINESCROLL_MOTION__REDUCED_MOTION to motion.reduced_motion.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Scroll.Pages < 1 {
		return fmt.Errorf("scroll.pages must be at least 1")
	}
	if c.Scroll.Frequency <= 0 {
		return fmt.Errorf("scroll.frequency must be positive")
	}
	if c.Scroll.Damping <= 0 {
		return fmt.Errorf("scroll.damping must be positive")
	}
	if c.Motion.IntroDuration <= 0 || c.Motion.ReturnDuration <= 0 {
		return fmt.Errorf("motion durations must be positive")
	}
	if c.Motion.BurstRate <= 0 {
		return fmt.Errorf("motion.burst_rate must be positive")
	}
	if c.Motion.BurstThreshold <= 0 || c.Motion.BurstThreshold >= 1 {
		return fmt.Errorf("motion.burst_threshold must be in (0, 1)")
	}
	if s := c.Motion.CameraSmoothing; s <= 0 || s > 1 {
		return fmt.Errorf("motion.camera_smoothing must be in (0, 1]")
	}

	if len(c.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}
	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" {
			return fmt.Errorf("section %d: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("section %q: duplicate id", s.ID)
		}
		seen[s.ID] = true
		if s.End <= s.Start {
			return fmt.Errorf("section %q: end %.3f must be after start %.3f", s.ID, s.End, s.Start)
		}
		if s.FadeIn < 0 || s.FadeOut < 0 || s.FadeIn+s.FadeOut > 1 {
			return fmt.Errorf("section %q: fade fractions must be non-negative and sum to at most 1", s.ID)
		}
	}

	for _, card := range c.Cards {
		if !seen[card.Section] {
			return fmt.Errorf("card %q: unknown section %q", card.ID, card.Section)
		}
		if _, err := cinescroll.ParseColor(card.Color); err != nil {
			return fmt.Errorf("card %q: invalid color %q: %w", card.ID, card.Color, err)
		}
	}

	for name, hex := range map[string]string{
		"background": c.Palette.Background,
		"core":       c.Palette.Core,
		"ring":       c.Palette.Ring,
		"accent":     c.Palette.Accent,
	} {
		if _, err := cinescroll.ParseColor(hex); err != nil {
			return fmt.Errorf("palette.%s: invalid color %q: %w", name, hex, err)
		}
	}

	if c.Contact.TimeoutSeconds < 0 {
		return fmt.Errorf("contact.timeout_seconds must be non-negative")
	}
	return nil
}

// EngineSections converts the configured sections into engine descriptors.
func (c *Config) EngineSections() []cinescroll.Section {
	out := make([]cinescroll.Section, len(c.Sections))
	for i, s := range c.Sections {
		out[i] = cinescroll.Section{
			ID:              s.ID,
			StartProgress:   s.Start,
			EndProgress:     s.End,
			FadeInFraction:  s.FadeIn,
			FadeOutFraction: s.FadeOut,
		}
	}
	return out
}

// CardColor returns the parsed accent color of a card. Invalid colors fall
// back to white; Validate reports them.
func (c CardConfig) CardColor() cinescroll.Color {
	col, err := cinescroll.ParseColor(c.Color)
	if err != nil {
		return cinescroll.ColorWhite
	}
	return col
}

// BackgroundColor returns the parsed page background.
func (c *Config) BackgroundColor() cinescroll.Color {
	col, err := cinescroll.ParseColor(c.Palette.Background)
	if err != nil {
		return cinescroll.Color{}
	}
	return col
}

// ContactTimeout returns the relay request timeout.
func (c *Config) ContactTimeout() time.Duration {
	return time.Duration(c.Contact.TimeoutSeconds) * time.Second
}

// EngineOptions builds engine options from the configuration. sceneCapable
// is the renderer's one-time capability check; reduced motion overrides it.
func (c *Config) EngineOptions(sceneCapable bool) cinescroll.Options {
	opts := cinescroll.DefaultOptions()
	opts.Sections = c.EngineSections()
	opts.Scroll = cinescroll.ScrollConfig{
		Pages:           c.Scroll.Pages,
		Frequency:       c.Scroll.Frequency,
		Damping:         c.Scroll.Damping,
		WheelMultiplier: c.Scroll.WheelMultiplier,
		TPS:             c.Scroll.TPS,
	}
	opts.IntroDuration = c.Motion.IntroDuration
	opts.IntroSettle = c.Motion.IntroSettle
	opts.ReturnDuration = c.Motion.ReturnDuration
	opts.BurstThreshold = c.Motion.BurstThreshold
	opts.BurstRate = c.Motion.BurstRate
	if c.Motion.BurstParticles > 0 {
		opts.Field.Count = c.Motion.BurstParticles
	}
	opts.Scene.Camera.Smoothing = c.Motion.CameraSmoothing
	opts.Scene.Camera.MouseInfluence = c.Motion.MouseInfluence
	if col, err := cinescroll.ParseColor(c.Palette.Core); err == nil {
		opts.Scene.CoreColor = col
		opts.Scene.LightA = col
	}
	if col, err := cinescroll.ParseColor(c.Palette.Ring); err == nil {
		opts.Scene.RingColor = col
	}
	if col, err := cinescroll.ParseColor(c.Palette.Accent); err == nil {
		opts.Scene.AccentDefault = col
	}
	opts.SceneEnabled = sceneCapable && !c.Motion.ReducedMotion
	opts.ViewportWidth = float64(c.Window.Width)
	opts.ViewportHeight = float64(c.Window.Height)
	opts.Debug = c.Debug
	return opts
}
