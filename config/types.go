package config

// Config is the top-level site configuration, corresponding to cinescroll.yml.
type Config struct {
	Window   WindowConfig    `yaml:"window" koanf:"window"`
	Scroll   ScrollConfig    `yaml:"scroll" koanf:"scroll"`
	Motion   MotionConfig    `yaml:"motion" koanf:"motion"`
	Palette  PaletteConfig   `yaml:"palette" koanf:"palette"`
	Sections []SectionConfig `yaml:"sections" koanf:"sections"`
	Cards    []CardConfig    `yaml:"cards" koanf:"cards"`
	Contact  ContactConfig   `yaml:"contact" koanf:"contact"`
	Debug    bool            `yaml:"debug" koanf:"debug"`
}

// WindowConfig sizes the window the stage opens. ScreenshotDir receives F12
// captures.
type WindowConfig struct {
	Title         string `yaml:"title" koanf:"title"`
	Width         int    `yaml:"width" koanf:"width"`
	Height        int    `yaml:"height" koanf:"height"`
	ShowFPS       bool   `yaml:"show_fps" koanf:"show_fps"`
	ScreenshotDir string `yaml:"screenshot_dir" koanf:"screenshot_dir"`
}

// ScrollConfig tunes the smooth-scroll integrator.
type ScrollConfig struct {
	Pages           float64 `yaml:"pages" koanf:"pages"`
	Frequency       float64 `yaml:"frequency" koanf:"frequency"`
	Damping         float64 `yaml:"damping" koanf:"damping"`
	WheelMultiplier float64 `yaml:"wheel_multiplier" koanf:"wheel_multiplier"`
	KeyboardStep    float64 `yaml:"keyboard_step" koanf:"keyboard_step"`
	TPS             int     `yaml:"tps" koanf:"tps"`
}

// MotionConfig holds transition timings and the reduced-motion switch.
type MotionConfig struct {
	// ReducedMotion selects the static-gradient path for the whole session.
	ReducedMotion   bool    `yaml:"reduced_motion" koanf:"reduced_motion"`
	IntroDuration   float64 `yaml:"intro_duration" koanf:"intro_duration"`
	IntroSettle     float64 `yaml:"intro_settle" koanf:"intro_settle"`
	ReturnDuration  float64 `yaml:"return_duration" koanf:"return_duration"`
	BurstThreshold  float64 `yaml:"burst_threshold" koanf:"burst_threshold"`
	BurstRate       float64 `yaml:"burst_rate" koanf:"burst_rate"`
	BurstParticles  int     `yaml:"burst_particles" koanf:"burst_particles"`
	CameraSmoothing float64 `yaml:"camera_smoothing" koanf:"camera_smoothing"`
	MouseInfluence  float64 `yaml:"mouse_influence" koanf:"mouse_influence"`
}

// PaletteConfig holds hex colors for the scene.
type PaletteConfig struct {
	Background string `yaml:"background" koanf:"background"`
	Core       string `yaml:"core" koanf:"core"`
	Ring       string `yaml:"ring" koanf:"ring"`
	Accent     string `yaml:"accent" koanf:"accent"`
}

// SectionConfig is one content panel and its scroll window.
type SectionConfig struct {
	ID      string  `yaml:"id" koanf:"id"`
	Title   string  `yaml:"title" koanf:"title"`
	Body    string  `yaml:"body" koanf:"body"`
	Start   float64 `yaml:"start" koanf:"start"`
	End     float64 `yaml:"end" koanf:"end"`
	FadeIn  float64 `yaml:"fade_in" koanf:"fade_in"`
	FadeOut float64 `yaml:"fade_out" koanf:"fade_out"`
}

// CardConfig is a hoverable content card shown inside a section.
type CardConfig struct {
	ID      string `yaml:"id" koanf:"id"`
	Section string `yaml:"section" koanf:"section"`
	Title   string `yaml:"title" koanf:"title"`
	Color   string `yaml:"color" koanf:"color"`
}

// ContactConfig points at the third-party form relay.
type ContactConfig struct {
	Endpoint       string `yaml:"endpoint" koanf:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}
