package config

// DefaultConfig returns the reference site: six sections, four service cards
// and the tuning the motion was designed with.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:         "Studio Nocturne",
			Width:         1280,
			Height:        720,
			ScreenshotDir: "screenshots",
		},
		Scroll: ScrollConfig{
			Pages:           10,
			Frequency:       6,
			Damping:         1,
			WheelMultiplier: 100,
			KeyboardStep:    120,
			TPS:             60,
		},
		Motion: MotionConfig{
			IntroDuration:   2.5,
			IntroSettle:     0.3,
			ReturnDuration:  2,
			BurstThreshold:  0.01,
			BurstRate:       0.8,
			BurstParticles:  600,
			CameraSmoothing: 0.05,
			MouseInfluence:  1.5,
		},
		Palette: PaletteConfig{
			Background: "#07060d",
			Core:       "#8b5cf6",
			Ring:       "#ec4899",
			Accent:     "#ffffff",
		},
		Sections: []SectionConfig{
			{ID: "welcome", Title: "Studio Nocturne", Body: "Scroll to begin", Start: -0.1, End: 0.08, FadeIn: 0.3, FadeOut: 0.3},
			{ID: "hero", Title: "We build worlds, not websites", Body: "A creative studio for brands that move.", Start: 0.05, End: 0.32, FadeIn: 0.3, FadeOut: 0.3},
			{ID: "services", Title: "What we do", Body: "Strategy, identity, motion and interactive.", Start: 0.28, End: 0.52, FadeIn: 0.25, FadeOut: 0.25},
			{ID: "work", Title: "Selected work", Body: "Press V to play the showreel.", Start: 0.48, End: 0.72, FadeIn: 0.25, FadeOut: 0.25},
			{ID: "process", Title: "How we work", Body: "Discover. Design. Build. Launch.", Start: 0.68, End: 0.88, FadeIn: 0.25, FadeOut: 0.25},
			{ID: "contact", Title: "Let's talk", Body: "Tell us about your project.", Start: 0.85, End: 1.08, FadeIn: 0.3, FadeOut: 0.3},
		},
		Cards: []CardConfig{
			{ID: "strategy", Section: "services", Title: "Strategy", Color: "#3b82f6"},
			{ID: "identity", Section: "services", Title: "Identity", Color: "#10b981"},
			{ID: "motion", Section: "services", Title: "Motion", Color: "#f59e0b"},
			{ID: "interactive", Section: "services", Title: "Interactive", Color: "#ef4444"},
		},
		Contact: ContactConfig{
			Endpoint:       "https://formspree.io/f/your-form-id",
			TimeoutSeconds: 10,
		},
	}
}
