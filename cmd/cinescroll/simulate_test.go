package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/cinescroll/config"
)

const journeyScript = `{"steps": [
	{"action": "load"},
	{"action": "wait", "frames": 200},
	{"action": "scroll", "value": 1},
	{"action": "wait", "frames": 10}
]}`

func TestSimulateJourney(t *testing.T) {
	rep, err := simulate(context.Background(), config.DefaultConfig(), "journey.json", []byte(journeyScript),
		simOptions{MaxFrames: 2000, Every: 30, Settle: 120, Scene: true})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if !rep.Scene {
		t.Error("expected the 3D path")
	}
	if rep.Final.Progress != 1 {
		t.Errorf("final progress = %v, want 1", rep.Final.Progress)
	}
	if rep.Final.Intro != "complete" {
		t.Errorf("final intro = %s, want complete", rep.Final.Intro)
	}
	if !rep.Final.Restart {
		t.Error("restart should be available at the end")
	}
	if rep.Final.Burst == "armed" {
		t.Error("burst should have fired")
	}
	if _, ok := rep.Final.Sections["contact"]; !ok {
		t.Errorf("contact should be visible at the end, got %v", rep.Final.Sections)
	}
	if len(rep.Final.Camera) != 3 {
		t.Errorf("camera = %v, want a position", rep.Final.Camera)
	}
	if len(rep.Samples) == 0 {
		t.Error("expected sampled frames")
	}
	for _, s := range rep.Samples {
		if s.Frame%30 != 0 {
			t.Errorf("sample at frame %d, want multiples of 30", s.Frame)
		}
	}
}

func TestSimulateStatic(t *testing.T) {
	rep, err := simulate(context.Background(), config.DefaultConfig(), "static.json", []byte(journeyScript),
		simOptions{MaxFrames: 2000, Every: 60, Scene: false})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if rep.Scene {
		t.Error("expected the static path")
	}
	if rep.Final.Camera != nil {
		t.Error("static path should not report a camera")
	}
	if rep.Final.Progress != 1 {
		t.Errorf("final progress = %v, want 1", rep.Final.Progress)
	}
}

func TestSimulateMaxFrames(t *testing.T) {
	rep, err := simulate(context.Background(), config.DefaultConfig(), "long.json",
		[]byte(`{"steps": [{"action": "wait", "frames": 1000}]}`),
		simOptions{MaxFrames: 50, Every: 10})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if rep.Frames != 50 {
		t.Errorf("frames = %d, want 50", rep.Frames)
	}
}

func TestSimulateBadScript(t *testing.T) {
	_, err := simulate(context.Background(), config.DefaultConfig(), "bad.json",
		[]byte(`{"steps": [{"action": "jump"}]}`), simOptions{MaxFrames: 10})
	if err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := simulate(ctx, config.DefaultConfig(), "x.json", []byte(journeyScript), simOptions{MaxFrames: 100})
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestFormatSample(t *testing.T) {
	s := frameSample{
		Frame:    42,
		Time:     0.7,
		Progress: 0.3,
		Intro:    "complete",
		Burst:    "triggered",
		Restart:  true,
		Sections: map[string]float64{"services": 0.25, "hero": 1},
		Camera:   []float64{0.5, -1, 9},
	}
	got := formatSample(s)
	for _, want := range []string{"#42", "p=0.300", "restart", "[hero:1.00 services:0.25]", "cam=(0.50,-1.00,9.00)"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatSample missing %q in %q", want, got)
		}
	}
}

func TestRound3(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0.12345, 0.123},
		{0.9996, 1},
		{-0.12345, -0.123},
		{0, 0},
	}
	for _, tt := range tests {
		if got := round3(tt.in); got != tt.want {
			t.Errorf("round3(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	writeReport(&buf, &simReport{Script: "a.json", Frames: 3, Final: frameSample{Intro: "idle", Burst: "armed"}})
	if !strings.HasPrefix(buf.String(), "== a.json (3 frames, static)") {
		t.Errorf("header = %q", buf.String())
	}
}

func TestRunInit(t *testing.T) {
	old := cfgFile
	defer func() { cfgFile = old }()
	cfgFile = filepath.Join(t.TempDir(), "cinescroll.yml")

	var out bytes.Buffer
	initCmd.SetOut(&out)
	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	if _, err := os.Stat(cfgFile); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if err := runInit(initCmd, nil); err == nil {
		t.Error("second init without --force should fail")
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Window.Title != config.DefaultConfig().Window.Title {
		t.Errorf("title = %q", cfg.Window.Title)
	}
}

func TestVersionString(t *testing.T) {
	if !strings.HasPrefix(versionString(), "cinescroll ") {
		t.Errorf("versionString = %q", versionString())
	}
}
