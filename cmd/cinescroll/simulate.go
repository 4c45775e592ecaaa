package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/cinescroll"
	"github.com/phanxgames/cinescroll/config"
)

var (
	simMaxFrames int
	simEvery     int
	simSettle    int
	simStatic    bool
	simFormat    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <script.json>...",
	Short: "Replay input scripts headlessly and report the frames",
	Long: `Runs each JSON input script against a headless engine at the configured
tick rate and prints sampled frames: effective progress, transition states,
visible sections and the camera. Scripts run concurrently; reports are printed
in argument order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simMaxFrames, "max-frames", 3600, "stop after this many frames")
	simulateCmd.Flags().IntVar(&simEvery, "every", 10, "sample every N frames")
	simulateCmd.Flags().IntVar(&simSettle, "settle", 120, "frames to keep running after the script ends")
	simulateCmd.Flags().BoolVar(&simStatic, "static", false, "simulate the degraded static path")
	simulateCmd.Flags().StringVar(&simFormat, "format", "text", "output format: text or yaml")
	rootCmd.AddCommand(simulateCmd)
}

// simOptions controls one headless run.
type simOptions struct {
	MaxFrames int
	Every     int
	Settle    int
	Scene     bool
}

// frameSample is one sampled frame of a report.
type frameSample struct {
	Frame     uint64             `yaml:"frame"`
	Time      float64            `yaml:"time"`
	Progress  float64            `yaml:"progress"`
	Intro     string             `yaml:"intro"`
	Burst     string             `yaml:"burst"`
	Returning bool               `yaml:"returning"`
	Restart   bool               `yaml:"restart_available"`
	Sections  map[string]float64 `yaml:"sections,omitempty"`
	Camera    []float64          `yaml:"camera,omitempty"`
}

// simReport is the result of replaying one script.
type simReport struct {
	Script  string        `yaml:"script"`
	Frames  int           `yaml:"frames"`
	Scene   bool          `yaml:"scene"`
	Samples []frameSample `yaml:"samples"`
	Final   frameSample   `yaml:"final"`
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if simFormat != "text" && simFormat != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", simFormat)
	}
	opts := simOptions{
		MaxFrames: simMaxFrames,
		Every:     simEvery,
		Settle:    simSettle,
		Scene:     !simStatic && !cfg.Motion.ReducedMotion,
	}

	reports := make([]*simReport, len(args))
	g, ctx := errgroup.WithContext(context.Background())
	for i, path := range args {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading script %s: %w", path, err)
			}
			rep, err := simulate(ctx, cfg, filepath.Base(path), data, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if simFormat == "yaml" {
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		for _, rep := range reports {
			if err := enc.Encode(rep); err != nil {
				return fmt.Errorf("encoding report: %w", err)
			}
		}
		return nil
	}
	for _, rep := range reports {
		writeReport(out, rep)
	}
	return nil
}

// simulate replays one script against a fresh engine.
func simulate(ctx context.Context, cfg *config.Config, name string, script []byte, opts simOptions) (*simReport, error) {
	runner, err := cinescroll.LoadTestScript(script)
	if err != nil {
		return nil, err
	}
	if opts.Every <= 0 {
		opts.Every = 1
	}
	eopts := cfg.EngineOptions(opts.Scene)
	// Scripts are replayed quietly; per-frame stats would interleave across
	// concurrent runs.
	eopts.Debug = false
	e := cinescroll.New(eopts)
	e.SetTestRunner(runner)

	rep := &simReport{Script: name, Scene: e.SceneEnabled()}
	e.SetRenderer(cinescroll.RendererFunc(func(f *cinescroll.Frame) {
		if f.Index%uint64(opts.Every) == 0 {
			rep.Samples = append(rep.Samples, sampleFrame(e, f))
		}
	}))

	tps := cfg.Scroll.TPS
	if tps <= 0 {
		tps = 60
	}
	dt := 1 / float64(tps)
	settle := opts.Settle
	for rep.Frames < opts.MaxFrames {
		if rep.Frames%60 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		e.Update(dt)
		rep.Frames++
		if runner.Done() && e.Pending() == 0 {
			if settle <= 0 {
				break
			}
			settle--
		}
	}
	rep.Final = sampleFrame(e, e.Frame())
	return rep, nil
}

func sampleFrame(e *cinescroll.Engine, f *cinescroll.Frame) frameSample {
	s := frameSample{
		Frame:     f.Index,
		Time:      round3(f.Time),
		Progress:  round3(f.Progress),
		Intro:     e.Intro().State().String(),
		Burst:     f.State.Burst.String(),
		Returning: f.State.Returning,
		Restart:   f.State.RestartAvailable,
	}
	for _, sec := range f.Sections {
		if sec.Visibility > 0 {
			if s.Sections == nil {
				s.Sections = make(map[string]float64)
			}
			s.Sections[sec.ID] = round3(sec.Visibility)
		}
	}
	if f.SceneEnabled {
		p := f.Camera.Position
		s.Camera = []float64{round3(p.X()), round3(p.Y()), round3(p.Z())}
	}
	return s
}

func round3(v float64) float64 {
	return float64(int64(v*1000+0.5*sign(v))) / 1000
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func writeReport(w io.Writer, rep *simReport) {
	mode := "3d"
	if !rep.Scene {
		mode = "static"
	}
	fmt.Fprintf(w, "== %s (%d frames, %s)\n", rep.Script, rep.Frames, mode)
	for _, s := range rep.Samples {
		fmt.Fprintln(w, formatSample(s))
	}
	fmt.Fprintf(w, "final: %s\n\n", formatSample(rep.Final))
}

func formatSample(s frameSample) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%-5d t=%6.2fs p=%.3f intro=%-8s burst=%-9s", s.Frame, s.Time, s.Progress, s.Intro, s.Burst)
	if s.Returning {
		b.WriteString(" returning")
	}
	if s.Restart {
		b.WriteString(" restart")
	}
	if len(s.Sections) > 0 {
		ids := make([]string, 0, len(s.Sections))
		for id := range s.Sections {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = fmt.Sprintf("%s:%.2f", id, s.Sections[id])
		}
		b.WriteString(" [" + strings.Join(parts, " ") + "]")
	}
	if len(s.Camera) == 3 {
		fmt.Fprintf(&b, " cam=(%.2f,%.2f,%.2f)", s.Camera[0], s.Camera[1], s.Camera[2])
	}
	return b.String()
}
