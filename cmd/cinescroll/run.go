package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/cinescroll"
	"github.com/phanxgames/cinescroll/stage"
)

var (
	runScript  string
	runReduced bool
	runFPS     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the scene in a window",
	Long: `Opens a window and runs the scene. Scroll with the wheel or keyboard
(arrows, PageUp/PageDown, Space, Home/End). R rewinds to the top once the
end is reached, V toggles the showreel and Tab edits the contact form.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runScript, "script", "", "JSON input script to replay in the window")
	runCmd.Flags().BoolVar(&runReduced, "reduced-motion", false, "use the static gradient instead of the 3D scene")
	runCmd.Flags().BoolVar(&runFPS, "fps", false, "show the FPS overlay")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runReduced {
		cfg.Motion.ReducedMotion = true
	}
	if runFPS {
		cfg.Window.ShowFPS = true
	}

	opts := stage.Options{Config: cfg}
	if runScript != "" {
		data, err := os.ReadFile(runScript)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		runner, err := cinescroll.LoadTestScript(data)
		if err != nil {
			return err
		}
		opts.Script = runner
	}
	return stage.Run(opts)
}
