package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/config"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/scenario"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/tui"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/viz"
)

const version = "0.3.0"

var (
	configFile string
	preset     string
	dt         float64
	steps      int
	softening  float64
	csvPath    string
	jsonPath   string
	svgPath    string
	showPlot   bool
	showOrbit  bool
	frameRate  int
)

func main() {
	root := &cobra.Command{
		Use:   "phosphorus",
		Short: "Particle dynamics playground",
		Long:  "phosphorus integrates particle populations through force fields with velocity-Verlet and draws what happened.",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runScenario()
			if err != nil {
				return err
			}
			printSummary(res)
			if showOrbit {
				fmt.Println(viz.Panel.Render(viz.TrajectoryPlot(res.XS, res.YS, 72, 22)))
			}
			if showPlot {
				fmt.Println(viz.SeriesPlot(res.XS, 72, 16, "x component over samples"))
			}
			return exportResult(res)
		},
	}
	runCmd.Flags().StringVarP(&configFile, "config", "c", "", "scenario YAML file")
	runCmd.Flags().StringVarP(&preset, "preset", "p", "", "built-in scenario name")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "override step size (seconds)")
	runCmd.Flags().IntVar(&steps, "steps", 0, "override step count")
	runCmd.Flags().Float64Var(&softening, "softening", -1, "override gravity softening length")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write sampled positions as CSV")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "write the run as JSON")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the trajectories as SVG")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "print an ascii chart of the x components")
	runCmd.Flags().BoolVar(&showOrbit, "trajectory", false, "print the XY trajectories on a braille canvas")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "Run a scenario and replay it as a terminal animation",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runScenario()
			if err != nil {
				return err
			}
			return tui.Play(tui.NewPlayer(res.Name, res.XS, res.YS, res.Times, frameRate))
		},
	}
	liveCmd.Flags().StringVarP(&configFile, "config", "c", "", "scenario YAML file")
	liveCmd.Flags().StringVarP(&preset, "preset", "p", "", "built-in scenario name")
	liveCmd.Flags().Float64Var(&dt, "dt", 0, "override step size (seconds)")
	liveCmd.Flags().IntVar(&steps, "steps", 0, "override step count")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "playback frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				p := config.Preset(name)
				fmt.Printf("%s\t%s, %d particles, %d steps\n",
					viz.Title.Render(name), p.Integrator, len(p.Particles), p.Steps)
			}
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("phosphorus " + version)
		},
	}

	root.AddCommand(runCmd, liveCmd, presetsCmd, versionCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, viz.ErrorText.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "" && preset != "":
		return nil, fmt.Errorf("pass either --config or --preset, not both")
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		cfg = config.Preset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
	default:
		return nil, fmt.Errorf("pass --config or --preset")
	}

	if dt > 0 {
		cfg.Dt = dt
	}
	if steps > 0 {
		cfg.Steps = steps
	}
	if softening >= 0 {
		cfg.Softening = softening
	}
	return cfg, cfg.Validate()
}

func runScenario() (*scenario.Result, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return scenario.Run(cfg)
}

func printSummary(res *scenario.Result) {
	fmt.Println(viz.Title.Render(res.Name))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", viz.MetricLabel.Render("steps"), res.Steps)
	fmt.Fprintf(w, "%s\t%g\n", viz.MetricLabel.Render("dt"), res.Dt)
	fmt.Fprintf(w, "%s\t%d\n", viz.MetricLabel.Render("tracks"), len(res.XS))
	fmt.Fprintf(w, "%s\t%d\n", viz.MetricLabel.Render("samples"), len(res.Times))

	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", viz.MetricLabel.Render(name),
			viz.MetricValue.Render(fmt.Sprintf("%.6g", res.Metrics[name])))
	}
	w.Flush()
}

func exportResult(res *scenario.Result) error {
	if csvPath != "" {
		if err := writeFile(csvPath, func(f *os.File) error {
			return res.Export.WriteCSV(f)
		}); err != nil {
			return err
		}
		fmt.Println(viz.Subtle.Render("wrote " + csvPath))
	}
	if jsonPath != "" {
		if err := writeFile(jsonPath, func(f *os.File) error {
			return res.Export.WriteJSON(f)
		}); err != nil {
			return err
		}
		fmt.Println(viz.Subtle.Render("wrote " + jsonPath))
	}
	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(viz.TrajectorySVG(res.XS, res.YS, 800, 600)), 0644); err != nil {
			return err
		}
		fmt.Println(viz.Subtle.Render("wrote " + svgPath))
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
