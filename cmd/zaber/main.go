package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aosim/zaberration/internal/aberration"
	"github.com/aosim/zaberration/internal/config"
	"github.com/aosim/zaberration/internal/matfile"
	"github.com/aosim/zaberration/internal/store"
	"github.com/aosim/zaberration/internal/temporal"
	"github.com/aosim/zaberration/internal/tui"
	"github.com/aosim/zaberration/internal/viz"
	"github.com/aosim/zaberration/internal/zernike"
)

var (
	configFile string
	exportFile string
	// mode view parameters
	gridSize  int
	plotWidth int
	numModes  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "zaber",
		Short: "zernike aberration injection for adaptive-optics simulations",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "run aberration initialization and report status",
		RunE:  runInit,
	}
	initCmd.Flags().StringVar(&configFile, "config", "zaber.yaml", "config file path (yaml)")
	initCmd.Flags().StringVar(&exportFile, "export", "", "export results to json")

	modeCmd := &cobra.Command{
		Use:   "mode [index]",
		Short: "render one zernike mode",
		Args:  cobra.ExactArgs(1),
		RunE:  showMode,
	}
	modeCmd.Flags().IntVar(&gridSize, "size", 64, "grid samples per axis")
	modeCmd.Flags().IntVar(&plotWidth, "width", 72, "render width")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "validate the coefficient series against the iteration time",
		RunE:  runCheck,
	}
	checkCmd.Flags().StringVar(&configFile, "config", "zaber.yaml", "config file path (yaml)")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "browse the zernike basis interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(numModes, gridSize)
		},
	}
	viewCmd.Flags().IntVar(&numModes, "modes", zernike.MaxModes, "number of modes")
	viewCmd.Flags().IntVar(&gridSize, "size", 64, "grid samples per axis")

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(initCmd, modeCmd, checkCmd, viewCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	params := cfg.AberrationParams()
	tel := &aberration.Telescope{}
	res, err := aberration.New(nil).Initialize(params, cfg.PupilGeometry(), tel)
	if err != nil {
		return err
	}

	rep := res.Report(params)
	fmt.Println(viz.RenderReport(rep))

	if exportFile != "" {
		if err := store.ExportJSON(exportFile, rep, res); err != nil {
			return err
		}
		fmt.Println(viz.Subtle.Render("exported " + exportFile))
	}
	return nil
}

func showMode(cmd *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("mode index must be an integer: %w", err)
	}
	cube, err := zernike.Generate(zernike.MaxModes, gridSize)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= cube.Modes() {
		return fmt.Errorf("mode index %d outside 0..%d", idx, cube.Modes()-1)
	}

	mode := cube.Mode(idx)
	fmt.Printf("%s %s\n\n", viz.Title.Render(fmt.Sprintf("mode %d", idx)),
		viz.Label.Render(zernike.Name(idx)))
	fmt.Println(viz.Heatmap(mode, plotWidth))
	fmt.Println()
	fmt.Println(viz.Profile(mode, 10))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	a := cfg.Aberration
	times, err := matfile.Load(a.FileDir, a.FileName, a.FormatVersion, a.TimeVariable)
	if err != nil {
		return err
	}
	coeffs, err := matfile.Load(a.FileDir, a.FileName, a.FormatVersion, a.CoeffVariable)
	if err != nil {
		return err
	}

	tol := a.Tolerance
	if tol == 0 {
		tol = temporal.DefaultTolerance
	}
	step, err := temporal.ValidateStep(times.Ravel(), cfg.Loop.IterTime, tol)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", viz.Label.Render("samples:"),
		viz.Value.Render(fmt.Sprintf("%d x %d modes", coeffs.Rows(), coeffs.Cols())))
	fmt.Printf("%s %s\n", viz.Label.Render("step:"),
		viz.Value.Render(fmt.Sprintf("%g s", step)))
	fmt.Printf("%s %s\n", viz.Label.Render("decimation:"),
		viz.Value.Render(fmt.Sprintf("%d", temporal.Decimation(step, cfg.Loop.IterTime))))
	return nil
}
