package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smasonuk/pointdist"
	"github.com/smasonuk/pointdist/internal/pointarg"
	"github.com/smasonuk/pointdist/viewer"
)

type plotFlags struct {
	out        string
	configPath string
	title      string
}

var plotOpts plotFlags

func plotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot P1 P2",
		Short: "Plot two points, the segment between them and their distance",
		Example: `  pointdist plot 0,0,0 1,2,2
  pointdist plot 0,0,0 3,4,0 --out distance.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(args[0], args[1], plotOpts)
		},
	}
	cmd.Flags().StringVarP(&plotOpts.out, "out", "o", "", "Write the plot to this PNG file instead of opening a window")
	cmd.Flags().StringVarP(&plotOpts.configPath, "config", "c", "", "YAML plot configuration")
	cmd.Flags().StringVar(&plotOpts.title, "title", "", "Figure title")
	return cmd
}

func runPlot(arg1, arg2 string, flags plotFlags) error {
	cfg, err := loadPlotConfig(flags.configPath)
	if err != nil {
		return err
	}
	opts := []pointdist.PlotOption{pointdist.WithConfig(cfg)}
	if flags.title != "" {
		opts = append(opts, pointdist.WithTitle(flags.title))
	}

	p1, p2 := pointarg.Parse(arg1), pointarg.Parse(arg2)

	if flags.out == "" {
		logger.Debug("opening plot window", "point1", p1, "point2", p2)
		return pointdist.PlotDistance(p1, p2, viewer.Window{Title: flags.title}, opts...)
	}

	if err := pointdist.SavePNG(flags.out, p1, p2, opts...); err != nil {
		return err
	}
	logger.Info("plot written", "path", flags.out)
	return nil
}

func loadPlotConfig(path string) (pointdist.PlotConfig, error) {
	if path == "" {
		return pointdist.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return pointdist.PlotConfig{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return pointdist.LoadConfig(f)
}
