package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/smasonuk/pointdist"
	"github.com/smasonuk/pointdist/internal/pointarg"
)

var distanceJSON bool

type distanceResult struct {
	Point1   []float64 `json:"point1"`
	Point2   []float64 `json:"point2"`
	Distance float64   `json:"distance"`
}

func distanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance P1 P2",
		Short: "Print the Euclidean distance between two points",
		Example: `  pointdist distance 0,0,0 1,2,2
  pointdist distance "[0, 0, 0]" "[3, 4, 0]" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistance(cmd.OutOrStdout(), args[0], args[1], distanceJSON)
		},
	}
	cmd.Flags().BoolVar(&distanceJSON, "json", false, "Print the result as JSON")
	return cmd
}

func runDistance(w io.Writer, arg1, arg2 string, asJSON bool) error {
	p1, p2 := pointarg.Parse(arg1), pointarg.Parse(arg2)
	logger.Debug("computing distance", "point1", p1, "point2", p2)

	d, err := pointdist.DistanceBetween(p1, p2)
	if err != nil {
		return err
	}

	if !asJSON {
		_, err = fmt.Fprintln(w, d)
		return err
	}

	// validated above, so these cannot fail
	a, _ := pointdist.ParsePoint(p1)
	b, _ := pointdist.ParsePoint(p2)
	out, err := json.Marshal(distanceResult{
		Point1:   a.Slice(),
		Point2:   b.Slice(),
		Distance: d,
	})
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
