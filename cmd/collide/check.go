package main

import (
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/collide/pkg/scene"
	"github.com/spf13/cobra"
)

type checkReport struct {
	Step     int             `json:"step"`
	Time     float64         `json:"time"`
	Overlaps []scene.Overlap `json:"overlaps"`
}

func newCheckCmd() *cobra.Command {
	var (
		translation bool
		steps       int
		dt          float64
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "check <scene.yaml>",
		Short: "Report overlapping objects in a scene",
		Long: `Load a scene and print every overlapping pair of objects.

With --steps the scene is advanced by --dt seconds that many times under each
object's velocity and the scene's gravity, and overlaps are reported after
every step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 0 {
				return fmt.Errorf("steps must not be negative")
			}
			if !(dt > 0) {
				return fmt.Errorf("dt must be positive")
			}

			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			world, err := s.Build()
			if err != nil {
				return fmt.Errorf("failed to build scene: %v", err)
			}
			defer world.Close()

			reports := []checkReport{{Overlaps: world.Overlaps(translation)}}
			for i := 1; i <= steps; i++ {
				world.Step(dt)
				reports = append(reports, checkReport{
					Step:     i,
					Time:     float64(i) * dt,
					Overlaps: world.Overlaps(translation),
				})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(reports)
			}
			for _, report := range reports {
				if steps > 0 {
					fmt.Fprintf(out, "step %d (t=%gs): %d overlaps\n", report.Step, report.Time, len(report.Overlaps))
				} else {
					fmt.Fprintf(out, "%d overlaps\n", len(report.Overlaps))
				}
				for _, o := range report.Overlaps {
					if o.Translation != nil {
						fmt.Fprintf(out, "  %s %s %s\n", o.A, o.B, o.Translation)
					} else {
						fmt.Fprintf(out, "  %s %s\n", o.A, o.B)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&translation, "translation", false, "Report the translation that moves the first object out of the second")
	cmd.Flags().IntVar(&steps, "steps", 0, "Number of time steps to simulate")
	cmd.Flags().Float64Var(&dt, "dt", 1.0/60, "Seconds per time step")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	return cmd
}
