package main

import (
	"fmt"

	"github.com/cbodonnell/collide/pkg/collisions"
	"github.com/cbodonnell/collide/pkg/kinematic"
	"github.com/cbodonnell/collide/pkg/scene"
	"github.com/spf13/cobra"
)

func newTriangulateCmd() *cobra.Command {
	var orientation string

	cmd := &cobra.Command{
		Use:   "triangulate <x,y> <x,y> <x,y>...",
		Short: "Split a simple polygon into triangles",
		Long: `Triangulate a simple polygon by ear clipping and print one triangle per
line. Points are given in winding order.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedOrientation, err := collisions.ParseOrientation(orientation)
			if err != nil {
				return err
			}
			points := make([]kinematic.Vector, 0, len(args))
			for _, arg := range args {
				p, err := scene.ParsePoint(arg)
				if err != nil {
					return err
				}
				points = append(points, p)
			}

			compound, err := collisions.TriangulateConcave(points, parsedOrientation)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, child := range compound.Children {
				triangle := child.Shape.(collisions.ConvexPolygon)
				for i, p := range triangle.Points {
					if i > 0 {
						fmt.Fprint(out, " ")
					}
					v := p.Add(child.Offset)
					fmt.Fprintf(out, "%g,%g", v.X, v.Y)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&orientation, "orientation", "counter_clockwise", "Winding of the points: clockwise or counter_clockwise")
	return cmd
}
