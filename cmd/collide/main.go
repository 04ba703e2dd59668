// collide checks 2D scenes for overlapping shapes.
//
// Usage:
//
//	collide check <scene.yaml>          - Report overlapping objects
//	collide triangulate <x,y>...        - Split a concave polygon into triangles
//	collide encode <scene.yaml> -o out  - Write a compressed binary snapshot
//	collide decode <snapshot>           - Print a snapshot as YAML
//	collide serve                       - Start the HTTP API
//
// Global flags:
//
//	--log-level <level>  - error, warn, info, debug or trace (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/cbodonnell/collide/pkg/log"
	"github.com/cbodonnell/collide/pkg/version"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "collide",
		Short:   "2D collision detection for circles, capsules, polygons and compounds",
		Version: version.Get(),
		Long: `collide builds scenes of 2D shapes from YAML and reports which of them
overlap, using AABB culling followed by separating axis tests.

Examples:
  collide check scene.yaml --translation
  collide check scene.yaml --steps 10 --dt 0.1
  collide triangulate --orientation clockwise 0,0 0,2 1,2 1,1 2,1 2,0
  collide encode scene.yaml -o scene.bin
  collide serve --port 9090`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			parsedLogLevel, err := log.ParseLogLevel(logLevel)
			if err != nil {
				return fmt.Errorf("failed to parse log level: %v", err)
			}
			log.SetDefaultLogger(log.New(cmd.ErrOrStderr(), "", log.DefaultLoggerFlag, parsedLogLevel))
			log.Debug("Log level set to %s", parsedLogLevel)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newTriangulateCmd())
	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newServeCmd())
	return rootCmd
}
