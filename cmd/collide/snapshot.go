package main

import (
	"fmt"
	"os"

	"github.com/cbodonnell/collide/pkg/log"
	"github.com/cbodonnell/collide/pkg/messages"
	"github.com/cbodonnell/collide/pkg/scene"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "encode <scene.yaml>",
		Short: "Write a scene as a compressed binary snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			data, err := messages.SerializeScene(s)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write snapshot: %v", err)
			}
			log.Info("Wrote %d bytes to %s", len(data), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Snapshot file to write")
	cmd.MarkFlagRequired("output")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <snapshot>",
		Short: "Print a binary snapshot as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read snapshot: %v", err)
			}
			s, err := messages.DeserializeScene(data)
			if err != nil {
				return err
			}
			out, err := s.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
