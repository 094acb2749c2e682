package main

import (
	"fmt"
	"strings"

	"github.com/Hrithik0112/mini-manim/internal/easing"
	"github.com/Hrithik0112/mini-manim/internal/scene"
	"github.com/spf13/cobra"
)

func newScenesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List built-in scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scene.DefaultRegistry().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export NAME [file.yaml]",
		Short: "Write a built-in scene as a YAML file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := scene.DefaultRegistry().Lookup(args[0])
			if err != nil {
				return err
			}
			path := args[0] + ".yaml"
			if len(args) == 2 {
				path = args[1]
			}
			if err := scene.Write(f, path); err != nil {
				return err
			}
			logger.Info("scene written", "name", args[0], "path", path)
			return nil
		},
	})
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Load a scene file and report its length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			if err := sc.Check(); err != nil {
				return err
			}
			if err := sc.Timeline.Arm(); err != nil {
				return err
			}
			tl := sc.Timeline
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d objects, %d blocks, %.3fs, %d frames @ %d fps\n",
				args[0], len(sc.Objects), tl.Len(), tl.TotalDuration(), tl.TotalFrameCount(), tl.FPS())
			return nil
		},
	}
}

func newEasingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "easings",
		Short: "List easing names usable in scene files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(easing.Names(), "\n"))
			return err
		},
	}
}
