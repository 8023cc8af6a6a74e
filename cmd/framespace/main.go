// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command framespace converts points and rotations between the named
// reference frames of a scene file, and places mesh vertices in them.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"

	"cogentcore.org/framespace/base/errors"
	"cogentcore.org/framespace/base/logx"
	"github.com/spf13/cobra"
)

func main() {
	c, err := LoadConfig(ConfigPaths()...)
	if err != nil {
		logx.SetDefaultLogger()
		slog.Error(err.Error())
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = newRootCmd(c).ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// newRootCmd returns the root command, with flag defaults from c.
func newRootCmd(c *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "framespace",
		Short:         "Convert points and rotations between reference frames",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.VeryVerbose || c.Verbose || c.Quiet {
				logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
			}
			logx.SetDefaultLoggerOutput(cmd.ErrOrStderr())
			if !slices.Contains(Formats, c.Format) {
				return fmt.Errorf("unknown format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
			}
			slog.Debug("config", "scene", c.Scene, "format", c.Format, "tolerance", c.Tolerance)
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&c.Scene, "scene", "s", c.Scene, "scene file with the named frames (.toml, .yaml)")
	pf.StringVarP(&c.Format, "format", "f", c.Format, "output format: "+strings.Join(Formats, ", "))
	pf.Float32Var(&c.Tolerance, "tolerance", c.Tolerance, "tolerance for validating basis vectors")
	pf.BoolVarP(&c.Verbose, "verbose", "v", false, "show info messages")
	pf.BoolVar(&c.VeryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&c.Quiet, "quiet", "q", false, "only show errors")

	var from, to string
	addFromTo := func(cmd *cobra.Command) *cobra.Command {
		cmd.Flags().StringVar(&from, "from", "", "name of the source frame")
		cmd.Flags().StringVar(&to, "to", "", "name of the target frame")
		errors.Log(cmd.MarkFlagRequired("from"))
		errors.Log(cmd.MarkFlagRequired("to"))
		return cmd
	}
	root.AddCommand(addFromTo(&cobra.Command{
		Use:   "point X Y Z",
		Short: "Convert a world point from one frame to another",
		Long:  "Convert a world point from one frame to another.\nUse -- before negative values.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Point(c, cmd.OutOrStdout(), args, from, to)
		},
	}))
	root.AddCommand(addFromTo(&cobra.Command{
		Use:   "rotation PITCH YAW ROLL",
		Short: "Convert a world rotation in degrees from one frame to another",
		Long:  "Convert a world rotation in degrees from one frame to another.\nUse -- before negative values.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Rotation(c, cmd.OutOrStdout(), args, from, to)
		},
	}))

	var box string
	var extent []float32
	inbox := &cobra.Command{
		Use:   "inbox X Y Z",
		Short: "Report whether a point is inside a box placed on a frame",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return InBox(c, cmd.OutOrStdout(), args, box, extent)
		},
	}
	inbox.Flags().StringVar(&box, "box", "", "name of the frame the box is centered on")
	inbox.Flags().Float32SliceVar(&extent, "extent", nil, "half extents of the box along forward, right and up")
	errors.Log(inbox.MarkFlagRequired("box"))
	errors.Log(inbox.MarkFlagRequired("extent"))
	root.AddCommand(inbox)

	var mesh, frameName string
	closest := &cobra.Command{
		Use:   "closest X Y Z",
		Short: "Find the mesh vertex closest to a point",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Closest(c, cmd.OutOrStdout(), args, mesh, frameName)
		},
	}
	closest.Flags().StringVar(&mesh, "mesh", "", "Wavefront OBJ mesh file")
	closest.Flags().StringVar(&frameName, "frame", "", "frame to place the mesh in (default: none)")
	errors.Log(closest.MarkFlagRequired("mesh"))
	root.AddCommand(closest)

	meshCmd := &cobra.Command{
		Use:   "mesh FILE.obj",
		Short: "List mesh vertices and bounds, placed in a frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Mesh(c, cmd.OutOrStdout(), args[0], frameName)
		},
	}
	meshCmd.Flags().StringVar(&frameName, "frame", "", "frame to place the mesh in (default: none)")
	root.AddCommand(meshCmd)

	var out string
	frames := &cobra.Command{
		Use:   "frames",
		Short: "List the frames in the scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Frames(c, cmd.OutOrStdout(), out)
		},
	}
	frames.Flags().StringVarP(&out, "output", "o", "", "also save the scene to this .toml or .yaml file")
	root.AddCommand(frames)

	root.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Watch the scene file and log each reload until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Watch(cmd.Context(), c)
		},
	})
	return root
}
