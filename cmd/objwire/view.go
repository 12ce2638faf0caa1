package main

import (
	"github.com/philipparndt/objwire/internal/app"
	"github.com/spf13/cobra"
)

var (
	viewWidth     int
	viewHeight    int
	viewFit       bool
	viewSpin      bool
	viewLineWidth float32
	viewWatch     bool
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open a window showing the mesh",
	Long: `Open a window and draw the mesh with its base color and a black outline.
Right/D and Left/A rotate about the first axis, Up/W and Down/S about the
second. Escape closes the window. With --spin the model turns on its own,
with --watch it is reloaded whenever the file changes.`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	addViewFlags(viewCmd)
	addWatchFlag(viewCmd)
}

func addWatchFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&viewWatch, "watch", "w", false, "Reload when the OBJ or material file changes")
}

func addViewFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&viewWidth, "width", 0, "Window width in pixels")
	flags.IntVar(&viewHeight, "height", 0, "Window height in pixels")
	flags.BoolVar(&viewFit, "fit", false, "Place the camera so the whole mesh is visible")
	flags.BoolVar(&viewSpin, "spin", false, "Rotate continuously instead of following the keyboard")
	flags.Float32Var(&viewLineWidth, "line-width", 0, "Outline width in pixels")
}

func applyViewFlags(cmd *cobra.Command, opts app.Options) app.Options {
	flags := cmd.Flags()
	if flags.Changed("width") {
		opts.Width = viewWidth
	}
	if flags.Changed("height") {
		opts.Height = viewHeight
	}
	if flags.Changed("fit") {
		opts.Fit = viewFit
	}
	if flags.Changed("spin") {
		opts.Interactive = !viewSpin
	}
	if flags.Changed("line-width") {
		opts.LineWidth = viewLineWidth
	}
	return opts
}

func runView(cmd *cobra.Command, args []string) {
	opts := applyViewFlags(cmd, loadOptions(cmd))
	if cmd.Flags().Changed("watch") {
		opts.Watch = viewWatch
	}
	exitOnError("Error", app.Run(args[0], opts))
}
