package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/objwire/internal/app"
	"github.com/philipparndt/objwire/version"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	verbose      bool
	materialFile string
	materialName string
)

var rootCmd = &cobra.Command{
	Use:   "objwire [file]",
	Short: "Wavefront OBJ and STL viewer with solid and outline rendering",
	Long: `objwire loads the vertices and faces of a Wavefront OBJ (or STL) file and
draws the mesh twice per frame: filled with its material color, then outlined
in black. The model can be rotated with the arrow keys or WASD.`,
	Version: version.GetVersion(),
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		runView(cmd, args)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "TOML file with window, camera and rotation settings")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log skipped lines and other debug output")
	flags.StringVar(&materialFile, "mtl", "", "Material file (defaults to the mtllib of the OBJ file)")
	flags.StringVar(&materialName, "material", "", "Material block providing the base color")

	addViewFlags(rootCmd)
	addWatchFlag(rootCmd)
}

// loadOptions reads --config if given and applies the global overrides
func loadOptions(cmd *cobra.Command) app.Options {
	opts := app.DefaultOptions()
	if configPath != "" {
		var err error
		opts, err = app.LoadOptions(configPath)
		exitOnError("Error reading config", err)
	}

	flags := cmd.Flags()
	if flags.Changed("mtl") {
		opts.MaterialFile = materialFile
	}
	if flags.Changed("material") {
		opts.MaterialName = materialName
	}
	return opts
}

func exitOnError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
