package main

import (
	"context"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/willbeason/fractal-gallery/pkg/render"
	"log/slog"
	"os"
)

const (
	outDirFlag  = "out-dir"
	onlyFlag    = "only"
	verboseFlag = "verbose"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fractals",
		Short: "Render the fractal gallery as PNG files",
		Long: `Render three images: the Mandelbrot set with a checkerboard interior,
the Mandelbrot set over a radial gradient, and a symmetric fractal tree
over alternating rainbow rings.`,
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	addFlags(cmd.Flags())

	return cmd
}

func addFlags(flags *pflag.FlagSet) {
	flags.String(outDirFlag, ".", "directory to write the images to")
	flags.StringSlice(onlyFlag, nil, "render only the named images (checkerboard, radial, tree)")
	flags.BoolP(verboseFlag, "v", false, "log debug messages")
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	flags := cmd.Flags()
	outDir, err := flags.GetString(outDirFlag)
	if err != nil {
		return err
	}
	only, err := flags.GetStringSlice(onlyFlag)
	if err != nil {
		return err
	}
	verbose, err := flags.GetBool(verboseFlag)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	images, err := render.Select(render.Gallery(), only)
	if err != nil {
		return err
	}

	cfg := render.DefaultConfig()
	cfg.Logger = logger
	logger.Debug("configured", "images", render.Names(images), "out-dir", outDir,
		"width", cfg.Width, "height", cfg.Height, "max-iterations", cfg.MaxIterations)

	return render.Write(cfg, outDir, images)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
