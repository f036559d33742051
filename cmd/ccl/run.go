package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	// Register decoders for the formats the tool accepts; png comes in
	// through the named import below.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ccl/imagegrid"
	"github.com/katalvlaran/ccl/label"
)

var (
	flagConnectivity int
	flagCompact      bool
	flagWorkers      int
	flagThreshold    uint8
	flagOut          string
	flagProfile      string
	flagVerbose      bool
)

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagVerbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	switch flagProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q (want cpu or mem)", flagProfile)
	}

	conn, err := parseConnectivity(flagConnectivity)
	if err != nil {
		return err
	}

	path := args[0]
	img, format, err := decodeImage(path)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	sugar.Debugw("image decoded",
		"path", path,
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy(),
	)

	grid, err := imagegrid.Binarize(img, imagegrid.WithWhiteThreshold(flagThreshold))
	if err != nil {
		return fmt.Errorf("binarize %s: %w", path, err)
	}

	opts := []label.Option{
		label.WithConnectivity(conn),
		label.WithWorkers(flagWorkers),
	}
	if flagCompact {
		opts = append(opts, label.WithCompaction())
	}

	start := time.Now()
	labels, count, err := label.Label(grid, opts...)
	if err != nil {
		return fmt.Errorf("label %s: %w", path, err)
	}
	sugar.Infow("labelling complete",
		"path", path,
		"components", count,
		"connectivity", conn.String(),
		"elapsed", time.Since(start),
	)

	if flagOut != "" {
		if err := writePNG(flagOut, labels); err != nil {
			return fmt.Errorf("write %s: %w", flagOut, err)
		}
		sugar.Infow("colorized label image written", "out", flagOut)

		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), imagegrid.Render(labels))
	fmt.Fprintf(cmd.OutOrStdout(), "components: %d\n", count)

	return nil
}

// newLogger builds a production zap logger, or a development one when
// verbose output was requested.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// parseConnectivity maps the CLI's 4/8 notation to label's enum.
func parseConnectivity(n int) (label.Connectivity, error) {
	switch n {
	case 4:
		return label.Conn4, nil
	case 8:
		return label.Conn8, nil
	default:
		return 0, fmt.Errorf("unsupported connectivity %d (want 4 or 8)", n)
	}
}

// decodeImage opens and decodes path with any registered image format.
func decodeImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	return image.Decode(f)
}

// writePNG colorizes labels and writes the result as a PNG file.
func writePNG(path string, labels [][]int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(f, imagegrid.Colorize(labels)); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
