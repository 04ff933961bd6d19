// whitted is a command line ray tracer for the built-in scenes. Renders are
// written to output/<scene>/render_<timestamp>.<format>.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var cmdRoot = &cobra.Command{
	Use:          "whitted",
	Short:        "Whitted-style CPU ray tracer",
	SilenceUsage: true,
}

var envFile string

func init() {
	cmdRoot.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional .env file to load")
	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

// renderOptions are the flags of the render command. Zero values fall
// back to the scene or config defaults.
type renderOptions struct {
	Scene      string
	Width      int
	Height     int
	FovDegrees float64
	Workers    int
	MaxDepth   int
	Format     string
	OutputDir  string
	Thumbnail  uint
	Upload     bool
}

var renderOpts renderOptions

var cmdRender = &cobra.Command{
	Use:   "render",
	Short: "Render a scene to an image file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		locations, err := runRender(ctx, cfg, renderOpts)
		if err != nil {
			return err
		}
		for _, loc := range locations {
			fmt.Fprintf(cmd.OutOrStdout(), "Render saved as %s\n", loc)
		}
		return nil
	},
}

func init() {
	f := cmdRender.Flags()
	f.StringVar(&renderOpts.Scene, "scene", "default", "Scene id (see 'whitted scenes')")
	f.IntVar(&renderOpts.Width, "width", 0, "Image width in pixels (0 = scene default)")
	f.IntVar(&renderOpts.Height, "height", 0, "Image height in pixels (0 = scene default)")
	f.Float64Var(&renderOpts.FovDegrees, "fov", 0, "Horizontal field of view in degrees (0 = scene default)")
	f.IntVar(&renderOpts.Workers, "workers", 0, "Render goroutines (0 = RT_WORKERS or one per CPU)")
	f.IntVar(&renderOpts.MaxDepth, "depth", 0, "Maximum reflection/refraction depth (0 = RT_MAX_DEPTH or 5)")
	f.StringVar(&renderOpts.Format, "format", "png", "Output format: ppm or png")
	f.StringVar(&renderOpts.OutputDir, "output", "", "Output directory (default RT_OUTPUT_DIR or ./output)")
	f.UintVar(&renderOpts.Thumbnail, "thumbnail", 0, "Also write a PNG thumbnail with this maximum side length")
	f.BoolVar(&renderOpts.Upload, "upload", false, "Also upload the results to the configured S3 bucket")
}

var cmdScenes = &cobra.Command{
	Use:   "scenes",
	Short: "List the built-in scenes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listScenes(cmd.OutOrStdout())
	},
}

func listScenes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.ID, info.Name, info.Description)
	}
	return tw.Flush()
}

// runRender renders one scene and stores the image (and optional
// thumbnail) locally and, when requested, in S3. It returns every location
// written.
func runRender(ctx context.Context, cfg config.Config, opts renderOptions) ([]string, error) {
	format, err := output.ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	if opts.Width < 0 || opts.Height < 0 || opts.FovDegrees < 0 || opts.Workers < 0 || opts.MaxDepth < 0 {
		return nil, xerrors.New("width, height, fov, workers and depth must not be negative")
	}

	sc, err := scene.Load(opts.Scene, scene.CameraConfig{
		Width:       opts.Width,
		Height:      opts.Height,
		FieldOfView: opts.FovDegrees * math.Pi / 180,
	})
	if err != nil {
		return nil, err
	}
	cam, err := sc.Camera()
	if err != nil {
		return nil, xerrors.Errorf("while creating camera: %w", err)
	}

	rcfg := renderer.Config{Workers: cfg.Workers, MaxDepth: cfg.MaxDepth}
	if opts.Workers > 0 {
		rcfg.Workers = opts.Workers
	}
	if opts.MaxDepth > 0 {
		rcfg.MaxDepth = opts.MaxDepth
	}

	glog.Infof("Rendering scene %q", opts.Scene)
	cv, stats, err := renderer.NewRenderer(cam, rcfg).Render(ctx, sc.World)
	if err != nil {
		return nil, err
	}
	glog.Infof("Render completed in %v, average luminance %.3f", stats.Duration, renderer.AverageLuminance(cv))

	type artifact struct {
		key         string
		data        []byte
		contentType string
	}

	now := time.Now()
	data, err := output.Encode(cv, format)
	if err != nil {
		return nil, err
	}
	artifacts := []artifact{{output.Key(opts.Scene, now, "", string(format)), data, format.ContentType()}}

	if opts.Thumbnail > 0 {
		thumb, err := output.EncodeImage(cv.Thumbnail(opts.Thumbnail))
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact{output.Key(opts.Scene, now, "_thumb", "png"), thumb, output.FormatPNG.ContentType()})
	}

	outputDir := cfg.OutputDir
	if opts.OutputDir != "" {
		outputDir = opts.OutputDir
	}
	sinks := []output.Sink{output.NewFileSink(outputDir)}
	if opts.Upload {
		if !cfg.UploadsEnabled() {
			return nil, xerrors.New("--upload needs S3_BUCKET, S3_ACCESS_KEY and S3_SECRET_KEY")
		}
		s3Sink, err := output.NewS3Sink(cfg)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s3Sink)
	}

	var locations []string
	for _, sink := range sinks {
		for _, a := range artifacts {
			loc, err := sink.Save(ctx, a.key, a.data, a.contentType)
			if err != nil {
				return locations, err
			}
			locations = append(locations, loc)
		}
	}
	return locations, nil
}

func main() {
	glog.CopyStandardLogTo("INFO")
	// glog complains about logging before flag.Parse; cobra parses the
	// real flags through pflag
	flag.CommandLine.Parse([]string{})

	cmdRoot.AddCommand(cmdRender, cmdScenes)

	err := cmdRoot.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
