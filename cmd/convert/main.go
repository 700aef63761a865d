package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"

	"github.com/juruen/vecnote/log"
	"github.com/juruen/vecnote/pdfgen"
	"github.com/juruen/vecnote/raster"
	"github.com/juruen/vecnote/render"
	"github.com/juruen/vecnote/svg"
	"github.com/juruen/vecnote/watch"
)

// Config holds the conversion options, optionally loaded from a YAML
// file via -c.
type Config struct {
	Format         string  `yaml:"format"`
	RasterWidth    int     `yaml:"raster_width"`
	ThumbnailWidth int     `yaml:"thumbnail_width"`
	PdfScale       float64 `yaml:"pdf_scale"`
}

func defaultConfig() Config {
	return Config{Format: "svg", RasterWidth: 1200}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("can't parse config %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = "svg"
	}
	if cfg.RasterWidth <= 0 {
		cfg.RasterWidth = 1200
	}
	return cfg, nil
}

func main() {
	outputName := flag.String("o", "", "output file name (single input only)")
	format := flag.String("f", "", "output format: svg, png or pdf")
	configName := flag.String("c", "", "YAML options file")
	watchMode := flag.Bool("w", false, "re-convert whenever the input changes")
	flag.Parse()

	cfg, err := loadConfig(*configName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.Format = *format
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: convert [-o output] [-f svg|png|pdf] [-c config.yaml] [-w] file.vn ...")
		os.Exit(1)
	}
	if *outputName != "" && len(inputs) > 1 {
		fmt.Fprintln(os.Stderr, "-o only applies to a single input")
		os.Exit(1)
	}

	if *watchMode {
		if len(inputs) != 1 {
			fmt.Fprintln(os.Stderr, "-w only applies to a single input")
			os.Exit(1)
		}
		err = watch.File(context.Background(), inputs[0], func(path string) {
			if cerr := convert(path, *outputName, cfg); cerr != nil {
				log.Error.Println(cerr)
			} else {
				log.Info.Println("converted", path)
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// Renders of different sources are independent, so multiple
	// inputs convert concurrently.
	var g errgroup.Group
	for _, input := range inputs {
		input := input
		g.Go(func() error {
			return convert(input, *outputName, cfg)
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convert(inputName, outputName string, cfg Config) error {
	if inputName == "" {
		return errors.New("missing input file")
	}
	if outputName == "" {
		nameOnly := strings.TrimSuffix(inputName, filepath.Ext(inputName))
		outputName = nameOnly + "." + cfg.Format
	}

	s, err := render.RenderFile(inputName)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "svg":
		f, err := os.Create(outputName)
		if err != nil {
			return fmt.Errorf("can't create outputfile %w", err)
		}
		defer f.Close()
		return svg.Write(f, s)
	case "png":
		img := raster.Draw(s, cfg.RasterWidth)
		f, err := os.Create(outputName)
		if err != nil {
			return fmt.Errorf("can't create outputfile %w", err)
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return err
		}
		if cfg.ThumbnailWidth > 0 {
			return writeThumbnail(outputName, img, cfg.ThumbnailWidth)
		}
		return nil
	case "pdf":
		gen := pdfgen.NewGenerator(s, pdfgen.Options{Scale: cfg.PdfScale})
		return gen.WriteToFile(outputName)
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
}

func writeThumbnail(outputName string, img image.Image, width int) error {
	nameOnly := strings.TrimSuffix(outputName, filepath.Ext(outputName))
	f, err := os.Create(nameOnly + ".thumb.png")
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, raster.Thumbnail(img, width))
}
