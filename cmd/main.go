package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/smasonuk/geodesic"
	"github.com/smasonuk/geodesic/config"
	"github.com/smasonuk/geodesic/render"
	"github.com/smasonuk/geodesic/wsview"
)

func main() {
	configPath := flag.String("config", "settings.json", "settings file")
	mode := flag.String("mode", "window", "window, serve or print")
	cutoff := flag.Float64("cutoff", 0, "override geometry.cutoff")
	flag.Parse()

	if err := run(*configPath, *mode, *cutoff, isFlagSet("cutoff"), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func run(configPath, mode string, cutoff float64, overrideCutoff bool, out io.Writer) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if overrideCutoff {
		settings.Geometry.Cutoff = cutoff
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	result := geodesic.NewPipeline(settings.PipelineOptions()).Build()
	fmt.Fprintln(out, len(result.Selected))

	scene := geodesic.NewScene()
	geodesic.SetupScene(scene)
	result.Export(scene)

	switch mode {
	case "print":
		for _, s := range result.Selected {
			fmt.Fprintf(out, "%-8s %s\n", s.Key, s.Position)
		}
		return nil
	case "serve":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return wsview.NewServer(scene).ListenAndServe(ctx, settings.Server.Addr)
	case "window":
		return render.Run(render.NewWindow(scene, geodesic.NewDefaultCamera(), windowOptions(settings.Display)))
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

// windowOptions assumes d has been validated.
func windowOptions(d config.DisplaySettings) render.Options {
	background, _ := config.ParseColor(d.Background)
	ground, _ := config.ParseColor(d.Ground)
	return render.Options{
		Width:      d.Width,
		Height:     d.Height,
		Title:      d.Title,
		MarkerSize: d.MarkerSize,
		Background: background,
		Ground:     ground,
	}
}
