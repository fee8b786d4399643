package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/3-lines-studio/prerender/example/app"
	"github.com/3-lines-studio/prerender/internal/adapters/cli"
	"github.com/3-lines-studio/prerender/internal/adapters/fs"
	"github.com/3-lines-studio/prerender/internal/adapters/render"
	"github.com/3-lines-studio/prerender/internal/adapters/static"
	"github.com/3-lines-studio/prerender/internal/config"
	"github.com/3-lines-studio/prerender/internal/core"
	"github.com/3-lines-studio/prerender/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], cli.NewOutput())
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, output *cli.Output) int {
	flags := flag.NewFlagSet("prerender", flag.ContinueOnError)
	flags.SetOutput(output.ErrWriter())

	target := flags.String("target", "app", "built-in build target ("+strings.Join(config.TargetNames(), ", ")+")")
	configPath := flags.String("config", "", "YAML build configuration (overrides -target)")
	origin := flags.String("origin", "", "render pages from a running server instead of the bundled app")
	outDir := flags.String("out", "", "output directory (overrides the adapter pages dir)")
	timeout := flags.Duration("timeout", 30*time.Second, "per-page timeout when rendering from -origin")
	verbose := flags.Bool("v", false, "verbose logging")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(output.ErrWriter(), &slog.HandlerOptions{Level: level}))

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(fs.NewOSFileSystem(), *configPath)
	} else {
		cfg, err = config.Target(*target)
	}
	if err != nil {
		output.PrintHeader("Prerender")
		output.PrintError("Failed to load configuration: %v", err)
		return 1
	}
	if *outDir != "" {
		cfg.Kit.Adapter.Pages = *outDir
	}

	var renderer usecase.PageRenderer
	if *origin != "" {
		renderer, err = render.NewOriginRenderer(*origin, *timeout)
		if err != nil {
			output.PrintHeader("Prerender")
			output.PrintError("%v", err)
			return 1
		}
	} else {
		renderer = render.NewHandlerRenderer(app.New(app.SeededStore(), logger))
	}

	adapter, err := static.Resolve(fs.NewOSFileSystem(), cfg.Kit.Adapter, logger)
	if err != nil {
		output.PrintHeader("Prerender")
		output.PrintError("%v", err)
		return 1
	}

	service := usecase.NewPrerenderService(renderer, adapter, output, logger)
	result := service.Prerender(ctx, usecase.PrerenderInput{
		Config:    cfg,
		OutputDir: adapter.PagesDir(),
	})
	if result.Error != nil {
		var fatal *core.FatalPrerenderError
		if errors.As(result.Error, &fatal) {
			output.PrintRaw(fatal.Error())
		} else {
			output.PrintError("%v", result.Error)
		}
		return 1
	}

	output.PrintDone("Prerender completed successfully")
	return 0
}
