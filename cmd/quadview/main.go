package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quadview/internal/config"
	"quadview/internal/draw"
	"quadview/internal/export"
	"quadview/internal/geom"
	"quadview/internal/render"
	"quadview/internal/tui"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "TOML config file")
		shape   = flag.String("shape", "", "shape to draw (square, rectangle, rhombus, parallelogram, trapezium, kite)")
		out     = flag.String("export", "", "write the shape to this file instead of starting the TUI (.png, .svg, .geojson, .wkt, .csv)")
		labels  = flag.String("labels", "", "label style: converted or raw")
		angles  = flag.String("angles", "", "angle labels: illustrative or derived")
		trace   = flag.Bool("trace", false, "print the draw calls for the shape and exit")
		debug   = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	headless := *out != "" || *trace
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}

	var logw io.Writer = os.Stderr
	if !headless {
		// stderr belongs to the TUI
		logw = io.Discard
		if *debug {
			f, err := tea.LogToFile("quadview.log", "quadview")
			if err != nil {
				fmt.Fprintln(os.Stderr, "log file:", err)
				os.Exit(1)
			}
			defer f.Close()
			logw = f
		}
	}
	logger := slog.New(slog.NewTextHandler(logw, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}
	if *labels != "" {
		cfg.Labels = *labels
	}
	if *angles != "" {
		cfg.Angles = *angles
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid options", "err", err)
		os.Exit(1)
	}
	logger.Debug("config", "path", *cfgPath, "labels", cfg.Labels, "angles", cfg.Angles, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))

	name := *shape
	if name == "" && flag.NArg() > 0 {
		name = flag.Arg(0)
	}

	if headless {
		if err := runHeadless(logger, cfg, name, *out, *trace); err != nil {
			logger.Error("quadview", "err", err)
			os.Exit(1)
		}
		return
	}

	var m tea.Model
	if name != "" {
		m = tui.NewWithShape(cfg, logger, name)
	} else {
		m = tui.New(cfg, logger)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logger.Error("tui", "err", err)
		os.Exit(1)
	}
}

func runHeadless(logger *slog.Logger, cfg config.Config, name, out string, trace bool) error {
	if name == "" {
		return fmt.Errorf("-shape is required with -export or -trace")
	}
	kind, ok := geom.ParseKind(name)
	if trace {
		rec := draw.NewRecorder(float64(cfg.Width), float64(cfg.Height))
		render.New(cfg.RenderOptions()).Render(name, rec)
		if _, err := rec.WriteTo(os.Stdout); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
		logger.Debug("traced", "shape", name, "ops", len(rec.Ops()))
	}
	if out == "" {
		return nil
	}
	if !ok {
		return fmt.Errorf("unknown shape %q", name)
	}
	if !export.Supported(out) {
		return fmt.Errorf("unsupported export file %q (want one of %v)", out, export.Formats)
	}
	if err := export.Write(out, kind, cfg); err != nil {
		return err
	}
	logger.Info("exported", "shape", kind, "file", out)
	return nil
}
