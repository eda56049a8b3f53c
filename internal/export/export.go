// Package export writes a rendered shape to disk. The file extension picks
// the format.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quadview/internal/config"
	"quadview/internal/draw"
	"quadview/internal/geom"
	"quadview/internal/render"
)

// Formats lists the supported extensions.
var Formats = []string{".png", ".svg", ".geojson", ".wkt", ".csv"}

// Supported reports whether path has an extension Write understands.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range Formats {
		if f == ext {
			return true
		}
	}
	return false
}

// Write renders kind with cfg and stores it at path.
func Write(path string, kind geom.Kind, cfg config.Config) error {
	spec, ok := geom.Default(kind)
	if !ok {
		return fmt.Errorf("export: unknown shape %v", kind)
	}
	r := render.New(cfg.RenderOptions())

	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		s := draw.NewRaster(cfg.Width, cfg.Height, cfg.Background())
		r.RenderKind(kind, s)
		if err := s.EncodePNG(&buf); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	case ".svg":
		s := draw.NewSVG(float64(cfg.Width), float64(cfg.Height), cfg.Background())
		r.RenderKind(kind, s)
		if _, err := s.WriteTo(&buf); err != nil {
			return fmt.Errorf("encode svg: %w", err)
		}
	case ".geojson":
		b, err := geom.MarshalGeoJSON(spec)
		if err != nil {
			return fmt.Errorf("encode geojson: %w", err)
		}
		buf.Write(b)
	case ".wkt":
		buf.WriteString(geom.WKT(spec))
		buf.WriteByte('\n')
	case ".csv":
		if err := geom.WriteCSV(&buf, spec, cfg.UnitScale); err != nil {
			return err
		}
	default:
		return fmt.Errorf("export: unsupported file type %q (want one of %s)", ext, strings.Join(Formats, ", "))
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// All writes every format for kind into dir as <kind><ext> and returns the
// written paths.
func All(dir string, kind geom.Kind, cfg config.Config) ([]string, error) {
	var out []string
	for _, ext := range Formats {
		p := filepath.Join(dir, kind.String()+ext)
		if err := Write(p, kind, cfg); err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, nil
}
