package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"log/slog"
	"os"

	"quadview/internal/config"
	"quadview/internal/geom"
	"quadview/internal/render"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	// viewport: zoom factor and pan in canvas units
	zoom    float64
	offsetX float64
	offsetY float64

	status string

	// Shape list
	l list.Model

	// Current shape. name is kept verbatim so unknown names still render
	// as an empty canvas.
	name  string
	kind  geom.Kind
	known bool

	cfg      config.Config
	renderer *render.Renderer

	// prompt mode
	promptMode bool
	ta         textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverVertex int
	hoverX      float64
	hoverY      float64

	// measurement table
	showAttrs bool
	tbl       table.Model

	exportDir string
	log       *slog.Logger
}

func New(cfg config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "quadview ready",
		cfg:         cfg,
		renderer:    render.New(cfg.RenderOptions()),
		hoverVertex: -1,
		log:         logger,
	}
	m.exportDir, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(shapeItems(), d, 0, 0)
	m.l.Title = "Shapes"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Shape name (square, rectangle, rhombus, parallelogram, trapezium, kite). Enter to draw; Esc to cancel."
	m.ta.CharLimit = 64
	m.ta.ShowLineNumbers = false
	m.ta.SetWidth(50)
	m.ta.SetHeight(3)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.setShape(geom.Square.String())
	return m
}

// NewWithShape starts on the named shape.
func NewWithShape(cfg config.Config, logger *slog.Logger, name string) Model {
	m := New(cfg, logger)
	m.setShape(name)
	return m
}

// SetExportDir changes where e writes files.
func (m *Model) SetExportDir(dir string) { m.exportDir = dir }

func (m Model) Init() tea.Cmd { return nil }
