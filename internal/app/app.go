package app

import (
	"os"
	"sync"

	"github.com/dshills/midview/internal/config"
	"github.com/dshills/midview/internal/input"
	"github.com/dshills/midview/internal/renderer"
	"github.com/dshills/midview/internal/renderer/backend"
	"github.com/dshills/midview/internal/renderer/viewport"
	"github.com/dshills/midview/internal/source"
)

// Options configures the application.
type Options struct {
	// Path is the input file to page (required).
	Path string
	// ConfigPath overrides the default config file location.
	ConfigPath string
	// Debug enables debug logging (overrides the configured level).
	Debug bool
	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
	// LogFile overrides the configured log file when non-empty.
	LogFile string
}

// Application owns the pager's long-lived handles: the line source, the
// terminal backend, and the scroll state. It is driven synchronously by
// Run; both the stream cursor and the scroll state are owned exclusively
// by that loop. Only Shutdown may be called from another goroutine.
type Application struct {
	cfg    *config.Config
	logger *Logger

	path   string
	src    *source.Source
	term   backend.Backend
	view   *renderer.Renderer
	vp     *viewport.Viewport
	mapper *input.Mapper

	logFile      *os.File
	shutdownOnce sync.Once
}

// New loads configuration, opens the input file, and prepares the
// components that need no terminal. The terminal backend is attached
// separately with SetBackend so tests can substitute one.
func New(opts Options) (*Application, error) {
	if opts.Path == "" {
		return nil, ErrNoInput
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	app := &Application{cfg: cfg, path: opts.Path}
	if err := app.initLogger(); err != nil {
		return nil, err
	}

	src, err := source.Open(opts.Path)
	if err != nil {
		app.closeLog()
		return nil, NewOperationError("open", opts.Path, err)
	}
	app.src = src
	app.mapper = input.NewMapper(bindings(cfg.Keys))

	app.logger.WithComponent("app").Debug("initialized for %s", opts.Path)
	return app, nil
}

// loadConfig resolves the config file and applies option overrides.
func loadConfig(opts Options) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	return cfg, nil
}

// bindings converts the configured key strings into input bindings.
func bindings(keys config.KeyConfig) input.Bindings {
	return input.Bindings{
		Quit:     []rune(keys.Quit),
		Down:     []rune(keys.Down),
		Up:       []rune(keys.Up),
		PageDown: []rune(keys.PageDown),
		PageUp:   []rune(keys.PageUp),
		Top:      []rune(keys.Top),
		Bottom:   []rune(keys.Bottom),
	}
}

// initLogger opens the log file if one is configured. Without a file the
// logger discards everything.
func (app *Application) initLogger() error {
	if app.cfg.LogFile == "" {
		app.logger = NullLogger
		return nil
	}

	f, err := os.OpenFile(app.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return NewOperationError("open log", app.cfg.LogFile, err)
	}
	app.logFile = f
	app.logger = NewLogger(f, ParseLogLevel(app.cfg.LogLevel))
	return nil
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}

// SetBackend attaches the terminal backend and wires the renderer to it.
func (app *Application) SetBackend(b backend.Backend) {
	app.term = b
	app.view = renderer.New(b, app.src)
}

// Run initializes the terminal, performs the initial redraw, and drives
// the synchronous event loop until quit or failure. It returns ErrQuit
// on a clean quit; main translates that into exit code 0.
func (app *Application) Run() error {
	if app.term == nil {
		return ErrNoBackend
	}

	if err := app.term.Init(); err != nil {
		return NewOperationError("init terminal", "", err)
	}
	app.term.HideCursor()

	w, h := app.term.Size()
	app.vp = viewport.New(w, h)
	app.logger.WithComponent("app").Debug("terminal ready at %dx%d", w, h)

	// The initial view must be visible before the first event is read.
	if err := app.view.Redraw(app.vp); err != nil {
		return err
	}

	for {
		ev := app.term.PollEvent()
		if ev.Type == backend.EventClosed {
			// The backend was finalized under us (shutdown path).
			return ErrQuit
		}
		if err := app.handleEvent(ev); err != nil {
			return err
		}
	}
}

// handleEvent applies one event to the scroll state and repaints when a
// recognized transition was taken. Unrecognized events are consumed
// without a redraw.
func (app *Application) handleEvent(ev backend.Event) error {
	action := app.mapper.Map(ev)

	switch action {
	case input.ActionQuit:
		return ErrQuit

	case input.ActionScrollDown:
		app.vp.ScrollDown(app.cfg.ScrollStep)

	case input.ActionScrollUp:
		app.vp.ScrollUp(app.cfg.ScrollStep)

	case input.ActionPageDown:
		app.vp.ScrollDown(app.pageStep())

	case input.ActionPageUp:
		app.vp.ScrollUp(app.pageStep())

	case input.ActionTop:
		app.vp.ScrollTo(0)

	case input.ActionBottom:
		if err := app.scrollToBottom(); err != nil {
			return err
		}

	case input.ActionResize:
		if !app.vp.Resize(ev.Width, ev.Height) {
			return nil
		}
		app.logger.WithComponent("app").Debug("resized to %dx%d", ev.Width, ev.Height)

	default:
		return nil
	}

	return app.view.Redraw(app.vp)
}

// pageStep is the page scroll distance: one screen minus a line of
// overlap, never less than one line.
func (app *Application) pageStep() int {
	_, h := app.vp.Size()
	if h <= 1 {
		return 1
	}
	return h - 1
}

// scrollToBottom positions the window so the last lines of the file fill
// the screen, or at the top when the file is shorter than the screen.
func (app *Application) scrollToBottom() error {
	total, err := app.src.Count()
	if err != nil {
		return NewOperationError("count", app.path, err)
	}

	_, h := app.vp.Size()
	app.vp.ScrollTo(total - h)
	return nil
}

// Shutdown restores the terminal and releases the input file. It is
// idempotent and safe to call from the signal goroutine; the terminal is
// restored on every exit path, including error paths, so the session
// never leaves the terminal in raw or alternate-screen mode.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		if app.term != nil {
			app.term.Fini()
		}
		if app.src != nil {
			if err := app.src.Close(); err != nil {
				app.logger.WithComponent("app").Error("close input: %v", err)
			}
		}
		app.logger.WithComponent("app").Debug("shutdown complete")
		app.closeLog()
	})
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}
