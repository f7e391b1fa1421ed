package commands

import (
	"math/rand"
	"time"

	"github.com/vvka-141/termfolio/internal/files/filesystem"
	"github.com/vvka-141/termfolio/internal/logging"
	"github.com/vvka-141/termfolio/internal/render"
	"github.com/vvka-141/termfolio/pkg/termfolio"
)

type options struct {
	tree     *filesystem.Tree
	renderer termfolio.Renderer
	escaper  termfolio.Escaper
	logger   termfolio.Logger
	now      func() time.Time
	choose   func(n int) int
	host     string
	started  time.Time
}

// Option configures a Registry.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		renderer: render.NewMarkdown(),
		escaper:  render.HTMLEscaper{},
		logger:   logging.NewNullLogger(),
		now:      time.Now,
		choose:   rand.Intn,
		host:     termfolio.DefaultHost,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.started.IsZero() {
		o.started = o.now()
	}
	return o
}

// WithTree sets the filesystem that path commands and completion read.
func WithTree(t *filesystem.Tree) Option {
	return func(o *options) { o.tree = t }
}

// WithRenderer replaces the Markdown renderer used by cat.
func WithRenderer(r termfolio.Renderer) Option {
	return func(o *options) { o.renderer = r }
}

// WithEscaper replaces the HTML escaper.
func WithEscaper(e termfolio.Escaper) Option {
	return func(o *options) { o.escaper = e }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l termfolio.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock sets the time source for date and neofetch.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithChooser sets the random choice used by sudo. choose(n) must return a
// value in [0, n).
func WithChooser(choose func(n int) int) Option {
	return func(o *options) { o.choose = choose }
}

// WithHost sets the host name shown by prompts and neofetch.
func WithHost(host string) Option {
	return func(o *options) {
		if host != "" {
			o.host = host
		}
	}
}

// WithStartTime sets the moment neofetch measures uptime from.
func WithStartTime(t time.Time) Option {
	return func(o *options) { o.started = t }
}
