package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/termfolio/internal/logging"
	"github.com/vvka-141/termfolio/pkg/termfolio"
)

type options struct {
	logger termfolio.Logger
	banner bool
	now    func() time.Time
	id     uuid.UUID
}

// Option configures an Editor.
type Option func(*options)

// WithLogger sets the diagnostic logger.
func WithLogger(l termfolio.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithBanner toggles the welcome banner emitted by Start.
func WithBanner(enabled bool) Option {
	return func(o *options) { o.banner = enabled }
}

// WithClock sets the time source for the session start timestamp.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithID sets the session identifier; a random one is used otherwise.
func WithID(id uuid.UUID) Option {
	return func(o *options) { o.id = id }
}

func newOptions(opts []Option) options {
	o := options{
		logger: logging.NewNullLogger(),
		banner: true,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}
	return o
}
