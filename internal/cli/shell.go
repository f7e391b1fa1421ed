package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vvka-141/termfolio/internal/commands"
	"github.com/vvka-141/termfolio/internal/config"
	"github.com/vvka-141/termfolio/internal/content"
	"github.com/vvka-141/termfolio/internal/files/filesystem"
	"github.com/vvka-141/termfolio/internal/files/scanner"
	"github.com/vvka-141/termfolio/internal/logging"
	"github.com/vvka-141/termfolio/internal/session"
	"github.com/vvka-141/termfolio/internal/sink"
	"github.com/vvka-141/termfolio/internal/tui"
	"github.com/vvka-141/termfolio/pkg/termfolio"
)

// loadTree reads the configured content directory, or the bundled documents
// when none is set.
func loadTree(cfg *config.Config) (*filesystem.Tree, error) {
	if cfg.ContentDir != "" {
		info, err := os.Stat(cfg.ContentDir)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s is not a directory", termfolio.ErrContentLoad, cfg.ContentDir)
		}
		return scanner.NewOSScanner(cfg.ContentDir, cfg.Extensions).Load()
	}

	docs, err := content.FS()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", termfolio.ErrContentLoad, err)
	}
	return scanner.NewScanner(docs, cfg.Extensions).Load()
}

// newLogger picks where diagnostics go. Interactive sessions own stderr, so
// they log only to a file.
func newLogger(cfg *config.Config, verbose, interactive bool, id uuid.UUID) (termfolio.Logger, func(), error) {
	if cfg.LogFile != "" {
		zl, err := logging.NewFileLogger(cfg.LogFile, verbose)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", termfolio.ErrInvalidConfig, err)
		}
		return zl.With("session", id.String()), func() { _ = zl.Sync() }, nil
	}
	if interactive {
		return logging.NewNullLogger(), func() {}, nil
	}
	return logging.NewConsoleLogger(verbose), func() {}, nil
}

// shell bundles everything one run needs.
type shell struct {
	cfg      *config.Config
	tree     *filesystem.Tree
	registry *commands.Registry
	logger   termfolio.Logger
	id       uuid.UUID
	close    func()
}

func newShell(cmd *cobra.Command, interactive bool) (*shell, error) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	logger, closeLog, err := newLogger(cfg, getVerboseFlag(cmd), interactive, id)
	if err != nil {
		return nil, err
	}

	tree, err := loadTree(cfg)
	if err != nil {
		closeLog()
		return nil, err
	}
	logger.Verbose("loaded %d documents", tree.FileCount())

	reg := commands.New(tree,
		commands.WithHost(cfg.Host),
		commands.WithLogger(logger),
	)

	return &shell{cfg: cfg, tree: tree, registry: reg, logger: logger, id: id, close: closeLog}, nil
}

func (s *shell) editor(out termfolio.Sink, banner bool) *session.Editor {
	return session.New(s.registry, out,
		session.WithID(s.id),
		session.WithLogger(s.logger),
		session.WithBanner(banner),
	)
}

// runScripted feeds lines from in to a fresh editor, printing plain text.
func (s *shell) runScripted(ctx context.Context, in io.Reader, out io.Writer, banner bool) error {
	w := sink.NewWriter(out, tui.Plain)
	ed := s.editor(w, banner)
	ed.Start()

	failed, err := tui.RunScript(ctx, in, ed)
	if err != nil {
		return err
	}
	if err := w.Err(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of the submitted commands failed", termfolio.ErrCommandFailed, failed)
	}
	return nil
}

func runShell(cmd *cobra.Command, args []string) error {
	interactive := tui.IsInteractive()

	s, err := newShell(cmd, interactive)
	if err != nil {
		return err
	}
	defer s.close()

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !interactive {
		// Piped sessions print a transcript; a failed command is not fatal.
		err := s.runScripted(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), s.cfg.BannerEnabled())
		if err != nil && !isCommandFailure(err) {
			return err
		}
		return nil
	}

	screen := tui.NewScreen(false)
	return tui.Run(ctx, s.editor(screen, s.cfg.BannerEnabled()), screen)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
