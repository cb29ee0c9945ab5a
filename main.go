package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/MarkMcCaskey/rebind/internal/config"
	"github.com/MarkMcCaskey/rebind/internal/errmsg"
	"github.com/MarkMcCaskey/rebind/internal/state"
	"github.com/MarkMcCaskey/rebind/internal/stderr"
)

func main() {
	if err := run(); err != nil {
		stderr.WriteOriginal(err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, logFile, err := openLog(cfg.LogFile)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer logFile.Close()

	if err := stderr.Start(func(line string) { logger.Warn("stderr", "line", line) }); err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	}
	defer stderr.Stop()

	var store state.Interface
	if cfg.ShouldPersist() {
		mgr, err := openState(cfg.StateDB)
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpInitialize, err))
		}
		mgr.SetErrorHandler(func(err error) {
			logger.Error(errmsg.FormatWith(errmsg.OpProfileSave, cfg.Profile, err))
		})
		store = mgr
		defer func() {
			if err := mgr.Close(); err != nil {
				logger.Error("closing state", "err", err)
			}
		}()
	}

	m, err := newModel(cfg, store, logger)
	if err != nil {
		return err
	}

	logger.Info("starting", "profile", cfg.Profile, "persist", cfg.ShouldPersist())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func openState(path string) (*state.Manager, error) {
	if path != "" {
		return state.OpenPath(path)
	}
	return state.Open()
}

// openLog writes the debug log to path, or to the XDG state directory
// when path is empty. The terminal belongs to the TUI, so nothing is
// logged to stderr.
func openLog(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		p, err := xdg.StateFile(filepath.Join("rebind", "rebind.log"))
		if err != nil {
			return nil, nil, err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "rebind",
	})
	return logger, f, nil
}
