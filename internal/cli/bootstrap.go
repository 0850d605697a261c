package cli

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/ticktock/internal/auth"
	"github.com/sadopc/ticktock/internal/config"
	"github.com/sadopc/ticktock/internal/store"
)

// env is everything a command needs once configuration is loaded.
type env struct {
	cfg   *config.Config
	store *store.Store
	auth  *auth.Manager

	closers []io.Closer
}

func (e *env) Close() error {
	var first error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// bootstrap loads config, routes logging, opens the seeded in-memory
// store and copies the configured preferences into it.
func bootstrap(opts *rootOptions) (*env, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}

	if cfg.Debug {
		f, err := tea.LogToFile(cfg.LogFile, "ticktock")
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		e.closers = append(e.closers, f)
	} else {
		log.SetOutput(io.Discard)
	}
	if cfg.File != "" {
		log.Printf("config: loaded %s", cfg.File)
	}

	s, err := store.NewMemory()
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.closers = append(e.closers, s)
	e.store = s

	for k, v := range cfg.Settings() {
		if err := s.SetSetting(k, v); err != nil {
			e.Close()
			return nil, err
		}
	}

	e.auth = auth.NewManager(s)
	return e, nil
}

// signIn authenticates a non-interactive command.
func (e *env) signIn(c credentials) (auth.Session, error) {
	sess, err := e.auth.Login(c.email, c.password, false)
	if err != nil {
		return auth.Session{}, fmt.Errorf("sign in: %w", err)
	}
	return sess, nil
}
