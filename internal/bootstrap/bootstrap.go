// Package bootstrap establishes the process-wide system client used by the
// public endpoints.
package bootstrap

import (
	"context"
	"os"
	"sync"

	"instagram-rest/internal/instagram"
	"instagram-rest/internal/logger"
)

// UnavailableMessage is returned by public endpoints while no system client
// is available.
const UnavailableMessage = "System client not available. Set INSTAGRAM_USERNAME and INSTAGRAM_PASSWORD environment variables."

// State describes the system client's lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateActive
	StateAbsent
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateAbsent:
		return "absent"
	default:
		return "uninitialized"
	}
}

// Bootstrapper runs the startup login sequence once and holds the resulting
// system client. Handlers query it at request time.
type Bootstrapper struct {
	factory     instagram.Factory
	username    string
	password    string
	sessionFile string

	mu     sync.RWMutex
	state  State
	client instagram.Client
}

// New creates a bootstrapper. Run must be called before the client is usable.
func New(factory instagram.Factory, username, password, sessionFile string) *Bootstrapper {
	return &Bootstrapper{
		factory:     factory,
		username:    username,
		password:    password,
		sessionFile: sessionFile,
		state:       StateUninitialized,
	}
}

// Run executes the bootstrap sequence: load persisted session state if a
// session file exists, fall back to a fresh login, persist on success. It
// performs no retries beyond the single fallback.
func (b *Bootstrapper) Run(ctx context.Context) {
	if b.username == "" || b.password == "" {
		logger.Warn("INSTAGRAM_USERNAME or INSTAGRAM_PASSWORD not set, public endpoints will be limited", nil)
		b.set(StateAbsent, nil)
		return
	}

	logger.Info("initializing system client for public endpoints", nil)

	if _, err := os.Stat(b.sessionFile); err == nil {
		client := b.factory()
		logger.Info("loading existing session from file", map[string]any{
			"file": b.sessionFile,
		})
		err := client.LoadSettings(b.sessionFile)
		if err == nil {
			err = client.Login(ctx, b.username, b.password)
		}
		if err == nil {
			logger.Info("system client logged in using saved session", map[string]any{
				"username": b.username,
			})
			b.set(StateActive, client)
			return
		}
		logger.Warn("failed to use saved session, attempting fresh login", map[string]any{
			"error": err.Error(),
		})
	} else {
		logger.Info("no saved session found, performing fresh login", nil)
	}

	b.freshLogin(ctx)
}

func (b *Bootstrapper) freshLogin(ctx context.Context) {
	client := b.factory()
	if err := client.Login(ctx, b.username, b.password); err != nil {
		logger.Error("failed to login system client", map[string]any{
			"error": err.Error(),
		})
		logger.Warn("public endpoints will not be available without system client", nil)
		b.set(StateAbsent, nil)
		return
	}

	if err := client.DumpSettings(b.sessionFile); err != nil {
		// The handle is authenticated and usable even if persistence failed.
		logger.Warn("failed to persist session file", map[string]any{
			"file":  b.sessionFile,
			"error": err.Error(),
		})
	}

	logger.Info("system client logged in and session saved", map[string]any{
		"username": b.username,
	})
	b.set(StateActive, client)
}

func (b *Bootstrapper) set(state State, client instagram.Client) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = state
	b.client = client
}

// State returns the current bootstrap state.
func (b *Bootstrapper) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Client returns the system client if the bootstrapper is Active.
func (b *Bootstrapper) Client() (instagram.Client, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.client, b.state == StateActive
}

// Active reports whether a system client is available.
func (b *Bootstrapper) Active() bool {
	return b.State() == StateActive
}
