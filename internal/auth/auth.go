// Package auth checks credentials against the fixed user table and keeps
// the sessions that gate the dashboard.
package auth

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sadopc/ticktock/internal/store"
)

var (
	ErrInvalidEmail       = errors.New("please enter a valid email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no session")
	ErrSessionExpired     = errors.New("session expired")
)

const (
	SessionTTL  = 24 * time.Hour
	RememberTTL = 30 * 24 * time.Hour
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the shape of an address, nothing more.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// Identity is what a successful credential check yields.
type Identity struct {
	ID    int64
	Name  string
	Email string
	Role  string
}

// UserFinder looks a user up by exact email and password.
type UserFinder interface {
	FindUser(email, password string) (*store.User, error)
}

// Authenticate validates the email shape and checks the credentials. A wrong
// email and a wrong password both yield ErrInvalidCredentials.
func Authenticate(users UserFinder, email, password string) (Identity, error) {
	email = strings.TrimSpace(email)
	if err := ValidateEmail(email); err != nil {
		return Identity{}, err
	}
	u, err := users.FindUser(email, password)
	if err != nil {
		return Identity{}, fmt.Errorf("authenticate: %w", err)
	}
	if u == nil {
		return Identity{}, ErrInvalidCredentials
	}
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}, nil
}

// Session is a signed-in user.
type Session struct {
	Token     string
	User      Identity
	Remember  bool
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Manager issues and resolves sessions. It is safe for concurrent use.
type Manager struct {
	users UserFinder
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]Session
}

func NewManager(users UserFinder) *Manager {
	return &Manager{
		users:    users,
		now:      time.Now,
		sessions: make(map[string]Session),
	}
}

// Login authenticates and opens a session. Remembered sessions last
// RememberTTL, others SessionTTL.
func (m *Manager) Login(email, password string, remember bool) (Session, error) {
	id, err := Authenticate(m.users, email, password)
	if err != nil {
		log.Printf("auth: login rejected: %v", err)
		return Session{}, err
	}

	ttl := SessionTTL
	if remember {
		ttl = RememberTTL
	}
	s := Session{
		Token:     uuid.NewString(),
		User:      id,
		Remember:  remember,
		ExpiresAt: m.now().Add(ttl),
	}

	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()

	log.Printf("auth: user %d signed in (remember=%t)", id.ID, remember)
	return s, nil
}

// Get resolves a token. Expired sessions are dropped.
func (m *Manager) Get(token string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return Session{}, ErrNoSession
	}
	if s.Expired(m.now()) {
		delete(m.sessions, token)
		return Session{}, ErrSessionExpired
	}
	return s, nil
}

func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
