// Package player is the identity collaborator: account registration,
// credential checks, and session tokens. It validates who is calling;
// what they may do is the engine's concern.
package player

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dogmud/dogmud/internal/engine"
	"github.com/dogmud/dogmud/internal/storage"
)

var (
	ErrUsernameTaken      = errors.New("that name is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
)

type session struct {
	token       string
	username    string
	characterID uint64
	startedAt   time.Time
}

type Manager struct {
	mu       sync.RWMutex
	accounts *storage.Table[*Account]
	sessions map[string]*session
	now      func() time.Time
}

type ManagerOpt func(*Manager)

// WithClock overrides the manager's notion of now, for tests.
func WithClock(now func() time.Time) ManagerOpt {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(opts ...ManagerOpt) *Manager {
	m := &Manager{
		accounts: storage.NewTable[*Account](),
		sessions: map[string]*session{},
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Register creates an account with a bcrypt-hashed password. Usernames
// are unique case-insensitively.
func (m *Manager) Register(username, password string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(password) == 0 || strings.EqualFold(password, username) {
		return nil, fmt.Errorf("illegal password")
	}

	key := strings.ToLower(username)
	if _, ok := m.accounts.Find(func(a *Account) bool { return strings.ToLower(a.Username) == key }); ok {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	acct := &Account{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    m.now(),
	}
	if err := acct.Validate(); err != nil {
		return nil, err
	}

	m.accounts.Insert(acct)
	return acct, nil
}

// Login checks credentials and opens a session, returning its token.
// Failures are deliberately indistinct about whether the username or
// the password was wrong.
func (m *Manager) Login(username, password string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(username)
	acct, ok := m.accounts.Find(func(a *Account) bool { return strings.ToLower(a.Username) == key })
	if !ok {
		return "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	stamped := *acct
	stamped.LastLoginAt = m.now()
	if err := m.accounts.Update(&stamped); err != nil {
		return "", fmt.Errorf("stamping login: %w", err)
	}

	token := uuid.NewString()
	m.sessions[token] = &session{
		token:     token,
		username:  acct.Username,
		startedAt: m.now(),
	}
	return token, nil
}

// SelectCharacter binds a character to the session. The engine validates
// ownership and liveness when the character acts.
func (m *Manager) SelectCharacter(token string, characterID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return ErrSessionNotFound
	}
	s.characterID = characterID
	return nil
}

// Logout closes the session. Closing an unknown token is not an error.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
}

// Resolve implements engine.SessionStore.
func (m *Manager) Resolve(token string) (engine.ActorIdentity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[token]
	if !ok {
		return engine.ActorIdentity{}, false
	}
	return engine.ActorIdentity{
		Identity:    s.username,
		CharacterID: s.characterID,
	}, true
}
