package cartstore

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"techhub-store/internal/localstore"
)

// Manager hands out one Store per session id, each backed by its own
// file under dir. Stores are cached so a session keeps hitting the same
// single-writer state.
type Manager struct {
	mu     sync.Mutex
	dir    string
	logger *logrus.Logger
	stores map[string]*Store
}

func NewManager(dir string, logger *logrus.Logger) *Manager {
	return &Manager{
		dir:    dir,
		logger: logger,
		stores: make(map[string]*Store),
	}
}

// ForSession returns the session's cart store, creating and loading it on
// first use.
func (m *Manager) ForSession(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[sessionID]; ok {
		return store
	}
	path := filepath.Join(m.dir, sanitizeSessionID(sessionID)+".json")
	store := New(localstore.NewFile(path), m.logger)
	m.stores[sessionID] = store
	return store
}

// sanitizeSessionID keeps session-derived file names to a safe alphabet.
func sanitizeSessionID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "anonymous"
	}
	return b.String()
}
