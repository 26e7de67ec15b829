package game

import "sync"

// Manager keeps one table per chat.
type Manager struct {
	games    map[int64]*State
	mu       sync.RWMutex
	newState func() *State
}

func NewManager(newState func() *State) *Manager {
	return &Manager{
		games:    make(map[int64]*State),
		newState: newState,
	}
}

func (m *Manager) Get(chatID int64) *State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.games[chatID]
}

// GetOrCreate returns the chat's table, opening one on first use.
func (m *Manager) GetOrCreate(chatID int64) *State {
	if s := m.Get(chatID); s != nil {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.games[chatID]; ok {
		return s
	}
	s := m.newState()
	m.games[chatID] = s
	return s
}

func (m *Manager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, chatID)
}
