package services

import "sync"

// CartStore hands out one CartSession per user. Only the map lookup is
// guarded; a session itself is only ever touched by its own user's requests.
type CartStore struct {
	mu       sync.Mutex
	sessions map[uint]*CartSession
}

func NewCartStore() *CartStore {
	return &CartStore{sessions: make(map[uint]*CartSession)}
}

// Session returns the user's cart, creating it on first use.
func (st *CartStore) Session(userID uint) *CartSession {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[userID]
	if !ok {
		s = NewCartSession()
		st.sessions[userID] = s
	}
	return s
}
