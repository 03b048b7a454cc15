package controllers

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Abhigautam23/netsuite-financial-validator/internal/domain"
)

// uploadSession holds one upload's dataset and its prebuilt fact relation.
type uploadSession struct {
	ID        string
	Dataset   *domain.LedgerDataset
	Facts     []domain.LedgerFact
	CreatedAt time.Time
}

type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*uploadSession
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*uploadSession)}
}

func (r *sessionRegistry) put(ds *domain.LedgerDataset, facts []domain.LedgerFact) *uploadSession {
	session := &uploadSession{
		ID:        uuid.NewString(),
		Dataset:   ds,
		Facts:     facts,
		CreatedAt: time.Now(),
	}
	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
	return session
}

func (r *sessionRegistry) get(id string) (*uploadSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	return session, ok
}
