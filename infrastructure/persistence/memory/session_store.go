package memory

import (
	"sync"

	"github.com/krishivishwa/storefront/domain/cart"
	"github.com/krishivishwa/storefront/domain/checkout"
)

// CartStore Session-keyed carts. Each session's mutations run under the
// store lock, so the cart aggregate needs no synchronization of its own.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
}

// NewCartStore Create an empty cart store.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*cart.Cart)}
}

// With runs fn with the session's cart, creating it on first use.
func (s *CartStore) With(sessionID string, fn func(*cart.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = cart.New()
		s.carts[sessionID] = c
	}
	return fn(c)
}

// Drop discards the session's cart.
func (s *CartStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// WizardStore Session-keyed checkout wizards, same locking contract as
// the cart store.
type WizardStore struct {
	mu      sync.Mutex
	wizards map[string]*checkout.Wizard
}

// NewWizardStore Create an empty wizard store.
func NewWizardStore() *WizardStore {
	return &WizardStore{wizards: make(map[string]*checkout.Wizard)}
}

// With runs fn with the session's wizard, creating it on first use.
func (s *WizardStore) With(sessionID string, fn func(*checkout.Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wizards[sessionID]
	if !ok {
		w = checkout.NewWizard()
		s.wizards[sessionID] = w
	}
	return fn(w)
}

// Drop discards the session's wizard.
func (s *WizardStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, sessionID)
}

// LikeStore Per-client liked-story sets.
type LikeStore struct {
	mu    sync.Mutex
	likes map[string]map[string]bool
}

// NewLikeStore Create an empty like store.
func NewLikeStore() *LikeStore {
	return &LikeStore{likes: make(map[string]map[string]bool)}
}

// Like marks the story liked, reporting whether the state changed.
func (s *LikeStore) Like(clientID, storyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.likes[clientID]
	if !ok {
		set = make(map[string]bool)
		s.likes[clientID] = set
	}
	if set[storyID] {
		return false
	}
	set[storyID] = true
	return true
}

// Unlike removes the mark, reporting whether the state changed.
func (s *LikeStore) Unlike(clientID, storyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.likes[clientID]
	if !ok || !set[storyID] {
		return false
	}
	delete(set, storyID)
	return true
}

// Liked returns the client's liked story ids.
func (s *LikeStore) Liked(clientID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.likes[clientID]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
