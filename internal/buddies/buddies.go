// Package buddies manages the accountability contacts kept on the device.
package buddies

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/logger"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/storage"
)

var (
	ErrNameRequired  = errors.New("buddy name is required")
	ErrPhoneRequired = errors.New("buddy phone is required")
	ErrNotFound      = errors.New("buddy not found")
)

// List stores buddies as one JSON array under constants.KeyBuddies.
type List struct {
	mu    sync.Mutex
	store storage.Provider
}

func New(store storage.Provider) *List {
	return &List{store: store}
}

// All returns the buddies in insertion order.
func (l *List) All() []models.Buddy {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

func (l *List) Get(id string) (models.Buddy, bool) {
	for _, b := range l.All() {
		if b.ID == id {
			return b, true
		}
	}
	return models.Buddy{}, false
}

// Add appends a buddy with a generated id. Name and phone are trimmed and
// must be non-empty.
func (l *List) Add(name, phone string) (models.Buddy, error) {
	name, phone = strings.TrimSpace(name), strings.TrimSpace(phone)
	if name == "" {
		return models.Buddy{}, ErrNameRequired
	}
	if phone == "" {
		return models.Buddy{}, ErrPhoneRequired
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b := models.Buddy{ID: uuid.NewString(), Name: name, Phone: phone}
	l.save(append(l.load(), b))
	return b, nil
}

// Remove deletes the buddy with id. It reports whether one was removed.
func (l *List) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	all := l.load()
	kept := all[:0]
	for _, b := range all {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(all) {
		return false
	}
	l.save(kept)
	return true
}

// Update merges the non-nil fields of patch into the buddy with id.
func (l *List) Update(id string, patch models.BuddyPatch) (models.Buddy, error) {
	var name, phone string
	if patch.Name != nil {
		if name = strings.TrimSpace(*patch.Name); name == "" {
			return models.Buddy{}, ErrNameRequired
		}
	}
	if patch.Phone != nil {
		if phone = strings.TrimSpace(*patch.Phone); phone == "" {
			return models.Buddy{}, ErrPhoneRequired
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	all := l.load()
	for i := range all {
		if all[i].ID != id {
			continue
		}
		if patch.Name != nil {
			all[i].Name = name
		}
		if patch.Phone != nil {
			all[i].Phone = phone
		}
		l.save(all)
		return all[i], nil
	}
	return models.Buddy{}, ErrNotFound
}

func (l *List) load() []models.Buddy {
	var all []models.Buddy
	if err := storage.GetJSON(l.store, constants.KeyBuddies, &all); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to load buddies", "error", err)
		}
		return []models.Buddy{}
	}
	return all
}

func (l *List) save(all []models.Buddy) {
	if err := storage.SetJSON(l.store, constants.KeyBuddies, all); err != nil {
		logger.Warn("Failed to save buddies", "error", err)
	}
}
