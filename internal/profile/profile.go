package profile

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/julianstephens/reboot/internal/clock"
	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/logger"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/storage"
)

var (
	adjectives = []string{"Brave", "Strong", "Calm", "Rising", "Growing", "Healing", "Peaceful", "Hopeful"}
	nouns      = []string{"Phoenix", "Warrior", "Climber", "Voyager", "Seeker", "Pioneer", "Spirit", "Soul"}
)

// AnonymousName returns a name like "CalmVoyager417".
func AnonymousName(r *rand.Rand) string {
	return fmt.Sprintf("%s%s%d", adjectives[r.Intn(len(adjectives))], nouns[r.Intn(len(nouns))], r.Intn(999))
}

// Manager persists the user profile under constants.KeyProfile.
type Manager struct {
	mu          sync.Mutex
	store       storage.Provider
	clock       clock.Clock
	rand        *rand.Rand
	loc         *time.Location
	defaultName string
}

type Option func(*Manager)

// WithLocation sets the time zone used for addiction start dates. The
// default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(m *Manager) {
		if loc != nil {
			m.loc = loc
		}
	}
}

// WithRand makes anonymous-name generation deterministic.
func WithRand(r *rand.Rand) Option {
	return func(m *Manager) {
		m.rand = r
	}
}

func NewManager(store storage.Provider, clk clock.Clock, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		clock: clk,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		loc:   time.UTC,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load returns the stored profile, or a fresh default with a generated
// anonymous name. The default is not persisted until the first save.
func (m *Manager) Load() models.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load()
}

// Save applies update to the current profile and stores the result.
func (m *Manager) Save(update func(*models.Profile)) models.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.load()
	update(&p)
	m.save(p)
	return p
}

func (m *Manager) AddAddiction(a models.Addiction) models.Profile {
	return m.Save(func(p *models.Profile) {
		p.Addictions = append(p.Addictions, a)
	})
}

func (m *Manager) CompleteOnboarding() models.Profile {
	return m.Save(func(p *models.Profile) {
		p.HasCompletedOnboarding = true
	})
}

// PrimaryAddictionType is the streak key used throughout the app.
func (m *Manager) PrimaryAddictionType() string {
	return m.Load().PrimaryAddictionType(constants.DefaultAddictionType)
}

// Reset removes the profile, streak data and craving log. Buddies are kept.
// It returns a new default profile.
func (m *Manager) Reset() models.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range []string{constants.KeyProfile, constants.KeyStreakData, constants.KeyCravingLog} {
		if err := m.store.Remove(key); err != nil {
			logger.Warn("Failed to remove stored data", "key", key, "error", err)
		}
	}
	m.defaultName = ""
	return m.load()
}

func (m *Manager) load() models.Profile {
	var p models.Profile
	err := storage.GetJSON(m.store, constants.KeyProfile, &p)
	if err == nil {
		return p
	}
	if !errors.Is(err, storage.ErrNotFound) {
		logger.Warn("Failed to load profile", "error", err)
	}

	if m.defaultName == "" {
		m.defaultName = AnonymousName(m.rand)
	}
	return models.Profile{
		AnonymousName: m.defaultName,
		Addictions:    []models.Addiction{},
		PrivacyLevel:  models.PrivacyAnonymous,
	}
}

func (m *Manager) save(p models.Profile) {
	if err := storage.SetJSON(m.store, constants.KeyProfile, p); err != nil {
		logger.Warn("Failed to save profile", "error", err)
	}
}
