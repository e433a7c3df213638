package profile

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/reboot/internal/clock"
	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/storage"
	"github.com/julianstephens/reboot/internal/storage/mocks"
)

var d0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T) (*Manager, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewManager(store, clock.NewFake(d0), WithRand(rand.New(rand.NewSource(1)))), store
}

func TestAnonymousName(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+\d{1,3}$`)
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, AnonymousName(r))
	}
}

func TestLoadDefault(t *testing.T) {
	m, store := newTestManager(t)

	p := m.Load()
	assert.False(t, p.HasCompletedOnboarding)
	assert.NotEmpty(t, p.AnonymousName)
	assert.Empty(t, p.Addictions)
	assert.Equal(t, models.PrivacyAnonymous, p.PrivacyLevel)
	assert.False(t, p.HasAccountabilityBuddy)

	assert.Equal(t, p.AnonymousName, m.Load().AnonymousName, "default name is stable")

	_, err := store.Get(constants.KeyProfile)
	assert.ErrorIs(t, err, storage.ErrNotFound, "load does not persist")
}

func TestSavePersistsDefaultName(t *testing.T) {
	m, store := newTestManager(t)
	name := m.Load().AnonymousName

	m.Save(func(p *models.Profile) { p.HasAccountabilityBuddy = true })

	var stored models.Profile
	require.NoError(t, storage.GetJSON(store, constants.KeyProfile, &stored))
	assert.Equal(t, name, stored.AnonymousName)
	assert.True(t, stored.HasAccountabilityBuddy)

	reopened := NewManager(store, clock.NewFake(d0))
	assert.Equal(t, name, reopened.Load().AnonymousName)
}

func TestAddAddictionAndPrimaryType(t *testing.T) {
	m, _ := newTestManager(t)
	assert.Equal(t, constants.DefaultAddictionType, m.PrimaryAddictionType())

	m.AddAddiction(models.Addiction{Type: "social-media", QuitGoal: models.QuitGoalReduce})
	m.AddAddiction(models.Addiction{Type: "gaming", QuitGoal: models.QuitGoalStop})

	p := m.Load()
	require.Len(t, p.Addictions, 2)
	assert.Equal(t, "social-media", m.PrimaryAddictionType())
}

func TestCompleteOnboardingFlag(t *testing.T) {
	m, _ := newTestManager(t)
	assert.True(t, m.CompleteOnboarding().HasCompletedOnboarding)
	assert.True(t, m.Load().HasCompletedOnboarding)
}

func TestResetKeepsBuddies(t *testing.T) {
	m, store := newTestManager(t)
	m.CompleteOnboarding()
	for _, key := range []string{constants.KeyStreakData, constants.KeyCravingLog, constants.KeyBuddies} {
		require.NoError(t, store.Set(key, "{}"))
	}

	p := m.Reset()
	assert.False(t, p.HasCompletedOnboarding)

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{constants.KeyBuddies}, keys)
}

func TestLoadCorruptProfileFallsBack(t *testing.T) {
	m, store := newTestManager(t)
	require.NoError(t, store.Set(constants.KeyProfile, `{"addictions": 7}`))

	p := m.Load()
	assert.False(t, p.HasCompletedOnboarding)
	assert.NotEmpty(t, p.AnonymousName)
}

func TestStorageFailuresAreSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockProvider(ctrl)
	store.EXPECT().Get(constants.KeyProfile).Return("", assert.AnError).AnyTimes()
	store.EXPECT().Set(constants.KeyProfile, gomock.Any()).Return(assert.AnError)
	store.EXPECT().Remove(gomock.Any()).Return(assert.AnError).Times(3)

	m := NewManager(store, clock.NewFake(d0))
	assert.True(t, m.CompleteOnboarding().HasCompletedOnboarding)
	assert.False(t, m.Reset().HasCompletedOnboarding)
}
