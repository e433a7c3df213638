package buddies

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/storage"
	"github.com/julianstephens/reboot/internal/storage/mocks"
)

func strPtr(s string) *string { return &s }

func TestAddAndAll(t *testing.T) {
	l := New(storage.NewMemoryStore())
	assert.Empty(t, l.All())

	a, err := l.Add("  Sam ", " 555-0100 ")
	require.NoError(t, err)
	_, err = uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam", a.Name)
	assert.Equal(t, "555-0100", a.Phone)

	b, err := l.Add("Alex", "555-0199")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, []models.Buddy{a, b}, l.All())
}

func TestAddValidation(t *testing.T) {
	l := New(storage.NewMemoryStore())

	_, err := l.Add(" ", "555")
	assert.ErrorIs(t, err, ErrNameRequired)
	_, err = l.Add("Sam", "")
	assert.ErrorIs(t, err, ErrPhoneRequired)
	assert.Empty(t, l.All())
}

func TestRemove(t *testing.T) {
	l := New(storage.NewMemoryStore())
	a, _ := l.Add("Sam", "1")
	b, _ := l.Add("Alex", "2")

	assert.True(t, l.Remove(a.ID))
	assert.False(t, l.Remove(a.ID))
	assert.Equal(t, []models.Buddy{b}, l.All())
}

func TestUpdate(t *testing.T) {
	store := storage.NewMemoryStore()
	l := New(store)
	a, _ := l.Add("Sam", "1")

	got, err := l.Update(a.ID, models.BuddyPatch{Phone: strPtr("555-0111")})
	require.NoError(t, err)
	assert.Equal(t, "Sam", got.Name)
	assert.Equal(t, "555-0111", got.Phone)

	stored, ok := New(store).Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, got, stored)

	_, err = l.Update(a.ID, models.BuddyPatch{Name: strPtr("")})
	assert.ErrorIs(t, err, ErrNameRequired)
	_, err = l.Update("missing", models.BuddyPatch{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCorruptListIsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(constants.KeyBuddies, `{"not":"a list"}`))
	l := New(store)

	assert.Empty(t, l.All())
	_, err := l.Add("Sam", "1")
	require.NoError(t, err)
	assert.Len(t, l.All(), 1)
}

func TestStorageFailuresAreSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockProvider(ctrl)
	store.EXPECT().Get(constants.KeyBuddies).Return("", assert.AnError).AnyTimes()
	store.EXPECT().Set(constants.KeyBuddies, gomock.Any()).Return(assert.AnError)

	l := New(store)
	b, err := l.Add("Sam", "1")
	require.NoError(t, err)
	assert.Equal(t, "Sam", b.Name)
	assert.Empty(t, l.All())
}
