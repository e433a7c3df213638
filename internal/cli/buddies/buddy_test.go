package buddies

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/reboot/internal/buddies"
	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/clock"
	apperrors "github.com/julianstephens/reboot/internal/errors"
	"github.com/julianstephens/reboot/internal/storage"
)

func newContext() (*cli.Context, *bytes.Buffer) {
	ctx := cli.NewContext(storage.NewMemoryStore(), clock.NewFake(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)), time.UTC)
	out := &bytes.Buffer{}
	ctx.Out = out
	return ctx, out
}

func strPtr(s string) *string { return &s }

func TestBuddyLifecycle(t *testing.T) {
	ctx, out := newContext()

	require.NoError(t, (&ListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "No buddies yet")

	require.NoError(t, (&AddCmd{Name: "Sam", Phone: "555-0100"}).Run(ctx))
	assert.True(t, ctx.Profile.Load().HasAccountabilityBuddy)
	all := ctx.Buddies.All()
	require.Len(t, all, 1)
	id := all[0].ID

	assert.ErrorIs(t, (&AddCmd{Name: " ", Phone: "1"}).Run(ctx), buddies.ErrNameRequired)

	err := (&EditCmd{ID: id}).Run(ctx)
	assert.True(t, apperrors.IsInvalid(err), "edit without flags is an input error: %v", err)
	require.NoError(t, (&EditCmd{ID: id, Phone: strPtr("555-0199")}).Run(ctx))
	b, _ := ctx.Buddies.Get(id)
	assert.Equal(t, "555-0199", b.Phone)
	assert.ErrorIs(t, (&EditCmd{ID: "nope", Name: strPtr("X")}).Run(ctx), buddies.ErrNotFound)

	out.Reset()
	require.NoError(t, (&ListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Sam")

	require.NoError(t, (&RemoveCmd{ID: id}).Run(ctx))
	assert.False(t, ctx.Profile.Load().HasAccountabilityBuddy)
	assert.Error(t, (&RemoveCmd{ID: id}).Run(ctx))
}
