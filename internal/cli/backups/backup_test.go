package backups

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/clock"
	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/storage"
	"github.com/julianstephens/reboot/internal/storage/sqlite"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func setupSQLite(t *testing.T) (*cli.Context, *bytes.Buffer, *clock.Fake, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "reboot.db")
	store := sqlite.NewStore(dbPath)
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })

	clk := clock.NewFake(t0)
	ctx := cli.NewContext(store, clk, time.UTC)
	out := &bytes.Buffer{}
	ctx.Out = out
	return ctx, out, clk, dbPath
}

func TestUnsupportedBackend(t *testing.T) {
	ctx := cli.NewContext(storage.NewMemoryStore(), clock.NewFake(t0), time.UTC)
	assert.ErrorIs(t, (&BackupCreateCmd{}).Run(ctx), ErrUnsupportedBackend)
	assert.ErrorIs(t, (&BackupListCmd{}).Run(ctx), ErrUnsupportedBackend)
	assert.ErrorIs(t, (&BackupRestoreCmd{BackupFile: "x.db"}).Run(ctx), ErrUnsupportedBackend)
}

func TestCreateAndList(t *testing.T) {
	ctx, out, clk, _ := setupSQLite(t)

	require.NoError(t, (&BackupListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "No backups found.")

	require.NoError(t, (&BackupCreateCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "✓ Backup created: reboot-20240301-1200.db")

	clk.Advance(time.Hour)
	require.NoError(t, (&BackupCreateCmd{}).Run(ctx))

	out.Reset()
	require.NoError(t, (&BackupListCmd{}).Run(ctx))
	s := out.String()
	assert.Contains(t, s, "Available backups (2 total")
	assert.Less(t, strings.Index(s, "reboot-20240301-1300.db"), strings.Index(s, "reboot-20240301-1200.db"))
}

func TestRestore(t *testing.T) {
	ctx, out, clk, dbPath := setupSQLite(t)
	require.NoError(t, ctx.Store.Set(constants.KeyProfile, `{"anonymousName":"before"}`))
	require.NoError(t, (&BackupCreateCmd{}).Run(ctx))
	require.NoError(t, ctx.Store.Set(constants.KeyProfile, `{"anonymousName":"after"}`))
	clk.Advance(time.Hour)

	ctx.In = strings.NewReader("n\n")
	require.NoError(t, (&BackupRestoreCmd{BackupFile: "reboot-20240301-1200.db"}).Run(ctx))
	assert.Contains(t, out.String(), "Restore cancelled.")

	require.NoError(t, (&BackupRestoreCmd{BackupFile: "reboot-20240301-1200.db", Yes: true}).Run(ctx))
	assert.Contains(t, out.String(), "✓ Database restored successfully!")
	assert.Contains(t, out.String(), "reboot-20240301-1300.db")

	restored := sqlite.NewStore(dbPath)
	require.NoError(t, restored.Load())
	defer restored.Close()
	v, err := restored.Get(constants.KeyProfile)
	require.NoError(t, err)
	assert.Equal(t, `{"anonymousName":"before"}`, v)
}

func TestRestoreMissingFile(t *testing.T) {
	ctx, _, _, _ := setupSQLite(t)
	err := (&BackupRestoreCmd{BackupFile: "nope.db", Yes: true}).Run(ctx)
	assert.ErrorContains(t, err, "backup file not found")
}
