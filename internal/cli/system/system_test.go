package system

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/clock"
	"github.com/julianstephens/reboot/internal/notifier"
	"github.com/julianstephens/reboot/internal/storage"
	"github.com/julianstephens/reboot/internal/storage/sqlite"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type recordingSender struct{ texts []string }

func (s *recordingSender) Notify(text string) error {
	s.texts = append(s.texts, text)
	return nil
}

var _ notifier.Sender = (*recordingSender)(nil)

// newTestContext wraps store in a context that writes to the returned buffer.
func newTestContext(store storage.Provider) (*cli.Context, *bytes.Buffer, *clock.Fake) {
	clk := clock.NewFake(t0)
	ctx := cli.NewContext(store, clk, time.UTC)
	out := &bytes.Buffer{}
	ctx.Out = out
	ctx.Notifier = &recordingSender{}
	return ctx, out, clk
}

func setupSQLite(t *testing.T) (*cli.Context, *bytes.Buffer, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "reboot.db")
	store := sqlite.NewStore(dbPath)
	t.Cleanup(func() { store.Close() })
	ctx, out, _ := newTestContext(store)
	return ctx, out, dbPath
}
