package system

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/reboot/internal/storage"
)

func TestNotifyCmd(t *testing.T) {
	ctx, out, clk := newTestContext(storage.NewMemoryStore())
	sender := ctx.Notifier.(*recordingSender)

	if err := (&NotifyCmd{DryRun: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Onboarding not completed") {
		t.Errorf("unexpected output %q", out.String())
	}

	ctx.Profile.CompleteOnboarding()
	ctx.Streaks.Start("default")
	clk.Advance(3 * 24 * time.Hour)

	out.Reset()
	if err := (&NotifyCmd{DryRun: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "[DryRun] 🌿 3 Days reached!") {
		t.Errorf("unexpected dry run output %q", out.String())
	}
	if len(sender.texts) != 0 {
		t.Error("dry run must not send")
	}

	for i := 0; i < 2; i++ {
		if err := (&NotifyCmd{}).Run(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if len(sender.texts) != 1 {
		t.Errorf("expected one notification, got %v", sender.texts)
	}
}
