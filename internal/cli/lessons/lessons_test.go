package lessons

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/clock"
	"github.com/julianstephens/reboot/internal/content"
	apperrors "github.com/julianstephens/reboot/internal/errors"
	"github.com/julianstephens/reboot/internal/storage"
)

func TestLessonsCmd(t *testing.T) {
	ctx := cli.NewContext(storage.NewMemoryStore(), clock.NewFake(time.Now()), time.UTC)
	out := &bytes.Buffer{}
	ctx.Out = out

	if err := (&LessonsCmd{Plain: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out.String(), "\n"); n != 12 {
		t.Errorf("expected 6 lessons (12 lines), got %d lines", n)
	}

	out.Reset()
	if err := (&LessonsCmd{Category: "Skills", Plain: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Trigger Awareness") || strings.Contains(out.String(), "Dopamine") {
		t.Errorf("unexpected filtered output:\n%s", out.String())
	}

	err := (&LessonsCmd{Category: "Cooking"}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "Foundations") {
		t.Errorf("expected error listing categories, got %v", err)
	}
	if !apperrors.IsInvalid(err) {
		t.Errorf("unknown category should be an input error, got %T", err)
	}

	out.Reset()
	if err := (&LessonsCmd{Category: "Mindset"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Self") {
		t.Errorf("expected rendered lesson, got:\n%s", out.String())
	}
}

func TestMarkdown(t *testing.T) {
	md := markdown(content.Default().LessonsIn("Science"))
	if !strings.HasPrefix(md, "## ") || !strings.Contains(md, "*Science · ") {
		t.Errorf("unexpected markdown:\n%s", md)
	}
}
