package lessons

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/content"
	apperrors "github.com/julianstephens/reboot/internal/errors"
)

type LessonsCmd struct {
	Category string `help:"Only show lessons in this category." short:"c"`
	Plain    bool   `help:"Print plain text instead of rendered markdown."`
}

func (c *LessonsCmd) Run(ctx *cli.Context) error {
	catalog := content.Default()
	lessons := catalog.LessonsIn(c.Category)
	if len(lessons) == 0 {
		return apperrors.Invalid("category", "no lessons in %q (available: %s)", c.Category, strings.Join(catalog.Categories(), ", "))
	}

	if c.Plain {
		for _, l := range lessons {
			ctx.Printf("%-30s %-12s %s\n", l.Title, l.Category, l.Duration)
			ctx.Printf("  %s\n", l.Description)
		}
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdown(lessons))
	if err != nil {
		return fmt.Errorf("failed to render lessons: %w", err)
	}
	ctx.Printf("%s", out)
	return nil
}

func markdown(lessons []content.Lesson) string {
	var b strings.Builder
	for _, l := range lessons {
		fmt.Fprintf(&b, "## %s\n\n*%s · %s*\n\n%s\n\n", l.Title, l.Category, l.Duration, l.Description)
	}
	return b.String()
}
