package profiles

import (
	"bufio"
	"strings"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/content"
)

type ProfileCmd struct {
	Show  ShowCmd  `cmd:"" help:"Show the profile." default:"1"`
	Reset ResetCmd `cmd:"" help:"Delete profile, streaks and craving history."`
}

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	p := ctx.Profile.Load()
	catalog := content.Default()

	ctx.Printf("Name:        %s\n", p.AnonymousName)
	ctx.Printf("Privacy:     %s\n", p.PrivacyLevel)
	ctx.Printf("Onboarded:   %t\n", p.HasCompletedOnboarding)
	ctx.Printf("Buddy:       %t\n", p.HasAccountabilityBuddy)
	for _, a := range p.Addictions {
		triggers := make([]string, len(a.Triggers))
		for i, t := range a.Triggers {
			triggers[i] = catalog.TriggerLabel(t)
		}
		ctx.Printf("Addiction:   %s (%s since %s)\n", catalog.AddictionLabel(a.Type), a.QuitGoal, a.StartDate)
		if len(triggers) > 0 {
			ctx.Printf("  Triggers:  %s\n", strings.Join(triggers, ", "))
		}
	}
	return nil
}

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt." short:"y"`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ctx.Println("⚠️  This deletes your profile, streaks and craving history. Buddies are kept.")
		ctx.Printf("Continue? [y/N]: ")
		response, _ := bufio.NewReader(ctx.In).ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			ctx.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	ctx.Profile.Reset()
	ctx.Println("✓ All progress data has been reset.")
	return nil
}
