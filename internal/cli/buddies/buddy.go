package buddies

import (
	"fmt"

	"github.com/julianstephens/reboot/internal/cli"
	apperrors "github.com/julianstephens/reboot/internal/errors"
	"github.com/julianstephens/reboot/internal/models"
)

type BuddyCmd struct {
	Add    AddCmd    `cmd:"" help:"Add an accountability buddy."`
	List   ListCmd   `cmd:"" help:"List buddies." default:"1"`
	Remove RemoveCmd `cmd:"" help:"Remove a buddy."`
	Edit   EditCmd   `cmd:"" help:"Edit a buddy's name or phone."`
}

type AddCmd struct {
	Name  string `arg:"" help:"Buddy name."`
	Phone string `arg:"" help:"Phone number."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	b, err := ctx.Buddies.Add(c.Name, c.Phone)
	if err != nil {
		return err
	}
	ctx.Profile.Save(func(p *models.Profile) { p.HasAccountabilityBuddy = true })
	ctx.Printf("✓ Added %s (%s)\n", b.Name, b.ID)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	all := ctx.Buddies.All()
	if len(all) == 0 {
		ctx.Println("No buddies yet. Add one with 'reboot buddy add NAME PHONE'.")
		return nil
	}
	for _, b := range all {
		ctx.Printf("%s  %-20s %s\n", b.ID, b.Name, b.Phone)
	}
	return nil
}

type RemoveCmd struct {
	ID string `arg:"" help:"Buddy id."`
}

func (c *RemoveCmd) Run(ctx *cli.Context) error {
	if !ctx.Buddies.Remove(c.ID) {
		return fmt.Errorf("no buddy with id %s", c.ID)
	}
	if len(ctx.Buddies.All()) == 0 {
		ctx.Profile.Save(func(p *models.Profile) { p.HasAccountabilityBuddy = false })
	}
	ctx.Println("✓ Buddy removed")
	return nil
}

type EditCmd struct {
	ID    string  `arg:"" help:"Buddy id."`
	Name  *string `help:"New name."`
	Phone *string `help:"New phone number."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	if c.Name == nil && c.Phone == nil {
		return apperrors.Invalid("flags", "nothing to change, pass --name and/or --phone")
	}
	b, err := ctx.Buddies.Update(c.ID, models.BuddyPatch{Name: c.Name, Phone: c.Phone})
	if err != nil {
		return err
	}
	ctx.Printf("✓ Updated %s (%s)\n", b.Name, b.Phone)
	return nil
}
