package craving

import (
	"fmt"
	"net/url"

	"github.com/julianstephens/reboot/internal/models"
)

// BuddyMessage is the pre-filled text for reaching out during a craving.
const BuddyMessage = "I'm having a hard time right now, are you free to talk?"

type ActionKind int

const (
	ActionCallBuddy ActionKind = iota
	ActionMessageBuddy
	ActionColdWater
)

// Action is one entry of the physical-reset menu shown before finishing a
// session. Choosing one is optional and does not change the session.
type Action struct {
	Kind    ActionKind
	Label   string
	Target  string // tel: or sms: URI, empty when not applicable
	Enabled bool
}

// Actions builds the reset menu. Each buddy gets a call entry; with no
// buddies a single disabled placeholder is shown instead.
func Actions(buddies []models.Buddy) []Action {
	var out []Action
	if len(buddies) == 0 {
		out = append(out, Action{Kind: ActionCallBuddy, Label: "No Buddy Added"})
	}
	for _, b := range buddies {
		out = append(out, Action{
			Kind:    ActionCallBuddy,
			Label:   fmt.Sprintf("Call %s", b.Name),
			Target:  "tel:" + b.Phone,
			Enabled: true,
		})
	}

	out = append(out,
		Action{
			Kind:    ActionMessageBuddy,
			Label:   "Message Buddy",
			Target:  "sms:?body=" + url.PathEscape(BuddyMessage),
			Enabled: true,
		},
		Action{
			Kind:    ActionColdWater,
			Label:   "Cold Water Reset",
			Enabled: true,
		},
	)
	return out
}
