package craving

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/reboot/internal/models"
)

func TestActionsWithoutBuddies(t *testing.T) {
	actions := Actions(nil)
	require.Len(t, actions, 3)
	assert.Equal(t, "No Buddy Added", actions[0].Label)
	assert.False(t, actions[0].Enabled)
	assert.Equal(t, ActionMessageBuddy, actions[1].Kind)
	assert.Equal(t, ActionColdWater, actions[2].Kind)
}

func TestActionsWithBuddies(t *testing.T) {
	actions := Actions([]models.Buddy{
		{ID: "1", Name: "Sam", Phone: "555-0100"},
		{ID: "2", Name: "Ari", Phone: "555-0101"},
	})
	require.Len(t, actions, 4)
	assert.Equal(t, "Call Sam", actions[0].Label)
	assert.Equal(t, "tel:555-0100", actions[0].Target)
	assert.True(t, actions[1].Enabled)
	assert.Contains(t, actions[2].Target, "sms:?body=")
}
