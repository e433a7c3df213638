package models

// Buddy is an accountability contact stored on the device
type Buddy struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// BuddyPatch carries optional field updates for a buddy
type BuddyPatch struct {
	Name  *string
	Phone *string
}
