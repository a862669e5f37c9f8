package models

// Group is a set of members who share expenses.
type Group struct {
	// ID is assigned by the store; higher IDs were created later.
	ID int64

	// Name is the display name of the group (e.g., "Roommates", "Trip").
	// Unique across the store.
	Name string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}
