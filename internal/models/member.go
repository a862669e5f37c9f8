package models

// Member is a person belonging to exactly one group.
type Member struct {
	// ID is assigned by the store.
	ID int64

	// GroupID is the group this member belongs to.
	GroupID int64

	// Name is the display name of the member.
	Name string

	// Email is optional. When set it is unique within the group;
	// the same address may appear in other groups.
	Email string

	// CreatedAt is the Unix timestamp when the member was added.
	CreatedAt int64
}
