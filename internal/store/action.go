package store

import "github.com/google/uuid"

// Action is one user intent delivered to the store.
type Action interface {
	Kind() string
	isAction()
}

// Add appends a new item. ID is assigned by Store.Dispatch when left zero.
type Add struct {
	ID   uuid.UUID
	Text string
}

// Toggle flips the completed flag of the item with ID.
type Toggle struct {
	ID uuid.UUID
}

// Delete removes the item with ID.
type Delete struct {
	ID uuid.UUID
}

func (Add) Kind() string    { return "add" }
func (Toggle) Kind() string { return "toggle" }
func (Delete) Kind() string { return "delete" }

func (Add) isAction()    {}
func (Toggle) isAction() {}
func (Delete) isAction() {}
