// Package entity defines the core domain entities and validation logic for the application.
// It contains the Announcement entity posted to the board, the Draft used to create or
// edit one, and the domain-specific errors shared by the store and use-case layers.
package entity

import "time"

// Announcement represents a notice posted to the bulletin board.
// ID and CreatedAt are assigned by the store on insert and never change afterwards;
// only Title and Contents are editable.
type Announcement struct {
	ID        int64
	OwnerID   int64
	Title     string
	Contents  string
	CreatedAt time.Time
}

// Apply copies the editable fields of a validated draft onto the announcement.
func (a *Announcement) Apply(d Draft) {
	a.Title = d.Title
	a.Contents = d.Contents
}
