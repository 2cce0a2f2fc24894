// Package entities contains core business entities.
package entities

import "time"

// Roster is the persisted collection of team records plus provenance.
// UploadedFiles holds every distinct source name in insertion order.
// Teams order is insertion order and carries no semantic meaning.
type Roster struct {
	Teams         []TeamRecord `json:"teams"`
	CreatedAt     time.Time    `json:"created_at"`
	UploadedFiles []string     `json:"uploaded_files"`
}

// NewRoster returns an empty roster stamped with the given creation time.
func NewRoster(createdAt time.Time) *Roster {
	return &Roster{
		Teams:         []TeamRecord{},
		CreatedAt:     createdAt,
		UploadedFiles: []string{},
	}
}
