// Package announcement provides HTTP handlers for the announcement endpoints.
// It includes handlers for paging, navigation, listing, reading, creating,
// updating and deleting announcements.
package announcement

import (
	"time"

	"noticeboard/internal/domain/entity"
)

// DTO represents the JSON structure for announcement data transfer.
type DTO struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Title     string    `json:"title"`
	Contents  string    `json:"contents"`
	CreatedAt time.Time `json:"created_at"`
}

// NavResponse is the body of GET /announcements/nav.
type NavResponse struct {
	Nav []string `json:"nav"`
}

// createRequest is the body accepted by POST /announcements.
type createRequest struct {
	OwnerID  int64  `json:"owner_id"`
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

// updateRequest is the body accepted by PUT /announcements/{id}.
type updateRequest struct {
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

func toDTO(a *entity.Announcement) DTO {
	return DTO{
		ID:        a.ID,
		OwnerID:   a.OwnerID,
		Title:     a.Title,
		Contents:  a.Contents,
		CreatedAt: a.CreatedAt,
	}
}

func toDTOs(items []*entity.Announcement) []DTO {
	out := make([]DTO, 0, len(items))
	for _, a := range items {
		out = append(out, toDTO(a))
	}
	return out
}
