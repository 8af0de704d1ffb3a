package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project entry
type Project struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	MadeAt      *string    `json:"made_at,omitempty"`
	ImgURL      string     `json:"img_url"`
	Description []string   `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Featured    bool       `json:"featured"`
	Completed   bool       `json:"completed"`
	TeamSize    int        `json:"team_size"`
	Skills      []string   `json:"skills"`
	Tags        []string   `json:"tags"`
	GithubURL   *string    `json:"github_url,omitempty"`
	LiveURL     *string    `json:"live_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
