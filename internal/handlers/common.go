package handlers

import "github.com/fabianengeln/paarspiel/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// Type aliases so swag can resolve models in annotations.
type ContentItem = models.ContentItem
type GameSession = models.GameSession
