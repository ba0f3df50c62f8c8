package models

import (
	"time"

	"github.com/yeshu2004/real-time-pooling/storage"
)

type RegisterIdentityRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type IdentityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

func TransformIdentityToResponse(identity *storage.Identity) IdentityResponse {
	return IdentityResponse{
		ID:        identity.ID,
		Name:      identity.Name,
		Role:      identity.Role,
		CreatedAt: identity.CreatedAt,
	}
}
