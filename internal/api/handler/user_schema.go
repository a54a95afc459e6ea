package handler

import (
	"github.com/vidhive/accounts-api/internal/core/domain"
)

// --- Response types ---

// userResponse is the only user shape that leaves the system. The password
// hash has no field here, so it cannot be serialized by accident.
type userResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayNSFW bool   `json:"displayNSFW"`
	Role        string `json:"role"`
	CreatedAt   string `json:"createdAt"`
}

// listUsersResponse pairs one page of accounts with the total matching count,
// so pagination metadata survives short pages.
type listUsersResponse struct {
	Data  []userResponse `json:"data"`
	Total int64          `json:"total"`
}

type videoRatingResponse struct {
	VideoID string `json:"videoId"`
	Rating  string `json:"rating"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayNSFW: u.DisplayNSFW,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func toListUsersResponse(page []*domain.User, total int64) listUsersResponse {
	data := make([]userResponse, 0, len(page))
	for _, u := range page {
		data = append(data, toUserResponse(u))
	}
	return listUsersResponse{Data: data, Total: total}
}
