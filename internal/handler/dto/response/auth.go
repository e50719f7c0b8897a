package response

import (
	"time"

	"guesthouse-booking/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string                      `json:"accessToken"`
	ExpiresAt   time.Time                   `json:"expiresAt"`
	User        *queries.AuthorizedUserView `json:"user"`
}
