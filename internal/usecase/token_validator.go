package usecase

import (
	"guesthouse-booking/internal/domain/user"
	"guesthouse-booking/internal/pkg/errs"
	"guesthouse-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator turns an access token into the caller's id and role.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return &jwtTokenValidator{tokens: tokens}
}

func (v *jwtTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.tokens.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	// a role removed from the capability table invalidates older tokens
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, jwt.ErrInvalidToken)
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}
	return claims.UserID, role, nil
}
