package handler

import (
	"errors"

	"distress-relay-api/internal/auth"
	"distress-relay-api/internal/store"
)

// ErrInvalidCredentials covers both unknown email and wrong password, so a
// login failure never reveals which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Handler struct {
	store  *store.Store
	secret string
}

func New(st *store.Store, secret string) *Handler {
	return &Handler{store: st, secret: secret}
}

// checkToken rejects tokens this server never minted before the registry is
// even consulted. Equality against the user's stored current token is still
// enforced by the store guard afterwards.
func (h *Handler) checkToken(token string) error {
	if _, err := auth.ParseSessionToken(token, h.secret); err != nil {
		return store.ErrSessionMismatch
	}
	return nil
}
