package handler

import (
	"github.com/google/uuid"

	"distress-relay-api/internal/auth"
	"distress-relay-api/internal/model"
)

func (h *Handler) signUp(p Params) (string, error) {
	hash, err := auth.HashPassword(p["password"])
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	tok, err := auth.MakeSessionToken(id, h.secret)
	if err != nil {
		return "", err
	}

	u := &model.User{
		ID:           id,
		Email:        p["email"],
		PasswordHash: hash,
		Name:         p["name"],
		SessionToken: tok,
	}

	if err := h.store.Users.Create(u); err != nil {
		return "", err
	}
	return tok, nil
}

func (h *Handler) login(p Params) (string, error) {
	u, err := h.store.Users.ByEmail(p["email"])
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !auth.CheckPassword(u.PasswordHash, p["password"]) {
		return "", ErrInvalidCredentials
	}

	tok, err := auth.MakeSessionToken(u.ID, h.secret)
	if err != nil {
		return "", err
	}
	if err := h.store.Users.RotateSession(u.Email, tok); err != nil {
		return "", err
	}
	return tok, nil
}

func (h *Handler) updateLocation(p Params) (string, error) {
	if err := h.checkToken(p["session_id"]); err != nil {
		return "", err
	}
	err := h.store.Users.UpdateLocation(
		p["email"], p["session_id"],
		p["user_location_lat"], p["user_location_mag"],
	)
	if err != nil {
		return "", err
	}
	return "User location updated", nil
}

func (h *Handler) updateAvailability(p Params) (string, error) {
	if err := h.checkToken(p["session_id"]); err != nil {
		return "", err
	}
	err := h.store.Users.UpdateAvailability(
		p["email"], p["session_id"], p["user_availability"],
	)
	if err != nil {
		return "", err
	}
	return "User availability updated", nil
}
