package handler

import (
	"distress-relay-api/internal/auth"
	"distress-relay-api/internal/model"
)

// raiseSignal opens a distress signal for an authenticated, registered user.
// Registry first, board second; the locks are never nested. The new signal id
// goes back in the reason so the raiser can poll check_status and close the
// signal later.
func (h *Handler) raiseSignal(p Params) (string, error) {
	if err := h.checkToken(p["session_id"]); err != nil {
		return "", err
	}
	u, err := h.store.Users.Authorize(p["email"], p["session_id"])
	if err != nil {
		return "", err
	}

	sig := &model.DistressSignal{
		ID:          auth.NewSignalID(),
		Name:        u.Name,
		LocationLat: u.LocationLat,
		LocationLng: u.LocationLng,
	}
	// the request may carry fresher values than the registry holds
	if p["name"] != "" {
		sig.Name = p["name"]
	}
	if p["user_location_lat"] != "" {
		sig.LocationLat = p["user_location_lat"]
	}
	if p["user_location_mag"] != "" {
		sig.LocationLng = p["user_location_mag"]
	}

	h.store.Signals.Add(sig)
	return sig.ID, nil
}

// removeSignal serves both remove_signal and answer_distress; the session_id
// parameter holds the signal id, not the caller's session.
func (h *Handler) removeSignal(p Params) (string, error) {
	if err := h.store.Signals.Remove(p["session_id"]); err != nil {
		return "", err
	}
	return "Distress signal removed", nil
}

func (h *Handler) respondSignal(p Params) (string, error) {
	if err := h.checkToken(p["session_id"]); err != nil {
		return "", err
	}
	if _, err := h.store.Users.Authorize(p["email"], p["session_id"]); err != nil {
		return "", err
	}
	if _, err := h.store.Signals.Respond(p["signal_session_id"]); err != nil {
		return "", err
	}
	return "Responded to distress signal", nil
}

func (h *Handler) checkDistress() (string, error) {
	return h.store.Signals.PeekAny()
}

func (h *Handler) checkStatus(p Params) (string, error) {
	return h.store.Signals.StatusOf(p["session_id"])
}
