package handler

import (
	"errors"
	"net/http"

	"distress-relay-api/internal/store"
)

// Params is the flat key-value parameter set the transport hands us,
// regardless of whether it arrived as a query string or a form body.
type Params map[string]string

// Response is the wire envelope every request is answered with. On success
// Reason carries either confirmation text or a value the client needs: the
// session token for sign_up/login, the signal id for signal and the check
// operations.
type Response struct {
	Response string `json:"response"`
	Reason   string `json:"reason"`
}

// Fail builds a failure envelope.
func Fail(reason string) Response {
	return Response{Response: "false", Reason: reason}
}

// required lists, per request type, the fields that must be present and
// non-empty before the operation runs. Membership in this table is also the
// request-type whitelist.
var required = map[string][]string{
	"sign_up":             {"email", "password"},
	"login":               {"email", "password"},
	"update_location":     {"email", "session_id", "user_location_lat", "user_location_mag"},
	"update_availability": {"email", "session_id", "user_availability"},
	"signal":              {"email", "session_id"},
	"remove_signal":       {"session_id"},
	"respond_signal":      {"email", "session_id", "signal_session_id"},
	"check_distress":      {},
	"check_status":        {"session_id"},
	"answer_distress":     {"session_id"},
	"ask_ai":              {},
}

// incomplete carries the type-specific message for a missing field, so the
// client can tell which kind of request it got wrong.
var incomplete = map[string]string{
	"sign_up":             "Incomplete sign up formation",
	"login":               "Incomplete login formation",
	"update_location":     "Incomplete location update formation",
	"update_availability": "Incomplete availability update formation",
	"signal":              "Incomplete signal formation",
	"remove_signal":       "Incomplete signal removal formation",
	"respond_signal":      "Incomplete signal response formation",
	"check_status":        "Incomplete status check formation",
	"answer_distress":     "Incomplete signal removal formation",
}

// Dispatch validates the declared request type and its required fields, then
// routes to the matching operation. It always returns a well-formed envelope
// plus the HTTP status the transport should answer with; nothing in here
// panics or leaks internals to the client.
func (h *Handler) Dispatch(p Params) (Response, int) {
	rt := p["request_type"]
	fields, ok := required[rt]
	if !ok {
		return Fail("Invalid request data"), http.StatusBadRequest
	}
	for _, f := range fields {
		if p[f] == "" {
			return Fail(incomplete[rt]), http.StatusBadRequest
		}
	}

	var reason string
	var err error
	switch rt {
	case "sign_up":
		reason, err = h.signUp(p)
	case "login":
		reason, err = h.login(p)
	case "update_location":
		reason, err = h.updateLocation(p)
	case "update_availability":
		reason, err = h.updateAvailability(p)
	case "signal":
		reason, err = h.raiseSignal(p)
	case "remove_signal", "answer_distress":
		reason, err = h.removeSignal(p)
	case "respond_signal":
		reason, err = h.respondSignal(p)
	case "check_distress":
		reason, err = h.checkDistress()
	case "check_status":
		reason, err = h.checkStatus(p)
	case "ask_ai":
		// declared in the client contract, never built
		return Fail("AI assistant is not implemented"), http.StatusNotImplemented
	}

	if err != nil {
		return Fail(reasonFor(err)), statusFor(err)
	}
	return Response{Response: "true", Reason: reason}, http.StatusOK
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		return "User email already registered"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, store.ErrSessionMismatch):
		return "Session expired, please log in again"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not registered"
	case errors.Is(err, store.ErrSignalNotFound):
		return "Distress signal not found"
	case errors.Is(err, store.ErrNoActiveSignal):
		return "No active distress signal"
	}
	return "Internal server error"
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, store.ErrSessionMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrSignalNotFound),
		errors.Is(err, store.ErrNoActiveSignal):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
