// Package web adapts the dispatcher to the single public endpoint the mobile
// client talks to: GET or POST /app with a flat key-value parameter set,
// always answered with the {"response","reason"} JSON envelope.
package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"distress-relay-api/internal/handler"
	"distress-relay-api/internal/middleware"
)

type Server struct {
	h   *handler.Handler
	rl  *middleware.RateLimiter
	log *slog.Logger
}

func New(h *handler.Handler, rl *middleware.RateLimiter, log *slog.Logger) *Server {
	return &Server{h: h, rl: rl, log: log}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/app", s.serveApp)
	return mux
}

func (s *Server) serveApp(w http.ResponseWriter, r *http.Request) {
	// the client is served from a different origin (Capacitor webview or
	// localhost dev server) and the deployed apps depend on the open policy
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, handler.Fail("Invalid request data"))
		return
	}

	p, err := params(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, handler.Fail("Invalid request data"))
		return
	}

	rt := p["request_type"]
	if !s.rl.Allow(rt, clientIP(r)) {
		s.log.Warn("rate limited", "type", rt, "remote", r.RemoteAddr)
		writeJSON(w, http.StatusTooManyRequests, handler.Fail("Too many requests"))
		return
	}

	resp, status := s.h.Dispatch(p)
	s.log.Info("request",
		"type", rt,
		"status", status,
		"ok", resp.Response == "true",
		"remote", r.RemoteAddr,
	)
	writeJSON(w, status, resp)
}

// params flattens the request into one key-value set. GET carries everything
// in the query string; POST carries a urlencoded form body (the original
// client) or a JSON object. Repeated keys keep the first value.
func params(r *http.Request) (handler.Params, error) {
	p := handler.Params{}

	if r.Method == http.MethodPost &&
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, err
		}
		for k, v := range body {
			p[k] = fmt.Sprint(v)
		}
		// query parameters still apply alongside a JSON body
		for k, v := range r.URL.Query() {
			if _, ok := p[k]; !ok && len(v) > 0 {
				p[k] = v[0]
			}
		}
		return p, nil
	}

	// ParseForm merges the query string and any urlencoded body
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	for k, v := range r.Form {
		if len(v) > 0 {
			p[k] = v[0]
		}
	}
	return p, nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
