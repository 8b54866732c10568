package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rook-computer/avatarmaker/internal/avatar"
	"github.com/rook-computer/avatarmaker/internal/logger"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func apiV1Router(cfg APIV1Config) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = logger.Noop{}
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/avatar", func(w http.ResponseWriter, r *http.Request) { handleAvatar(w, r, cfg) })
	return mux
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func handleAvatar(w http.ResponseWriter, r *http.Request, cfg APIV1Config) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if cfg.Avatars == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "avatar generation not configured")
		return
	}

	avatarCfg, err := ConfigFromQuery(r.URL.Query(), cfg.Defaults)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	data, contentType, err := cfg.Avatars.Generate(r.Context(), avatarCfg)
	if err != nil {
		status, code := http.StatusInternalServerError, "render_failed"
		switch {
		case errors.Is(err, avatar.ErrBufferTooLarge):
			status, code = http.StatusRequestEntityTooLarge, "too_large"
		case avatar.IsConfigError(err):
			status, code = http.StatusBadRequest, "bad_request"
		}
		cfg.Logger.Errorf("web", "avatar for %q failed: %v", avatarCfg.Text, err)
		writeAPIError(w, status, code, err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if avatarCfg.RandomColors {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=86400")
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
