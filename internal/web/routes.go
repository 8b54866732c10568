package web

import (
	"context"
	"net/http"

	"github.com/rook-computer/avatarmaker/internal/avatar"
	"github.com/rook-computer/avatarmaker/internal/logger"
)

// Generator produces encoded avatars; *avatar.Service implements it.
type Generator interface {
	Generate(ctx context.Context, cfg avatar.Config) ([]byte, string, error)
}

// APIV1Config wires the v1 handlers. A nil Avatars answers 501.
type APIV1Config struct {
	Avatars  Generator
	Defaults avatar.Defaults
	Logger   logger.Logger
}

// RegisterAPIV1 registers the public API routes under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, cfg APIV1Config) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(cfg)))
}

// NewDefaultMux builds the mux served by `avatarmaker serve`.
func NewDefaultMux(cfg APIV1Config) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, cfg)
	return mux
}
