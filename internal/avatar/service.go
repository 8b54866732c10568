package avatar

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rook-computer/avatarmaker/internal/logger"
)

const (
	ContentType = "image/png"

	DefaultCacheSize = 512
)

// Service renders avatars to PNG and keeps the encoded bytes of
// deterministic configs in an LRU cache.
type Service struct {
	renderer *Renderer
	cache    *lru.Cache[Config, []byte]
	logger   logger.Logger
}

// NewService builds a Service. A cacheSize of 0 or less disables caching.
func NewService(renderer *Renderer, cacheSize int, log logger.Logger) (*Service, error) {
	if log == nil {
		log = logger.Noop{}
	}
	s := &Service{renderer: renderer, logger: log}
	if cacheSize > 0 {
		cache, err := lru.New[Config, []byte](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("avatar cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// Generate renders cfg and returns the PNG bytes and their content type.
// Configs with random colors are never cached. The returned slice belongs
// to the caller; cached bytes are copied out.
func (s *Service) Generate(ctx context.Context, cfg Config) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	cacheable := s.cache != nil && !cfg.RandomColors
	if cacheable {
		if data, ok := s.cache.Get(cfg); ok {
			s.logger.Debugf("avatar", "cache hit for %q", cfg.Text)
			return bytes.Clone(data), ContentType, nil
		}
		s.logger.Debugf("avatar", "cache miss for %q", cfg.Text)
	}

	res, err := s.renderer.Render(cfg)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, res.Image); err != nil {
		s.logger.Errorf("avatar", "png encode failed: %v", err)
		return nil, "", fmt.Errorf("encode png: %w", err)
	}
	data := buf.Bytes()
	if cacheable {
		s.cache.Add(cfg, bytes.Clone(data))
	}
	return data, ContentType, nil
}

// Len reports the number of cached avatars.
func (s *Service) Len() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// Purge drops every cached avatar.
func (s *Service) Purge() {
	if s.cache != nil {
		s.cache.Purge()
	}
}
