package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"forgottenflavors/internal/domain"
	"forgottenflavors/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*HTTP)(nil)

// HTTP fetches the recipe catalog from a URL with a single GET. There
// is no retry; a failed fetch surfaces as one generic error screen.
type HTTP struct {
	url    string
	client *http.Client
	log    *logger.Logger
}

// NewHTTP creates an HTTP catalog source for the given URL.
func NewHTTP(url string, log *logger.Logger) *HTTP {
	return &HTTP{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log,
	}
}

// Load fetches and decodes the catalog.
func (s *HTTP) Load(ctx context.Context) ([]domain.Recipe, error) {
	s.log.Debug("fetching catalog from %s", s.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching catalog: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading catalog response: %w", err)
	}

	recipes, err := decodeRecipes(body)
	if err != nil {
		return nil, err
	}
	s.log.Info("loaded %d recipes from %s", len(recipes), s.url)
	return recipes, nil
}
