package nutricoach

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// FruityViceClient looks up fruit nutrition facts from the public
// FruityVice API.
type FruityViceClient struct {
	baseURL string
	client  *http.Client
}

func NewFruityViceClient(baseURL string) *FruityViceClient {
	return &FruityViceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *FruityViceClient) Lookup(ctx context.Context, name string) (*Fruit, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, ErrFruitNotFound
	}

	endpoint := fmt.Sprintf("%s/api/fruit/%s", f.baseURL, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("fruit lookup: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fruit lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrFruitNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fruit lookup: status %d", resp.StatusCode)
	}

	var fruit Fruit
	if err := json.NewDecoder(resp.Body).Decode(&fruit); err != nil {
		return nil, fmt.Errorf("fruit lookup: %w", err)
	}
	return &fruit, nil
}
