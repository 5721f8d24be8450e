package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"
)

// DefaultModels is the static fallback served whenever the directory
// lookup fails for any reason.
var DefaultModels = []string{
	"deepseek/deepseek-chat",
	"anthropic/claude-3.5-sonnet",
	"openai/gpt-4o",
}

const modelsTimeout = 10 * time.Second

type modelList struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Models fetches the provider's model catalog and returns the sorted IDs.
// Best effort only: on any failure (transport, auth, malformed body, empty
// list) it returns a fresh copy of DefaultModels and fallback=true. Two
// consecutive failures yield identical lists.
func (c *Client) Models(ctx context.Context, key string) (ids []string, fallback bool) {
	ctx, cancel := context.WithTimeout(ctx, modelsTimeout)
	defer cancel()

	url := strings.TrimRight(c.BaseURL, "/") + "/models"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fallbackModels()
	}
	c.setHeaders(req, key)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fallbackModels()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fallbackModels()
	}

	var list modelList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return fallbackModels()
	}
	if len(list.Data) == 0 {
		return fallbackModels()
	}

	ids = make([]string, 0, len(list.Data))
	for _, m := range list.Data {
		ids = append(ids, m.ID)
	}
	sort.Strings(ids)
	return ids, false
}

func fallbackModels() ([]string, bool) {
	out := make([]string, len(DefaultModels))
	copy(out, DefaultModels)
	return out, true
}
