// Package deepl implements translator.Provider using the DeepL v2 API.
package deepl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/polyglot/pkg/translator"
)

const (
	proBaseURL  = "https://api.deepl.com/v2"
	freeBaseURL = "https://api-free.deepl.com/v2"

	defaultTimeout = 10 * time.Second
)

// Client calls the DeepL translation API. It implements translator.Provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// New creates a DeepL client from cfg. The client is usable even without a
// credential; it then degrades every call to translator.ErrUnavailable so
// the editor can fall back to manual entry.
func New(cfg Config) *Client {
	baseURL := cfg.Endpoint
	if baseURL == "" {
		// DeepL hands out free-tier keys with an ":fx" suffix; those are
		// only valid against the free API host.
		if strings.HasSuffix(cfg.APIKey, ":fx") {
			baseURL = freeBaseURL
		} else {
			baseURL = proBaseURL
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
	}
}

// Enabled reports whether a credential is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Translate implements translator.Provider. All failure modes (missing
// credential, transport error, non-200 status, malformed response) are
// reported as translator.ErrUnavailable.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: no API key configured", translator.ErrUnavailable)
	}

	payload, err := json.Marshal(map[string]any{
		"text":        []string{text},
		"source_lang": strings.ToUpper(sourceLang),
		"target_lang": strings.ToUpper(targetLang),
	})
	if err != nil {
		return "", fmt.Errorf("%w: encoding request: %s", translator.ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: building request: %s", translator.ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s", translator.ErrUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %s", translator.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", translator.ErrUnavailable, resp.StatusCode)
	}

	translated := gjson.GetBytes(body, "translations.0.text")
	if !translated.Exists() {
		return "", fmt.Errorf("%w: malformed response", translator.ErrUnavailable)
	}
	return translated.String(), nil
}
