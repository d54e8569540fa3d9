package external_services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
)

// HTTPTranslator calls a LibreTranslate compatible /translate endpoint.
type HTTPTranslator struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

var _ contract.ITranslator = (*HTTPTranslator)(nil)

func NewHTTPTranslator(baseURL, apiKey string, timeout time.Duration) *HTTPTranslator {
	return &HTTPTranslator{
		endpoint: strings.TrimRight(baseURL, "/") + "/translate",
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

func (t *HTTPTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	payload, err := json.Marshal(translateRequest{Q: text, Source: source, Target: target, Format: "text", APIKey: t.apiKey})
	if err != nil {
		return "", fmt.Errorf("failed to encode translation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read translation response: %w", err)
	}
	var out translateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to decode translation response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation service returned %d: %s", resp.StatusCode, out.Error)
	}
	if out.TranslatedText == "" {
		return "", fmt.Errorf("translation service returned an empty translation")
	}
	return out.TranslatedText, nil
}
