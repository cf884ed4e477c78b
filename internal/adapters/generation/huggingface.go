package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/platform/obs"
)

// Upper bound for a single generation request.
const requestTimeout = 60 * time.Second

// Largest response body read from a generator.
const maxResponseBytes = 1 << 20

var ErrUnexpectedResponse = errors.New("unexpected generator response")

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// HuggingFaceGenerator calls a hosted inference endpoint that accepts
// {"inputs": ..., "options": {...}} and answers with generated_text.
type HuggingFaceGenerator struct {
	url    string
	apiKey string
	client *http.Client
}

func NewHuggingFaceGenerator(url, apiKey string) (*HuggingFaceGenerator, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("huggingface generator: url is empty")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("huggingface generator: api key is empty")
	}

	return &HuggingFaceGenerator{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: requestTimeout},
	}, nil
}

type hfRequest struct {
	Inputs  string    `json:"inputs"`
	Options hfOptions `json:"options"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

func (g *HuggingFaceGenerator) GenerateText(ctx context.Context, prompt string) (_ string, err error) {
	defer obs.Time(ctx, "generation.huggingface.GenerateText")(&err)

	body, err := json.Marshal(hfRequest{Inputs: prompt, Options: hfOptions{WaitForModel: true}})
	if err != nil {
		return "", fmt.Errorf("huggingface: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("huggingface: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("huggingface: request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return "", fmt.Errorf("huggingface: read body: %w", err)
	}
	if len(raw) > maxResponseBytes {
		return "", fmt.Errorf("huggingface: %w: body exceeds %d bytes", ErrUnexpectedResponse, maxResponseBytes)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("huggingface: %w", &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(raw)),
		})
	}

	return extractGeneratedText(raw)
}

// extractGeneratedText unwraps [{"generated_text": "..."}]. Any other JSON
// value comes back as a *domain.RawReplyError so it is shown as raw text and
// never read as a plan; an array without generated_text is an error.
func extractGeneratedText(raw []byte) (string, error) {
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("huggingface: decode response: %w", err)
	}

	arr, ok := out.([]any)
	if !ok {
		return "", &domain.RawReplyError{Text: string(raw)}
	}
	if len(arr) > 0 {
		if first, ok := arr[0].(map[string]any); ok {
			if text, ok := first["generated_text"].(string); ok {
				return text, nil
			}
		}
	}
	return "", fmt.Errorf("huggingface: %w: no generated_text in array", ErrUnexpectedResponse)
}
