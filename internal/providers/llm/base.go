package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/naeemahmed/doodlesolve/internal/core"
	"github.com/naeemahmed/doodlesolve/pkg/retry"
)

type baseProvider struct {
	client  *http.Client
	retrier *retry.Retrier
	baseURL string
	apiKey  string
	model   string
}

func newBaseProvider(baseURL, apiKey, model string) baseProvider {
	return baseProvider{
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		retrier: retry.NewTransportRetrier(),
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

// postJSON sends the payload and returns the response body. Network
// errors and non-200 responses are retried with backoff; whatever
// survives the retrier is classified as core.ErrRemoteUnavailable.
func (b *baseProvider) postJSON(ctx context.Context, path string, body any, headers map[string]string) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	var data []byte
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := b.client.Do(req)
		if err != nil {
			return fmt.Errorf("request: %w", err)
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
		}
		return nil
	}

	if err := b.retrier.Do(ctx, op); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrRemoteUnavailable, err)
	}
	return data, nil
}
