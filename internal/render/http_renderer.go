package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/smallbiznis/docstudio/internal/docerr"
	"github.com/smallbiznis/docstudio/internal/observability/tracing"
)

// HTTPRenderer delegates rendering to an external document service. It
// never retries; the caller owns cancellation and retry policy.
type HTTPRenderer struct {
	endpoint string
	client   *http.Client
}

func NewHTTPRenderer(endpoint string, client *http.Client) *HTTPRenderer {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPRenderer{
		endpoint: endpoint,
		client:   tracing.WrapHTTPClient(client),
	}
}

// Render posts the prepared input and returns the document bytes.
func (r *HTTPRenderer) Render(ctx context.Context, input Input) ([]byte, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, &docerr.RenderError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &docerr.RenderError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &docerr.RenderError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &docerr.RenderError{Err: fmt.Errorf("renderer returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &docerr.RenderError{Err: err}
	}
	return body, nil
}
