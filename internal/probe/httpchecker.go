package probe

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/hamed0406/apphealth/internal/domain"
)

type HTTPChecker struct {
	Client *http.Client
}

// NewHTTPChecker uses the default redirect policy, so redirects are followed.
func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
	}
}

func (h *HTTPChecker) Check(ctx context.Context, target string) domain.Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return domain.Failure{Description: err.Error()}
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return domain.Failure{Description: err.Error()}
	}
	defer resp.Body.Close()

	// the client timeout also covers reading the body
	n, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		return domain.Failure{Description: err.Error()}
	}
	return domain.Success{StatusCode: resp.StatusCode, Bytes: n}
}
