package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Error classes for the three upstream failure modes the services
// distinguish: transport failures surface as the wrapped net/http error,
// non-success statuses wrap ErrStatus, undecodable bodies wrap ErrDecode.
var (
	ErrStatus = errors.New("unexpected upstream status")
	ErrDecode = errors.New("unexpected upstream response shape")
)

// Bodies are bounded before decoding; the facility APIs return small JSON
// documents and an unbounded read would let a misbehaving upstream exhaust
// the gateway.
const maxBodySize = 8 * 1024 * 1024

// rest is the shared transport every concrete client embeds.
type rest struct {
	http   *http.Client
	logger *zap.Logger
}

// getJSON issues a GET against rawURL and decodes the JSON body into out.
// endpoint names the call in wrapped errors and trace logs.
func (r rest) getJSON(ctx context.Context, endpoint, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	r.logger.Debug("upstream call",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: %w: HTTP %d", endpoint, ErrStatus, resp.StatusCode)
	}

	body := io.LimitReader(resp.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: %v", endpoint, ErrDecode, err)
	}
	return nil
}

// query renders base + path + encoded parameters.
func query(base, path string, params url.Values) string {
	u := base + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}
