package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"observer-portal/backend/internal/model"
)

type identityClient struct {
	url string
	rest
}

// ObserverByCookie resolves the session by forwarding the browser's raw
// Cookie header. The cookie is opaque to the gateway; the identity service
// owns session establishment and expiry.
func (c *identityClient) ObserverByCookie(ctx context.Context, cookie string) (*model.Observer, error) {
	const endpoint = "identity.getUserInfo"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cookie", cookie)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: %w: HTTP %d", endpoint, ErrStatus, resp.StatusCode)
	}

	var observer model.Observer
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&observer); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", endpoint, ErrDecode, err)
	}
	if observer.ID == 0 {
		return nil, fmt.Errorf("%s: %w: missing observer id", endpoint, ErrDecode)
	}
	return &observer, nil
}
