package upstream

import (
	"context"
	"net/url"
	"strconv"

	"observer-portal/backend/internal/model"
)

type observingClient struct {
	base string
	rest
}

func (c *observingClient) Requests(ctx context.Context, obsID int) ([]model.ObservingRequest, error) {
	u := query(c.base, "/getObsRequests", url.Values{"obsid": {strconv.Itoa(obsID)}})

	var payload struct {
		Requests []model.ObservingRequest `json:"requests"`
	}
	if err := c.getJSON(ctx, "observing.getObsRequests", u, &payload); err != nil {
		return nil, err
	}
	return payload.Requests, nil
}
