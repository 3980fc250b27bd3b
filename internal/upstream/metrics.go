package upstream

import (
	"context"
	"net/url"

	"observer-portal/backend/internal/model"
)

type metricsClient struct {
	base string
	rest
}

func (c *metricsClient) NightMetrics(ctx context.Context, utcDate string) ([]model.NightMetrics, error) {
	u := query(c.base, "/getDateMetrics", url.Values{
		"date":   {utcDate},
		"column": {"all"},
		"output": {"json"},
	})

	var metrics []model.NightMetrics
	if err := c.getJSON(ctx, "metrics.getDateMetrics", u, &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}
