package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"observer-portal/backend/internal/model"
)

type proposalsClient struct {
	base string
	rest
}

func (c *proposalsClient) Programs(ctx context.Context, obsID int) ([]model.Program, error) {
	u := query(c.base, "/getProgramsByUser", url.Values{"obsid": {strconv.Itoa(obsID)}})

	var payload struct {
		Programs []model.Program `json:"programs"`
	}
	if err := c.getJSON(ctx, "proposals.getProgramsByUser", u, &payload); err != nil {
		return nil, err
	}
	return payload.Programs, nil
}

func (c *proposalsClient) CoverSheet(ctx context.Context, programID string) (*model.CoverSheet, error) {
	u := query(c.base, "/getCoverSheetInfo", url.Values{"ktn": {programID}})

	var sheet model.CoverSheet
	if err := c.getJSON(ctx, "proposals.getCoverSheetInfo", u, &sheet); err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (c *proposalsClient) ObsLogs(ctx context.Context, obsID int, semester string) ([]model.ObsLog, error) {
	u := query(c.base, "/getObsLogInfo", url.Values{
		"obsid":    {strconv.Itoa(obsID)},
		"semester": {semester},
	})

	var payload struct {
		Logs []model.ObsLog `json:"logs"`
	}
	if err := c.getJSON(ctx, "proposals.getObsLogInfo", u, &payload); err != nil {
		return nil, err
	}
	return payload.Logs, nil
}

func (c *proposalsClient) NewestSemester(ctx context.Context) (string, error) {
	u := query(c.base, "/getNewestSemester", nil)

	var payload struct {
		Semester string `json:"semester"`
	}
	if err := c.getJSON(ctx, "proposals.getNewestSemester", u, &payload); err != nil {
		return "", err
	}
	if payload.Semester == "" {
		return "", fmt.Errorf("proposals.getNewestSemester: %w: empty semester", ErrDecode)
	}
	return payload.Semester, nil
}
