package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"observer-portal/backend/internal/model"
)

type scheduleClient struct {
	base string
	rest
}

// InstrumentStatus fetches the flag map for one operational date.
// The upstream returns one map per requested day; the gateway always asks
// for a single day and takes the first.
func (c *scheduleClient) InstrumentStatus(ctx context.Context, date string) (map[string]*model.InstrumentFlags, error) {
	u := query(c.base, "/getInstrumentStatus", url.Values{
		"date":    {date},
		"numdays": {"1"},
	})

	var days []map[string]*model.InstrumentFlags
	if err := c.getJSON(ctx, "schedule.getInstrumentStatus", u, &days); err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("schedule.getInstrumentStatus: %w: empty day list", ErrDecode)
	}
	return days[0], nil
}

func (c *scheduleClient) InstrumentReadyState(ctx context.Context, instrument string) (string, error) {
	u := query(c.base, "/getInstrumentReadyState", url.Values{
		"instrument": {instrument},
	})

	var payload struct {
		State string `json:"State"`
	}
	if err := c.getJSON(ctx, "schedule.getInstrumentReadyState", u, &payload); err != nil {
		return "", err
	}
	return payload.State, nil
}

func (c *scheduleClient) ScheduleByObserver(ctx context.Context, obsID int, startDate, endDate string) ([]model.ScheduledNight, error) {
	u := query(c.base, "/getScheduleByUser", url.Values{
		"obsid":     {strconv.Itoa(obsID)},
		"startdate": {startDate},
		"enddate":   {endDate},
	})

	var nights []model.ScheduledNight
	if err := c.getJSON(ctx, "schedule.getScheduleByUser", u, &nights); err != nil {
		return nil, err
	}
	return nights, nil
}

func (c *scheduleClient) SemesterForDate(ctx context.Context, date string) (string, error) {
	u := query(c.base, "/getSemester", url.Values{"date": {date}})

	var payload struct {
		Semester string `json:"semester"`
	}
	if err := c.getJSON(ctx, "schedule.getSemester", u, &payload); err != nil {
		return "", err
	}
	if payload.Semester == "" {
		return "", fmt.Errorf("schedule.getSemester: %w: empty semester", ErrDecode)
	}
	return payload.Semester, nil
}
