package upstream

import (
	"context"
	"net/url"
	"strconv"

	"observer-portal/backend/internal/model"
)

type employeeClient struct {
	base string
	rest
}

func (c *employeeClient) NightStaff(ctx context.Context, date string) ([]model.NightStaff, error) {
	u := query(c.base, "/getNightStaff", url.Values{"date": {date}})

	var staff []model.NightStaff
	if err := c.getJSON(ctx, "employee.getNightStaff", u, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (c *employeeClient) EmployeeLinks(ctx context.Context, obsID int) ([]model.EmployeeLink, error) {
	u := query(c.base, "/getEmployeeLinks", url.Values{"obsid": {strconv.Itoa(obsID)}})

	var payload struct {
		Links []model.EmployeeLink `json:"links"`
	}
	if err := c.getJSON(ctx, "employee.getEmployeeLinks", u, &payload); err != nil {
		return nil, err
	}
	return payload.Links, nil
}
