package service

import (
	"context"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/upstream"
	"observer-portal/backend/pkg/nightdate"
)

// nightRule builds the operational-date rule from configuration. Every
// service derives dates through this one rule so the offset/cutover pair
// cannot drift apart between call sites.
func nightRule(cfg *config.Config) nightdate.Rule {
	return nightdate.Rule{
		UTCOffsetHours: cfg.Night.UTCOffsetHours,
		CutoverHour:    cfg.Night.CutoverHour,
	}
}

// currentSemester resolves the semester label active on an operational
// date via the schedule service.
func currentSemester(ctx context.Context, sched upstream.ScheduleAPI, dates nightdate.Dates) (string, error) {
	return sched.SemesterForDate(ctx, dates.LocalString())
}
