// Package upstream holds the gateway's fetch primitives: one typed client
// per facility REST service. Base URLs arrive through configuration at
// construction time; nothing in this package reads ambient globals.
package upstream

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/model"
)

// ScheduleAPI covers the telescope schedule service.
type ScheduleAPI interface {
	// InstrumentStatus returns the per-instrument availability flags for an
	// operational date. A nil flags value means the upstream reported no
	// record for that instrument.
	InstrumentStatus(ctx context.Context, date string) (map[string]*model.InstrumentFlags, error)
	// InstrumentReadyState returns the live readiness string for one
	// instrument.
	InstrumentReadyState(ctx context.Context, instrument string) (string, error)
	// ScheduleByObserver returns the observer's allocations within
	// [startDate, endDate], in the service's own order.
	ScheduleByObserver(ctx context.Context, obsID int, startDate, endDate string) ([]model.ScheduledNight, error)
	// SemesterForDate returns the semester label active on a date.
	SemesterForDate(ctx context.Context, date string) (string, error)
}

// EmployeeAPI covers the staffing service.
type EmployeeAPI interface {
	// NightStaff returns all staff assignments for a date, every telescope;
	// callers filter by telescope and role.
	NightStaff(ctx context.Context, date string) ([]model.NightStaff, error)
	// EmployeeLinks returns personalised external links for an observer.
	EmployeeLinks(ctx context.Context, obsID int) ([]model.EmployeeLink, error)
}

// ProposalsAPI covers the proposal/cover-sheet service.
type ProposalsAPI interface {
	// Programs returns the observer's semester-qualified program ids.
	Programs(ctx context.Context, obsID int) ([]model.Program, error)
	// CoverSheet returns submission metadata for one program id.
	CoverSheet(ctx context.Context, programID string) (*model.CoverSheet, error)
	// ObsLogs returns the observing logs for one observer and semester.
	ObsLogs(ctx context.Context, obsID int, semester string) ([]model.ObsLog, error)
	// NewestSemester returns the latest semester open for submission.
	NewestSemester(ctx context.Context) (string, error)
}

// ObservingAPI covers the observing-request service.
type ObservingAPI interface {
	// Requests returns the observer's time-allocation requests.
	Requests(ctx context.Context, obsID int) ([]model.ObservingRequest, error)
}

// MetricsAPI covers the astronomical timing service.
type MetricsAPI interface {
	// NightMetrics returns the timing rows for a UT date.
	NightMetrics(ctx context.Context, utcDate string) ([]model.NightMetrics, error)
}

// IdentityAPI resolves the ambient session cookie to an observer profile.
type IdentityAPI interface {
	// ObserverByCookie forwards the raw Cookie header to the identity
	// service and returns the authenticated profile.
	ObserverByCookie(ctx context.Context, cookie string) (*model.Observer, error)
}

// Clients aggregates every upstream behind its interface, mirroring how the
// services consume them.
type Clients struct {
	Schedule  ScheduleAPI
	Employee  EmployeeAPI
	Proposals ProposalsAPI
	Observing ObservingAPI
	Metrics   MetricsAPI
	Identity  IdentityAPI
}

// NewClients builds the full client set from configuration.
func NewClients(cfg *config.UpstreamConfig, logger *zap.Logger) *Clients {
	transport := rest{
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}

	return &Clients{
		Schedule:  &scheduleClient{base: cfg.ScheduleAPI, rest: transport},
		Employee:  &employeeClient{base: cfg.EmployeeAPI, rest: transport},
		Proposals: &proposalsClient{base: cfg.ProposalsAPI, rest: transport},
		Observing: &observingClient{base: cfg.ObservingAPI, rest: transport},
		Metrics:   &metricsClient{base: cfg.MetricsAPI, rest: transport},
		Identity:  &identityClient{url: cfg.IdentityURL, rest: transport},
	}
}
