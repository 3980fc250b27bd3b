package service

import (
	"context"
	"errors"
	"time"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/model"
	"observer-portal/backend/internal/upstream"
)

var errUpstreamDown = errors.New("upstream unavailable")

// ── Mock ScheduleAPI ──

type mockScheduleAPI struct {
	flags       map[string]*model.InstrumentFlags
	flagsErr    error
	readyStates map[string]string
	readyFail   map[string]bool
	nights      []model.ScheduledNight
	nightsErr   error
	semester    string
	semesterErr error
}

func newMockScheduleAPI() *mockScheduleAPI {
	return &mockScheduleAPI{
		flags:       make(map[string]*model.InstrumentFlags),
		readyStates: make(map[string]string),
		readyFail:   make(map[string]bool),
		semester:    "2025B",
	}
}

func (m *mockScheduleAPI) InstrumentStatus(_ context.Context, _ string) (map[string]*model.InstrumentFlags, error) {
	if m.flagsErr != nil {
		return nil, m.flagsErr
	}
	return m.flags, nil
}

func (m *mockScheduleAPI) InstrumentReadyState(_ context.Context, instrument string) (string, error) {
	if m.readyFail[instrument] {
		return "", errUpstreamDown
	}
	return m.readyStates[instrument], nil
}

func (m *mockScheduleAPI) ScheduleByObserver(_ context.Context, _ int, _, _ string) ([]model.ScheduledNight, error) {
	if m.nightsErr != nil {
		return nil, m.nightsErr
	}
	return m.nights, nil
}

func (m *mockScheduleAPI) SemesterForDate(_ context.Context, _ string) (string, error) {
	if m.semesterErr != nil {
		return "", m.semesterErr
	}
	return m.semester, nil
}

// ── Mock EmployeeAPI ──

type mockEmployeeAPI struct {
	staff     map[string][]model.NightStaff
	staffFail map[string]bool
	links     []model.EmployeeLink
	linksErr  error
}

func newMockEmployeeAPI() *mockEmployeeAPI {
	return &mockEmployeeAPI{
		staff:     make(map[string][]model.NightStaff),
		staffFail: make(map[string]bool),
	}
}

func (m *mockEmployeeAPI) NightStaff(_ context.Context, date string) ([]model.NightStaff, error) {
	if m.staffFail[date] {
		return nil, errUpstreamDown
	}
	return m.staff[date], nil
}

func (m *mockEmployeeAPI) EmployeeLinks(_ context.Context, _ int) ([]model.EmployeeLink, error) {
	if m.linksErr != nil {
		return nil, m.linksErr
	}
	return m.links, nil
}

// ── Mock ProposalsAPI ──

type mockProposalsAPI struct {
	programs    []model.Program
	programsErr error
	sheets      map[string]*model.CoverSheet
	sheetFail   map[string]bool
	logs        map[string][]model.ObsLog
	logsFail    map[string]bool
	newest      string
	newestErr   error
}

func newMockProposalsAPI() *mockProposalsAPI {
	return &mockProposalsAPI{
		sheets:    make(map[string]*model.CoverSheet),
		sheetFail: make(map[string]bool),
		logs:      make(map[string][]model.ObsLog),
		logsFail:  make(map[string]bool),
	}
}

func (m *mockProposalsAPI) Programs(_ context.Context, _ int) ([]model.Program, error) {
	if m.programsErr != nil {
		return nil, m.programsErr
	}
	return m.programs, nil
}

func (m *mockProposalsAPI) CoverSheet(_ context.Context, programID string) (*model.CoverSheet, error) {
	if m.sheetFail[programID] {
		return nil, errUpstreamDown
	}
	if sheet, ok := m.sheets[programID]; ok {
		return sheet, nil
	}
	return nil, errUpstreamDown
}

func (m *mockProposalsAPI) ObsLogs(_ context.Context, _ int, semester string) ([]model.ObsLog, error) {
	if m.logsFail[semester] {
		return nil, errUpstreamDown
	}
	return m.logs[semester], nil
}

func (m *mockProposalsAPI) NewestSemester(_ context.Context) (string, error) {
	if m.newestErr != nil {
		return "", m.newestErr
	}
	return m.newest, nil
}

// ── Mock ObservingAPI ──

type mockObservingAPI struct {
	requests []model.ObservingRequest
	err      error
}

func (m *mockObservingAPI) Requests(_ context.Context, _ int) ([]model.ObservingRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.requests, nil
}

// ── Mock MetricsAPI ──

type mockMetricsAPI struct {
	rows []model.NightMetrics
	err  error
}

func (m *mockMetricsAPI) NightMetrics(_ context.Context, _ string) ([]model.NightMetrics, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

// ── Mock IdentityAPI ──

type mockIdentityAPI struct {
	observers map[string]*model.Observer
	calls     int
}

func newMockIdentityAPI() *mockIdentityAPI {
	return &mockIdentityAPI{observers: make(map[string]*model.Observer)}
}

func (m *mockIdentityAPI) ObserverByCookie(_ context.Context, cookie string) (*model.Observer, error) {
	m.calls++
	if obs, ok := m.observers[cookie]; ok {
		return obs, nil
	}
	return nil, errUpstreamDown
}

// ── Test wiring ──

// testUpstreams aggregates all mocks so tests can seed data on the concrete
// types while services consume the interface aggregate.
type testUpstreams struct {
	schedule  *mockScheduleAPI
	employee  *mockEmployeeAPI
	proposals *mockProposalsAPI
	observing *mockObservingAPI
	metrics   *mockMetricsAPI
	identity  *mockIdentityAPI
}

func newTestUpstreams() *testUpstreams {
	return &testUpstreams{
		schedule:  newMockScheduleAPI(),
		employee:  newMockEmployeeAPI(),
		proposals: newMockProposalsAPI(),
		observing: &mockObservingAPI{},
		metrics:   &mockMetricsAPI{},
		identity:  newMockIdentityAPI(),
	}
}

func (u *testUpstreams) toClients() *upstream.Clients {
	return &upstream.Clients{
		Schedule:  u.schedule,
		Employee:  u.employee,
		Proposals: u.proposals,
		Observing: u.observing,
		Metrics:   u.metrics,
		Identity:  u.identity,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Night: config.NightConfig{
			UTCOffsetHours:  -10,
			CutoverHour:     8,
			LogSemesters:    3,
			OptionSemesters: 5,
		},
		Session: config.SessionConfig{
			CookieName: "portal_session",
			CacheTTL:   time.Minute,
		},
		Links: config.LinksConfig{
			RequestEdit: "https://www3.example.org/request/edit?",
			LogView:     "https://www3.example.org/logs/",
		},
	}
}

// fixedNow is 2025-08-15 22:00 UTC, i.e. 12:00 local on the same day under
// the -10h offset, safely past the morning cutover.
func fixedNow() time.Time {
	return time.Date(2025, 8, 15, 22, 0, 0, 0, time.UTC)
}
