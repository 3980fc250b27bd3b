package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"observer-portal/backend/internal/model"
)

func setupTestLogService(ups *testUpstreams) *logService {
	svc := NewLogService(testConfig(), ups.toClients(), zap.NewNop()).(*logService)
	svc.now = fixedNow
	return svc
}

func TestLogsSingleSemester(t *testing.T) {
	ups := newTestUpstreams()
	ups.proposals.logs["2025A"] = []model.ObsLog{
		{Filename: "log_2025A_1.html", Title: "Night 1"},
	}
	svc := setupTestLogService(ups)

	resp, err := svc.List(context.Background(), 42, "2025A")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(resp.Logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(resp.Logs))
	}
	if resp.Logs[0].ViewURL != "https://www3.example.org/logs/log_2025A_1.html" {
		t.Errorf("view url = %s", resp.Logs[0].ViewURL)
	}
	if resp.Options[0] != AllLogs {
		t.Errorf("first option = %s, want %s", resp.Options[0], AllLogs)
	}
}

func TestLogsAllSemestersConcatenatesInExpansionOrder(t *testing.T) {
	ups := newTestUpstreams()
	// Current is 2025B; expansion is 2025B, 2025A, 2024B, 2024A.
	ups.proposals.logs["2025B"] = []model.ObsLog{{Filename: "b.html", Title: "B"}}
	ups.proposals.logs["2025A"] = []model.ObsLog{{Filename: "a.html", Title: "A"}}
	ups.proposals.logs["2024B"] = []model.ObsLog{{Filename: "c.html", Title: "C"}}
	svc := setupTestLogService(ups)

	resp, err := svc.List(context.Background(), 42, AllLogs)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(resp.Logs) != 3 {
		t.Fatalf("got %d logs, want 3", len(resp.Logs))
	}
	wantTitles := []string{"B", "A", "C"}
	for i, log := range resp.Logs {
		if log.Title != wantTitles[i] {
			t.Errorf("log %d = %s, want %s", i, log.Title, wantTitles[i])
		}
	}
}

func TestLogsAllSemestersToleratesSemesterFailure(t *testing.T) {
	ups := newTestUpstreams()
	ups.proposals.logs["2025B"] = []model.ObsLog{{Filename: "b.html", Title: "B"}}
	ups.proposals.logs["2025A"] = []model.ObsLog{{Filename: "a.html", Title: "A"}}
	ups.proposals.logsFail["2025A"] = true
	svc := setupTestLogService(ups)

	resp, err := svc.List(context.Background(), 42, AllLogs)
	if err != nil {
		t.Fatalf("a failed semester must not fail the aggregate, got %v", err)
	}
	if len(resp.Logs) != 1 || resp.Logs[0].Title != "B" {
		t.Errorf("logs = %v, want just B", resp.Logs)
	}
}

func TestLogsSingleSemesterFailureIsEmpty(t *testing.T) {
	ups := newTestUpstreams()
	ups.proposals.logsFail["2025B"] = true
	svc := setupTestLogService(ups)

	resp, err := svc.List(context.Background(), 42, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(resp.Logs) != 0 {
		t.Errorf("got %d logs, want 0", len(resp.Logs))
	}
}

func TestLogsPropagatesSemesterError(t *testing.T) {
	ups := newTestUpstreams()
	ups.schedule.semesterErr = errUpstreamDown
	svc := setupTestLogService(ups)

	if _, err := svc.List(context.Background(), 42, ""); !errors.Is(err, ErrSemesterUnavailable) {
		t.Fatalf("err = %v, want ErrSemesterUnavailable", err)
	}
}

func TestLogsEscapesFilenames(t *testing.T) {
	ups := newTestUpstreams()
	ups.proposals.logs["2025B"] = []model.ObsLog{
		{Filename: "log 2025B #1.html", Title: "Spaced"},
	}
	svc := setupTestLogService(ups)

	resp, err := svc.List(context.Background(), 42, "2025B")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.Logs[0].ViewURL != "https://www3.example.org/logs/log%202025B%20%231.html" {
		t.Errorf("view url = %s", resp.Logs[0].ViewURL)
	}
}
