package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"observer-portal/backend/internal/model"
)

func setupTestRequestService(ups *testUpstreams) *requestService {
	svc := NewRequestService(testConfig(), ups.toClients(), zap.NewNop()).(*requestService)
	svc.now = fixedNow
	return svc
}

func seedRequests(ups *testUpstreams) {
	ups.observing.requests = []model.ObservingRequest{
		{ReqNo: 101, Semester: "2025A", ProjCode: "2025A_N001", Status: "approved"},
		{ReqNo: 102, Semester: "2025B", ProjCode: "2025B_N001", Status: "pending"},
		{ReqNo: 103, Semester: "2025B", ProjCode: "2025B_N002", Status: "pending"},
	}
}

func TestRequestsNewestFirstFilteredByCurrentSemester(t *testing.T) {
	ups := newTestUpstreams()
	seedRequests(ups)
	svc := setupTestRequestService(ups)

	resp, err := svc.List(context.Background(), 42, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(resp.Requests) != 2 {
		t.Fatalf("got %d requests, want 2", len(resp.Requests))
	}
	if resp.Requests[0].ReqNo != 103 || resp.Requests[1].ReqNo != 102 {
		t.Errorf("order = %d,%d, want 103,102", resp.Requests[0].ReqNo, resp.Requests[1].ReqNo)
	}
	if resp.Requests[0].EditURL != "https://www3.example.org/request/edit?ReqNo=103" {
		t.Errorf("edit url = %s", resp.Requests[0].EditURL)
	}
}

func TestRequestsAllDisablesFilter(t *testing.T) {
	ups := newTestUpstreams()
	seedRequests(ups)
	svc := setupTestRequestService(ups)

	resp, err := svc.List(context.Background(), 42, AllSemesters)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(resp.Requests) != 3 {
		t.Fatalf("got %d requests, want 3", len(resp.Requests))
	}
	if resp.Options[0] != AllSemesters {
		t.Errorf("first option = %s, want %s", resp.Options[0], AllSemesters)
	}
}

func TestRequestsPropagatesFetchError(t *testing.T) {
	ups := newTestUpstreams()
	ups.observing.err = errUpstreamDown
	svc := setupTestRequestService(ups)

	if _, err := svc.List(context.Background(), 42, ""); !errors.Is(err, ErrRequestsUnavailable) {
		t.Fatalf("err = %v, want ErrRequestsUnavailable", err)
	}
}

func TestRequestsRendersWithoutNewestSemester(t *testing.T) {
	ups := newTestUpstreams()
	seedRequests(ups)
	ups.proposals.newestErr = errUpstreamDown
	svc := setupTestRequestService(ups)

	resp, err := svc.List(context.Background(), 42, "")
	if err != nil {
		t.Fatalf("newest-semester failure must not fail the list, got %v", err)
	}
	if len(resp.Requests) != 2 {
		t.Fatalf("got %d requests, want 2", len(resp.Requests))
	}
}
