package dto

import "observer-portal/backend/internal/model"

// MetricsResponse is the night-metrics strip for the current operational
// UT date. Metrics is nil when the service reported no row for the date.
type MetricsResponse struct {
	Date    string              `json:"date"`
	Metrics *model.NightMetrics `json:"metrics"`
}
