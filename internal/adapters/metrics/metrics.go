package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommandsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chanager_commands_total",
		Help: "Total number of slash commands handled",
	}, []string{"command", "status"})

	CategorySelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chanager_category_selections_total",
		Help: "Total number of category picker selections",
	}, []string{"status"})

	PinNoticesDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chanager_pin_notices_deleted_total",
		Help: "Total number of pin notification deletions attempted",
	}, []string{"status"})

	DiscordRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "discord_request_duration_seconds",
		Help:    "Duration of Discord REST requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	DiscordRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discord_requests_total",
		Help: "Total number of Discord REST requests",
	}, []string{"endpoint", "status"})
)

func Status(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
