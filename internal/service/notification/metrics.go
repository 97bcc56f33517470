package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultPublished = "published"
	resultFailed    = "failed"
)

var RelayPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notification_relay_messages_total",
		Help: "Notifications handed to the broker by the relay, by result",
	},
	[]string{"result"},
)
