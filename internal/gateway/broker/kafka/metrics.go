package kafka

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var publishDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "broker_kafka_publish_duration_seconds",
		Help:    "Duration of notification publishing to Kafka",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"topic", "status"},
)

func observe(topic string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	publishDuration.WithLabelValues(topic, status).Observe(time.Since(start).Seconds())
}
