package convert

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	channelQuery = "query"
	channelBody  = "body"

	outcomeOK          = "ok"
	outcomeMissing     = "missing"
	outcomeInvalid     = "invalid"
	outcomeInvalidBody = "invalid_body"
)

var conversionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "color_api_conversions_total",
		Help: "Total number of hex to rgb conversions by input channel and outcome",
	},
	[]string{"channel", "outcome"},
)
