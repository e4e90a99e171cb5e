package validator

import (
	"github.com/prometheus/client_golang/prometheus"

	"mangastudio/internal/manifest"
)

var (
	assetChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mangastudio",
			Subsystem: "models",
			Name:      "asset_checks_total",
			Help:      "Total asset checks by family and outcome",
		},
		[]string{"family", "outcome"},
	)

	assetPresent = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "mangastudio",
			Subsystem: "models",
			Name:      "asset_present",
			Help:      "1 if the asset passed its last validation, 0 otherwise",
		},
		[]string{"asset"},
	)

	validationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mangastudio",
			Subsystem: "models",
			Name:      "validation_duration_seconds",
			Help:      "Duration of full validation passes in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	manifestErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mangastudio",
			Subsystem: "models",
			Name:      "manifest_errors_total",
			Help:      "Total validation runs aborted by manifest load failures",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(assetChecksTotal, assetPresent, validationDuration, manifestErrorsTotal)
}

func manifestErrorReason(err error) string {
	switch {
	case manifest.IsManifestNotFound(err):
		return "not_found"
	case manifest.IsManifestMalformed(err):
		return "malformed"
	default:
		return "read_error"
	}
}
