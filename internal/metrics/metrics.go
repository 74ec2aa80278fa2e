package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scheerer/lightsd/internal/led"
	"github.com/scheerer/lightsd/lights"
)

var (
	setLightTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lightsd",
		Name:      "set_light_total",
		Help:      "SetLight calls by requested type and status",
	}, []string{"type", "status"})

	renderedLuma = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "lightsd",
		Name:      "rendered_luma",
		Help:      "Luma (0-255) of the state last rendered by each handler",
	}, []string{"handler"})

	renderedWinner = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "lightsd",
		Name:      "rendered_winner",
		Help:      "1 for the channel type whose state each handler currently shows",
	}, []string{"handler", "type"})

	sinkFaultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lightsd",
		Name:      "sink_faults_total",
		Help:      "Absorbed attribute read/write failures",
	}, []string{"op", "channel"})
)

// ObserveSetLight counts one SetLight call.
func ObserveSetLight(t lights.ChannelType, status lights.Status) {
	setLightTotal.WithLabelValues(t.String(), status.String()).Inc()
}

// ObserveRendered records what a handler is now showing.
func ObserveRendered(r led.Rendered) {
	handler := r.Handler.String()
	renderedLuma.WithLabelValues(handler).Set(float64(led.ExtractLuma(r.State)))
	renderedWinner.DeletePartialMatch(prometheus.Labels{"handler": handler})
	if led.IsLit(r.State) {
		renderedWinner.WithLabelValues(handler, r.Winner.String()).Set(1)
	}
}

// ObserveSinkFault counts an absorbed sink failure.
func ObserveSinkFault(op, channel string) {
	sinkFaultsTotal.WithLabelValues(op, channel).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
