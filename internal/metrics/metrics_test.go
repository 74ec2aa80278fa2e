package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/scheerer/lightsd/internal/led"
	"github.com/scheerer/lightsd/lights"
)

func TestObserveSetLight(t *testing.T) {
	before := testutil.ToFloat64(setLightTotal.WithLabelValues("battery", "success"))
	ObserveSetLight(lights.Battery, lights.Success)
	ObserveSetLight(lights.Battery, lights.Success)
	assert.Equal(t, before+2, testutil.ToFloat64(setLightTotal.WithLabelValues("battery", "success")))
}

func TestObserveRendered(t *testing.T) {
	ObserveRendered(led.Rendered{
		Requested: lights.Battery,
		Winner:    lights.Attention,
		Handler:   led.HandlerNotification,
		State:     lights.LightState{Color: 0xFFFF0000},
	})
	assert.Equal(t, 76.0, testutil.ToFloat64(renderedLuma.WithLabelValues("notification")))
	assert.Equal(t, 1.0, testutil.ToFloat64(renderedWinner.WithLabelValues("notification", "attention")))

	// turning off clears the winner
	ObserveRendered(led.Rendered{
		Requested: lights.Attention,
		Winner:    lights.Attention,
		Handler:   led.HandlerNotification,
	})
	assert.Equal(t, 0.0, testutil.ToFloat64(renderedLuma.WithLabelValues("notification")))
	assert.Equal(t, 0, testutil.CollectAndCount(renderedWinner))
}

func TestObserveSinkFault(t *testing.T) {
	ObserveSinkFault("read", "red")
	assert.Equal(t, 1.0, testutil.ToFloat64(sinkFaultsTotal.WithLabelValues("read", "red")))
}

func TestHandler(t *testing.T) {
	ObserveSetLight(lights.Buttons, lights.NotSupported)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lightsd_set_light_total{status="not_supported",type="buttons"}`)
}
