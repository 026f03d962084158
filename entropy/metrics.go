package entropy

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

var fillBytes = metrics.NewCounter("secrandom_fill_bytes_total")

func countFill(backend string, n int) {
	fillBytes.Add(n)
	metrics.GetOrCreateCounter(fmt.Sprintf(`secrandom_backend_fills_total{backend=%q}`, backend)).Inc()
}

func countFailure(backend string) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`secrandom_backend_failures_total{backend=%q}`, backend)).Inc()
}

func countDeviceOpen() {
	metrics.GetOrCreateCounter("secrandom_device_opens_total").Inc()
}
