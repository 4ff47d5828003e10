package circuitbreaker

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// CreateCircuitBreaker trips once at least three calls were made and 60% of
// them failed, then probes again after Timeout.
func CreateCircuitBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	var st gobreaker.Settings
	st.Name = name
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return gobreaker.NewCircuitBreaker[[]byte](st)
}
