package observability

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCountsRequests(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/tasks", "GET", 200, time.Millisecond)
	m.RecordRequest("/tasks", "GET", 200, time.Millisecond)
	m.RecordRequest("/tasks", "POST", 201, time.Millisecond)

	assert.Equal(t, int64(2), m.RequestTotal("/tasks", "GET", 200))
	assert.Equal(t, int64(1), m.RequestTotal("/tasks", "POST", 201))
	assert.Equal(t, int64(0), m.RequestTotal("/tasks", "GET", 500))
}

func TestMetricsConcurrentRecording(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordRequest("/users", "GET", 200, 0)
			m.RecordError("/users", "GET", "INTERNAL_ERROR")
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), m.RequestTotal("/users", "GET", 200))
}
