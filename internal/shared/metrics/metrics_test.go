package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordConversion(t *testing.T) {
	c := NewCollector()
	c.RecordConversion("mars")
	c.RecordConversion("mars")
	c.RecordConversion("earth")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.conversions.WithLabelValues("mars")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.conversions.WithLabelValues("earth")))
}

func TestCatalogSource(t *testing.T) {
	c := NewCollector()
	c.SetCatalogSource("database")
	c.SetCatalogSource("builtin")

	assert.Equal(t, 1, testutil.CollectAndCount(c.catalogSource))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.catalogSource.WithLabelValues("builtin")))
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.RecordConversion("venus")
		c.RecordRequest("ages", http.StatusOK, time.Millisecond)
		c.SetCatalogSource("builtin")
	})
}

func TestHandler(t *testing.T) {
	c := NewCollector()
	c.RecordConversion("neptune")
	c.RecordRequest("ages", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `spaceage_conversions_total{planet="neptune"} 1`)
	assert.Contains(t, rec.Body.String(), "spaceage_request_duration_seconds")
}
