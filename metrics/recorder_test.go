package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activityserver/registry"
)

func TestScrapeRegistry_Handler(t *testing.T) {
	reg, err := NewScrapeRegistry()
	require.NoError(t, err)

	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	rec.RecordSignup("Chess Club", nil)
	rec.RecordSignup("Chess Club", registry.ErrAlreadyEnrolled)
	rec.RecordWithdrawal("Chess Club", registry.ErrNotEnrolled)
	rec.SetRoster("Chess Club", 3, 12)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	reg.Handler().ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `signups_total{activity="Chess Club",result="ok"} 1`)
	assert.Contains(t, body, `signups_total{activity="Chess Club",result="conflict"} 1`)
	assert.Contains(t, body, `withdrawals_total{activity="Chess Club",result="conflict"} 1`)
	assert.Contains(t, body, `activity_roster_size{activity="Chess Club"} 3`)
	assert.Contains(t, body, `activity_capacity{activity="Chess Club"} 12`)
}

func TestRecorder_UnknownActivityLabel(t *testing.T) {
	reg, err := NewScrapeRegistry()
	require.NoError(t, err)

	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	// Unknown activity names must not become label values.
	rec.RecordSignup("Ghost Club", registry.ErrActivityNotFound)
	rec.RecordSignup("Another Ghost", registry.ErrActivityNotFound)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	reg.Handler().ServeHTTP(w, req)

	body := w.Body.String()
	assert.Contains(t, body, `signups_total{activity="unknown",result="not_found"} 2`)
	assert.NotContains(t, body, "Ghost Club")
}

func TestScrapeRegistry_DuplicateRegistration(t *testing.T) {
	reg, err := NewScrapeRegistry()
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	require.NoError(t, err)

	// Registering the same metrics twice must fail, not panic.
	_, err = NewRecorder(reg)
	assert.Error(t, err)
}
