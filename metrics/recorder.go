package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mergington/activityserver/registry"
)

// Result label values for signup and withdrawal outcomes.
const (
	ResultOK       = "ok"
	ResultConflict = "conflict"
	ResultNotFound = "not_found"
)

// unknownActivity caps label cardinality: requests naming activities that do
// not exist are all recorded under one label value.
const unknownActivity = "unknown"

// Recorder holds the domain metrics for the activity server.
type Recorder struct {
	signups     CounterVec
	withdrawals CounterVec
	rosterSize  GaugeVec
	capacity    GaugeVec
}

// NewRecorder creates a Recorder with all domain metrics registered against
// the given registry.
func NewRecorder(reg Registry) (*Recorder, error) {
	signups, err := reg.NewCounterVec(prometheus.CounterOpts{
		Name: "signups_total",
		Help: "Signup attempts by activity and result.",
	}, []string{"activity", "result"})
	if err != nil {
		return nil, fmt.Errorf("creating signups counter: %w", err)
	}

	withdrawals, err := reg.NewCounterVec(prometheus.CounterOpts{
		Name: "withdrawals_total",
		Help: "Withdrawal attempts by activity and result.",
	}, []string{"activity", "result"})
	if err != nil {
		return nil, fmt.Errorf("creating withdrawals counter: %w", err)
	}

	rosterSize, err := reg.NewGaugeVec(prometheus.GaugeOpts{
		Name: "activity_roster_size",
		Help: "Current number of participants per activity.",
	}, []string{"activity"})
	if err != nil {
		return nil, fmt.Errorf("creating roster size gauge: %w", err)
	}

	capacity, err := reg.NewGaugeVec(prometheus.GaugeOpts{
		Name: "activity_capacity",
		Help: "Configured maximum participants per activity.",
	}, []string{"activity"})
	if err != nil {
		return nil, fmt.Errorf("creating capacity gauge: %w", err)
	}

	return &Recorder{
		signups:     signups,
		withdrawals: withdrawals,
		rosterSize:  rosterSize,
		capacity:    capacity,
	}, nil
}

// RecordSignup records the outcome of a signup attempt.
func (r *Recorder) RecordSignup(activity string, err error) {
	r.signups.With(outcomeLabels(activity, err)).Inc()
}

// RecordWithdrawal records the outcome of a withdrawal attempt.
func (r *Recorder) RecordWithdrawal(activity string, err error) {
	r.withdrawals.With(outcomeLabels(activity, err)).Inc()
}

// SetRoster updates the roster size and capacity gauges for an activity.
func (r *Recorder) SetRoster(activity string, enrolled, capacity int) {
	r.rosterSize.With(prometheus.Labels{"activity": activity}).Set(float64(enrolled))
	r.capacity.With(prometheus.Labels{"activity": activity}).Set(float64(capacity))
}

func outcomeLabels(activity string, err error) prometheus.Labels {
	switch {
	case err == nil:
		return prometheus.Labels{"activity": activity, "result": ResultOK}
	case errors.Is(err, registry.ErrActivityNotFound):
		return prometheus.Labels{"activity": unknownActivity, "result": ResultNotFound}
	default:
		return prometheus.Labels{"activity": activity, "result": ResultConflict}
	}
}
