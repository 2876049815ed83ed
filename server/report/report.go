// Package report produces the periodic roster report.
package report

import (
	"log/slog"
	"sort"

	"github.com/mergington/activityserver/metrics"
	"github.com/mergington/activityserver/registry"
)

// Reporter logs each activity's fill level and refreshes the roster gauges.
// It implements cron.Runnable so it can be driven by a schedule, and is also
// run once at server startup to initialize the gauges.
type Reporter struct {
	registry  *registry.Registry
	logger    *slog.Logger
	recorders []*metrics.Recorder
}

// NewReporter creates a Reporter. All given recorders are updated on each
// run; typically the scrape recorder plus an optional push recorder.
func NewReporter(reg *registry.Registry, logger *slog.Logger, recorders ...*metrics.Recorder) *Reporter {
	return &Reporter{
		registry:  reg,
		logger:    logger,
		recorders: recorders,
	}
}

// Run emits one roster report. Never returns an error; the report is
// best-effort.
func (r *Reporter) Run() error {
	activities := r.registry.List()

	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		act := activities[name]
		enrolled := len(act.Participants)

		r.logger.Info("roster report",
			"activity", name,
			"enrolled", enrolled,
			"capacity", act.MaxParticipants,
		)
		if enrolled > act.MaxParticipants {
			r.logger.Warn("activity over capacity",
				"activity", name,
				"enrolled", enrolled,
				"capacity", act.MaxParticipants,
			)
		}

		for _, rec := range r.recorders {
			rec.SetRoster(name, enrolled, act.MaxParticipants)
		}
	}

	return nil
}
