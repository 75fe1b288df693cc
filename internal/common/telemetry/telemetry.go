// File path: internal/common/telemetry/telemetry.go

// Package telemetry publishes site counters through expvar at /debug/vars.
package telemetry

import (
	"context"
	"expvar"
	"strings"
	"sync"
	"time"

	"github.com/immensecng/cylinder-retest/internal/common"
)

type spanKey struct{}

type span struct {
	name  string
	start time.Time
}

var (
	initOnce sync.Once

	pageViews         *expvar.Map
	wizardTransitions *expvar.Map
	recordsAdded      *expvar.Int
	recordsRejected   *expvar.Int
	inquiriesTotal    *expvar.Int
	inquiriesRejected *expvar.Int
	sessionsLive      *expvar.Int
	sessionsCreated   *expvar.Int
	sessionsExpired   *expvar.Int
)

func ensureInit() {
	initOnce.Do(func() {
		pageViews = expvar.NewMap("cylinder_page_views_total")
		wizardTransitions = expvar.NewMap("cylinder_wizard_transitions_total")
		recordsAdded = expvar.NewInt("cylinder_records_added_total")
		recordsRejected = expvar.NewInt("cylinder_records_rejected_total")
		inquiriesTotal = expvar.NewInt("cylinder_inquiries_total")
		inquiriesRejected = expvar.NewInt("cylinder_inquiries_rejected_total")
		sessionsLive = expvar.NewInt("cylinder_sessions_live")
		sessionsCreated = expvar.NewInt("cylinder_sessions_created_total")
		sessionsExpired = expvar.NewInt("cylinder_sessions_expired_total")
	})
}

// StartSpan logs the start of an operation at debug level and returns a
// function that logs its duration.
func StartSpan(ctx context.Context, name string) (context.Context, func(attrs ...any)) {
	ensureInit()
	sp := &span{name: name, start: time.Now()}
	ctx = context.WithValue(ctx, spanKey{}, sp)
	logger := common.Logger()
	logger.Debug("trace: start", "span", name)
	return ctx, func(attrs ...any) {
		logger.Debug("trace: end", append([]any{"span", name, "dur", time.Since(sp.start)}, attrs...)...)
	}
}

// SpanDuration reports how long the span in ctx has been running.
func SpanDuration(ctx context.Context) time.Duration {
	sp, _ := ctx.Value(spanKey{}).(*span)
	if sp == nil {
		return 0
	}
	return time.Since(sp.start)
}

// RecordPageView counts a rendered page.
func RecordPageView(page string) {
	ensureInit()
	pageViews.Add(key(page, "unknown"), 1)
}

// RecordWizardTransition counts a wizard action (select, advance, retreat,
// reset, marks).
func RecordWizardTransition(action string) {
	ensureInit()
	wizardTransitions.Add(key(action, "unknown"), 1)
}

// RecordRecordAdd counts an add attempt on a record store.
func RecordRecordAdd(ok bool) {
	ensureInit()
	if ok {
		recordsAdded.Add(1)
		return
	}
	recordsRejected.Add(1)
}

// RecordInquiry counts a contact form submission.
func RecordInquiry(ok bool) {
	ensureInit()
	if ok {
		inquiriesTotal.Add(1)
		return
	}
	inquiriesRejected.Add(1)
}

// RecordSessionCreated counts a new visitor session.
func RecordSessionCreated() {
	ensureInit()
	sessionsCreated.Add(1)
}

// RecordSessionSweep publishes the result of an expiry sweep.
func RecordSessionSweep(removed, live int) {
	ensureInit()
	if removed > 0 {
		sessionsExpired.Add(int64(removed))
	}
	sessionsLive.Set(int64(live))
}

// Snapshot returns the current counter values, keyed like /debug/vars.
func Snapshot() map[string]any {
	ensureInit()
	out := map[string]any{
		"records_added":      recordsAdded.Value(),
		"records_rejected":   recordsRejected.Value(),
		"inquiries":          inquiriesTotal.Value(),
		"inquiries_rejected": inquiriesRejected.Value(),
		"sessions_live":      sessionsLive.Value(),
		"sessions_created":   sessionsCreated.Value(),
		"sessions_expired":   sessionsExpired.Value(),
	}
	views := map[string]int64{}
	pageViews.Do(func(kv expvar.KeyValue) {
		if v, ok := kv.Value.(*expvar.Int); ok {
			views[kv.Key] = v.Value()
		}
	})
	out["page_views"] = views
	transitions := map[string]int64{}
	wizardTransitions.Do(func(kv expvar.KeyValue) {
		if v, ok := kv.Value.(*expvar.Int); ok {
			transitions[kv.Key] = v.Value()
		}
	})
	out["wizard_transitions"] = transitions
	return out
}

func key(value, fallback string) string {
	k := strings.TrimSpace(strings.ToLower(value))
	if k == "" {
		return fallback
	}
	return k
}
