// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package dispute

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the coordinator's Prometheus instrumentation.
type Metrics struct {
	registry prometheus.Registerer

	votesImported        prometheus.Counter
	votesRejectedSpam     prometheus.Counter
	disputesConcluded    *prometheus.CounterVec
	participationsQueued prometheus.Counter
	participationsDone   *prometheus.CounterVec
	recentDisputesGauge  prometheus.Gauge
}

// NewMetrics constructs and registers the coordinator's metrics against
// reg. reg may be nil, in which case metrics are created but never
// registered (used in tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		registry: reg,
		votesImported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dispute_coordinator",
			Name:      "votes_imported_total",
			Help:      "Number of dispute statements successfully imported.",
		}),
		votesRejectedSpam: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dispute_coordinator",
			Name:      "votes_rejected_spam_total",
			Help:      "Number of dispute statements rejected by the spam-slot limiter.",
		}),
		disputesConcluded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dispute_coordinator",
			Name:      "disputes_concluded_total",
			Help:      "Number of disputes that reached a final verdict, by outcome.",
		}, []string{"outcome"}),
		participationsQueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dispute_coordinator",
			Name:      "participations_queued_total",
			Help:      "Number of local participation requests enqueued.",
		}),
		participationsDone: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dispute_coordinator",
			Name:      "participations_completed_total",
			Help:      "Number of local participation requests completed, by outcome.",
		}, []string{"outcome"}),
		recentDisputesGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dispute_coordinator",
			Name:      "recent_disputes",
			Help:      "Number of disputes currently tracked in the recent-disputes index.",
		}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{
			m.votesImported,
			m.votesRejectedSpam,
			m.disputesConcluded,
			m.participationsQueued,
			m.participationsDone,
			m.recentDisputesGauge,
		} {
			// Registration failures (duplicate collector) are not fatal to
			// the coordinator; the metric simply keeps operating unregistered.
			_ = reg.Register(c)
		}
	}

	return m
}

func (m *Metrics) observeConcluded(status DisputeStatus) {
	if m == nil {
		return
	}
	m.disputesConcluded.WithLabelValues(status.String()).Inc()
}

func (m *Metrics) observeParticipationDone(outcome string) {
	if m == nil {
		return
	}
	m.participationsDone.WithLabelValues(outcome).Inc()
}
