// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package metrics exports Prometheus metrics for batched inserts.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ikmak/bulkinsert/event"
)

// Batch statuses used in the status label.
const (
	StatusAcknowledged   = "acknowledged"
	StatusUnacknowledged = "unacknowledged"
	StatusFailed         = "failed"
)

// Collectors holds the metrics updated by the monitor.
type Collectors struct {
	Batches     *prometheus.CounterVec
	Documents   *prometheus.CounterVec
	Inserted    *prometheus.CounterVec
	WriteErrors *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// NewCollectors creates the collectors and registers them with reg.
func NewCollectors(reg prometheus.Registerer, namespace string) (*Collectors, error) {
	c := &Collectors{
		Batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "insert_many_batches_total",
			Help:      "Number of batches handed to a target, by outcome.",
		}, []string{"collection", "status"}),
		Documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "insert_many_documents_total",
			Help:      "Number of documents handed to a target.",
		}, []string{"collection"}),
		Inserted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "insert_many_inserted_total",
			Help:      "Number of documents a target reported as inserted.",
		}, []string{"collection"}),
		WriteErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "insert_many_write_errors_total",
			Help:      "Number of per-document write errors reported by a target.",
		}, []string{"collection"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "insert_many_duration_seconds",
			Help:      "Time spent in the target per batch.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection"}),
	}

	for _, collector := range []prometheus.Collector{c.Batches, c.Documents, c.Inserted, c.WriteErrors, c.Duration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Monitor returns an event monitor that updates c.
func (c *Collectors) Monitor() *event.InsertManyMonitor {
	return &event.InsertManyMonitor{
		Started: func(_ context.Context, evt *event.InsertManyStartedEvent) {
			c.Documents.WithLabelValues(evt.Collection).Add(float64(evt.DocumentCount))
		},
		Succeeded: func(_ context.Context, evt *event.InsertManySucceededEvent) {
			status := StatusAcknowledged
			if !evt.Acknowledged {
				status = StatusUnacknowledged
			}
			c.Batches.WithLabelValues(evt.Collection, status).Inc()
			c.Inserted.WithLabelValues(evt.Collection).Add(float64(evt.InsertedCount))
			c.WriteErrors.WithLabelValues(evt.Collection).Add(float64(evt.WriteErrorCount))
			c.Duration.WithLabelValues(evt.Collection).Observe(evt.Duration.Seconds())
		},
		Failed: func(_ context.Context, evt *event.InsertManyFailedEvent) {
			c.Batches.WithLabelValues(evt.Collection, StatusFailed).Inc()
			c.Duration.WithLabelValues(evt.Collection).Observe(evt.Duration.Seconds())
		},
	}
}

// NewMonitor registers collectors with reg and returns a monitor that
// updates them.
func NewMonitor(reg prometheus.Registerer, namespace string) (*event.InsertManyMonitor, error) {
	c, err := NewCollectors(reg, namespace)
	if err != nil {
		return nil, err
	}
	return c.Monitor(), nil
}
