// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause

// Package metrics exposes the gate counters to a Prometheus registry so an
// external reader can observe pass/drop totals without touching the gate.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hwkim3330/lidar-tas/pkg/gatemap"
)

// StatisticsSource provides gate state snapshots.
// Satisfied by *gatemap.ArrayMap.
type StatisticsSource interface {
	Statistics() gatemap.Statistics
}

// Collector implements prometheus.Collector over a statistics source.
// Values are read at scrape time; the gate's hot path is never involved.
type Collector struct {
	source StatisticsSource

	dropPercent *prometheus.Desc
	passed      *prometheus.Desc
	dropped     *prometheus.Desc
}

// NewCollector creates a collector reading from source.
func NewCollector(source StatisticsSource) *Collector {
	return &Collector{
		source: source,
		dropPercent: prometheus.NewDesc(
			"lidar_gate_drop_percent",
			"Configured probability (0-100) that a matching packet is dropped.",
			nil, nil,
		),
		passed: prometheus.NewDesc(
			"lidar_gate_passed_packets_total",
			"Matching packets admitted by the gate.",
			nil, nil,
		),
		dropped: prometheus.NewDesc(
			"lidar_gate_dropped_packets_total",
			"Matching packets discarded by the gate.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.dropPercent
	ch <- c.passed
	ch <- c.dropped
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Statistics()
	ch <- prometheus.MustNewConstMetric(c.dropPercent, prometheus.GaugeValue, float64(stats.DropPercent))
	ch <- prometheus.MustNewConstMetric(c.passed, prometheus.CounterValue, float64(stats.PassedPackets))
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(stats.DroppedPackets))
}

// Ensure Collector implements prometheus.Collector
var _ prometheus.Collector = (*Collector)(nil)
