// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package metrics

import (
	"strings"
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/hwkim3330/lidar-tas/pkg/gatemap"
)

func TestCollector(t *testing.T) {
	m := gatemap.New()
	require.NoError(t, m.SetDropPercent(25))
	m.Add(gatemap.KeyPassed, 800)
	m.Add(gatemap.KeyDropped, 200)

	c := NewCollector(m)

	expected := `
# HELP lidar_gate_drop_percent Configured probability (0-100) that a matching packet is dropped.
# TYPE lidar_gate_drop_percent gauge
lidar_gate_drop_percent 25
# HELP lidar_gate_dropped_packets_total Matching packets discarded by the gate.
# TYPE lidar_gate_dropped_packets_total counter
lidar_gate_dropped_packets_total 200
# HELP lidar_gate_passed_packets_total Matching packets admitted by the gate.
# TYPE lidar_gate_passed_packets_total counter
lidar_gate_passed_packets_total 800
`
	require.NoError(t, promtestutil.CollectAndCompare(c, strings.NewReader(expected)))
}

func TestCollectorTracksSource(t *testing.T) {
	m := gatemap.New()
	c := NewCollector(m)

	require.Equal(t, 3, promtestutil.CollectAndCount(c))

	m.Add(gatemap.KeyDropped, 1)

	expected := `
# HELP lidar_gate_dropped_packets_total Matching packets discarded by the gate.
# TYPE lidar_gate_dropped_packets_total counter
lidar_gate_dropped_packets_total 1
`
	require.NoError(t, promtestutil.CollectAndCompare(c, strings.NewReader(expected),
		"lidar_gate_dropped_packets_total"))
}
