// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package gatemap

import (
	"fmt"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// Control block slot layout. The gate reads slot 0 and increments slots 1
// and 2; the configurator owns writes to slot 0 and counter resets.
const (
	// KeyDropPercent holds the configured drop probability, 0-100.
	KeyDropPercent uint32 = 0
	// KeyPassed counts matching packets admitted by the gate.
	KeyPassed uint32 = 1
	// KeyDropped counts matching packets discarded by the gate.
	KeyDropped uint32 = 2

	// MaxEntries is the number of slots in the control block.
	MaxEntries = 4
)

// Statistics holds a point-in-time snapshot of the gate state.
type Statistics struct {
	DropPercent    uint64
	PassedPackets  uint64
	DroppedPackets uint64
}

// ArrayMap is the shared control block: a fixed-size array of 64-bit slots
// keyed by small integers. All operations are lock-free; each slot is an
// independent atomic scalar with no cross-slot invariant.
type ArrayMap struct {
	values [MaxEntries]atomic.Uint64
}

// New creates a control block with every slot zeroed, i.e. gate open and
// no traffic counted yet.
func New() *ArrayMap {
	return &ArrayMap{}
}

// Lookup returns the value stored under key. The second return is false
// only for an out-of-range key; an in-range slot is always present, even
// if never written.
func (m *ArrayMap) Lookup(key uint32) (uint64, bool) {
	if key >= MaxEntries {
		return 0, false
	}
	return m.values[key].Load(), true
}

// Add atomically increments the slot under key by delta. Out-of-range keys
// are a no-op, matching the skipped increment on a failed lookup.
func (m *ArrayMap) Add(key uint32, delta uint64) {
	if key >= MaxEntries {
		return
	}
	m.values[key].Add(delta)
}

// Set stores value under key. Configurator-side operation; the gate itself
// never calls it.
func (m *ArrayMap) Set(key uint32, value uint64) error {
	if key >= MaxEntries {
		return fmt.Errorf("key %d out of range (max %d)", key, MaxEntries-1)
	}
	m.values[key].Store(value)
	return nil
}

// SetDropPercent updates the configured drop probability. The new value
// takes effect on the next classification; in-flight classifications may
// still observe the old value.
func (m *ArrayMap) SetDropPercent(pct uint64) error {
	if pct > 100 {
		return fmt.Errorf("drop percentage %d out of range [0,100]", pct)
	}
	m.values[KeyDropPercent].Store(pct)
	log.Infof("Gate drop percentage set to %d%%", pct)
	return nil
}

// ResetCounters zeroes the pass/drop counters. The configured drop
// percentage is left untouched.
func (m *ArrayMap) ResetCounters() {
	m.values[KeyPassed].Store(0)
	m.values[KeyDropped].Store(0)
	log.Debug("Gate counters reset")
}

// Statistics returns a snapshot of the gate state. Slots are read
// individually, so a snapshot taken under concurrent traffic may be
// slightly torn across fields; each field is individually consistent.
func (m *ArrayMap) Statistics() Statistics {
	return Statistics{
		DropPercent:    m.values[KeyDropPercent].Load(),
		PassedPackets:  m.values[KeyPassed].Load(),
		DroppedPackets: m.values[KeyDropped].Load(),
	}
}
