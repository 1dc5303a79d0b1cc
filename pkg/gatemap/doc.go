// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause

// Package gatemap provides the shared control block read and updated by the
// packet gate: a fixed-size array of 64-bit slots keyed by small integers,
// the userspace equivalent of a BPF array map.
//
// # Layout
//
// The control block has 4 slots:
//   - slot 0: configured drop percentage (0-100), written by the configurator
//   - slot 1: packets passed, incremented by the gate
//   - slot 2: packets dropped, incremented by the gate
//   - slot 3: reserved
//
// # Ownership
//
// The gate treats slot 0 as read-only and slots 1 and 2 as increment-only.
// The configurator is the only writer of slot 0 and the only party that may
// reset the counters. There is no cross-slot transaction: a percentage
// change becomes visible to classifications on their next read, and a
// statistics snapshot taken under traffic may straddle an update.
//
// # Thread Safety
//
// All operations are safe for concurrent use from any number of
// goroutines. Slots are independent atomics; no locks are taken anywhere.
package gatemap
