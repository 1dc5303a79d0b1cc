// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause

// Package gate implements the conditional packet-drop gate for LiDAR UDP
// traffic: a per-frame classification function that discards a configured
// percentage of packets destined to UDP port 7502, simulating lossy network
// conditions for the downstream receiver.
//
// # Classification
//
// Each received frame runs through a fail-fast parse:
//   - Ethernet header present, EtherType IPv4
//   - fixed IPv4 header present, protocol UDP
//   - full UDP header present past the actual IP header length
//   - UDP destination port equals 7502
//
// A frame failing any check passes untouched: non-matching traffic is never
// counted and never dropped. A matching frame is admitted or discarded by a
// uniform draw against the configured drop percentage, and the outcome is
// counted in the shared control block.
//
// # Example Usage
//
//	cb := gatemap.New()
//	g := gate.New(cb, gate.NewRand())
//
//	if err := cb.SetDropPercent(30); err != nil {
//	    log.Fatal(err)
//	}
//
//	// In the receive path, once per frame:
//	if g.Classify(frame) == gate.Drop {
//	    return // discard silently
//	}
//	deliver(frame)
//
// # Hot Path
//
// Classify is O(1), allocation-free, and lock-free. It may be invoked
// concurrently from any number of receive contexts; decisions for distinct
// frames are independent and no ordering is guaranteed between them. The
// only shared mutation is the atomic counter increment.
//
// # Decision Model
//
// The drop decision is a single uniform comparison per packet, with no
// memory of prior decisions: the feature being modeled is constant-rate
// random loss, not bursty loss. The drop percentage is re-read on every
// call, so configuration changes take effect immediately. A missing
// percentage is equivalent to zero: the gate is open until configured.
package gate
