// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package gate

import (
	"encoding/binary"

	"github.com/hwkim3330/lidar-tas/pkg/gatemap"
)

// Decision is the outcome of classifying one frame.
type Decision int

const (
	// Pass forwards the frame to the receive path unchanged.
	Pass Decision = iota
	// Drop discards the frame before any higher layer can observe it.
	Drop
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case Pass:
		return "PASS"
	case Drop:
		return "DROP"
	default:
		return "UNKNOWN"
	}
}

// TargetPort is the UDP destination port the gate instruments. Traffic to
// any other port is never counted or dropped.
const TargetPort = 7502

// Header geometry for the Ethernet/IPv4/UDP parse.
const (
	ethHeaderLen  = 14
	ethTypeOffset = 12
	etherTypeIPv4 = 0x0800

	ipv4MinHeaderLen   = 20
	ipv4ProtocolOffset = 9
	protocolUDP        = 17

	udpHeaderLen     = 8
	udpDstPortOffset = 2
)

// ControlBlock is the shared configuration-and-counter store consulted on
// every classification. Implementations must be safe for concurrent use
// and Add must be atomic; *gatemap.ArrayMap satisfies this.
type ControlBlock interface {
	// Lookup returns the value stored under key, or false if the key is
	// not present.
	Lookup(key uint32) (uint64, bool)

	// Add atomically increments the value under key by delta.
	Add(key uint32, delta uint64)
}

// Rand draws uniform pseudo-random integers in [0,100) for the drop
// decision. Implementations must be safe for concurrent use.
type Rand interface {
	Percent() uint32
}

// Gate classifies received frames. It holds no per-packet state; all
// shared state lives in the injected control block.
type Gate struct {
	cb  ControlBlock
	rnd Rand
}

// New creates a gate backed by the given control block and random source.
func New(cb ControlBlock, rnd Rand) *Gate {
	return &Gate{cb: cb, rnd: rnd}
}

// Classify decides the fate of one received frame.
//
// Frames that do not parse as Ethernet/IPv4/UDP to TargetPort always pass
// and leave the counters untouched: a short or foreign frame is not an
// error, it is simply not ours. Matching frames are admitted or discarded
// according to the configured drop percentage, counting each outcome.
//
// Classify never blocks, never allocates, and reads the drop percentage
// fresh on every call. The frame is only read and never retained.
func (g *Gate) Classify(frame []byte) Decision {
	// Ethernet header
	if len(frame) < ethHeaderLen {
		return Pass
	}
	if binary.BigEndian.Uint16(frame[ethTypeOffset:]) != etherTypeIPv4 {
		return Pass
	}

	// IPv4 header, fixed part
	if len(frame) < ethHeaderLen+ipv4MinHeaderLen {
		return Pass
	}
	if frame[ethHeaderLen+ipv4ProtocolOffset] != protocolUDP {
		return Pass
	}

	// UDP header sits past the actual IP header length (IHL covers options)
	udpOff := ethHeaderLen + int(frame[ethHeaderLen]&0x0f)*4
	if len(frame) < udpOff+udpHeaderLen {
		return Pass
	}

	if binary.BigEndian.Uint16(frame[udpOff+udpDstPortOffset:]) != TargetPort {
		return Pass
	}

	// This is a LiDAR packet — check the gate.
	pct, ok := g.cb.Lookup(gatemap.KeyDropPercent)
	if !ok || pct == 0 {
		g.cb.Add(gatemap.KeyPassed, 1)
		return Pass
	}

	if uint64(g.rnd.Percent()) < pct {
		g.cb.Add(gatemap.KeyDropped, 1)
		return Drop
	}

	g.cb.Add(gatemap.KeyPassed, 1)
	return Pass
}
