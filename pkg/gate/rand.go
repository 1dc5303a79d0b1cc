// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package gate

import "math/rand/v2"

// prandSource draws from the shared math/rand/v2 generator, the userspace
// analogue of the kernel prandom pool: process-wide, no state owned here.
type prandSource struct{}

// NewRand returns the default process-wide random source.
func NewRand() Rand {
	return prandSource{}
}

func (prandSource) Percent() uint32 {
	return rand.Uint32N(100)
}
