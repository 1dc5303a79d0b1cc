// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package gate

// Classifier defines the per-frame classification operation.
// This interface is useful for testing and dependency injection.
type Classifier interface {
	Classify(frame []byte) Decision
}

// Ensure Gate implements Classifier
var _ Classifier = (*Gate)(nil)
