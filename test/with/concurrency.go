// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package with

import (
	"context"
	"github.com/orbs-network/my-concordium-project/synchronization/supervised"
	"testing"
	"time"
)

const shutdownTimeout = time.Second

// ConcurrencyHarness is a LoggingHarness whose test may start supervised goroutines. They must stop
// once the harness context is cancelled, which happens when the test function returns.
type ConcurrencyHarness struct {
	*LoggingHarness
	supervised.TreeSupervisor
}

func Concurrency(tb testing.TB, f func(ctx context.Context, harness *ConcurrencyHarness)) {
	h := &ConcurrencyHarness{LoggingHarness: newLoggingHarness(tb)}
	defer h.testOutput.TestTerminated()

	ctx, cancel := context.WithCancel(context.Background())
	f(ctx, h)
	cancel()

	if err := supervised.WaitUntilShutdownWithin(h, shutdownTimeout); err != nil {
		tb.Fatal(err)
	}
	h.requireNoUnexpectedErrors()
}
