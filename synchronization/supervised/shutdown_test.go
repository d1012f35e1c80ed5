// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package supervised_test

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/my-concordium-project/synchronization/supervised"
	"github.com/orbs-network/my-concordium-project/test/with"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type neverEnding struct{}

func (neverEnding) WaitUntilShutdown(shutdownContext context.Context) {
	<-shutdownContext.Done()
}

func TestSupervisedGoroutineEndsWithoutErrors(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		ctx, cancel := context.WithCancel(context.Background())
		ran := make(chan struct{})

		var tree supervised.TreeSupervisor
		tree.Supervise(govnr.Forever(ctx, "waits for cancel", supervised.GovnrErrorer(harness.Logger, "goroutine failed"), func() {
			close(ran)
			<-ctx.Done()
		}))

		<-ran
		cancel()
		require.NoError(t, supervised.WaitUntilShutdownWithin(&tree, time.Second))
	})
}

func TestWaitUntilShutdownWithinTimesOut(t *testing.T) {
	var tree supervised.TreeSupervisor
	tree.Supervise(neverEnding{})

	err := supervised.WaitUntilShutdownWithin(&tree, 10*time.Millisecond)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to shutdown within 10ms")
}
