// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package supervised

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
	"time"
)

type ShutdownWaiter interface {
	WaitUntilShutdown(shutdownContext context.Context)
}

// govnr handles complain on exit unless whoever waits for them marks them first
type markable interface {
	MarkSupervised()
}

type TreeSupervisor struct {
	mu         sync.Mutex
	supervised []ShutdownWaiter
}

func (t *TreeSupervisor) Supervise(w ShutdownWaiter) {
	if m, ok := w.(markable); ok {
		m.MarkSupervised()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.supervised = append(t.supervised, w)
}

func (t *TreeSupervisor) WaitUntilShutdown(shutdownContext context.Context) {
	t.mu.Lock()
	supervised := append([]ShutdownWaiter(nil), t.supervised...)
	t.mu.Unlock()

	for _, w := range supervised {
		w.WaitUntilShutdown(shutdownContext)
	}
}

// WaitUntilShutdownWithin waits for w, giving up after timeout.
func WaitUntilShutdownWithin(w ShutdownWaiter, timeout time.Duration) error {
	shutdownContext, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	w.WaitUntilShutdown(shutdownContext)
	if shutdownContext.Err() != nil {
		return errors.Errorf("failed to shutdown within %s", timeout)
	}
	return nil
}

type errorer struct {
	logger  log.Logger
	message string
}

func (e *errorer) Error(err error) {
	e.logger.Error(e.message, log.Error(err))
}

// GovnrErrorer logs failures of a govnr governed goroutine as errors with the given message.
func GovnrErrorer(logger log.Logger, message string) govnr.Errorer {
	return &errorer{logger: logger, message: message}
}
