// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package with

import (
	"github.com/orbs-network/scribe/log"
	"testing"
)

// LoggingHarness hands a test a logger that fails the test on any error it was not told to expect.
type LoggingHarness struct {
	Logger     log.Logger
	testOutput *log.TestOutput
	T          testing.TB
}

func newLoggingHarness(tb testing.TB) *LoggingHarness {
	testOutput := log.NewTestOutput(tb, log.NewHumanReadableFormatter())
	return &LoggingHarness{
		Logger:     log.GetLogger().WithOutput(testOutput),
		testOutput: testOutput,
		T:          tb,
	}
}

func (h *LoggingHarness) AllowErrorsMatching(pattern string) {
	h.testOutput.AllowErrorsMatching(pattern)
}

func (h *LoggingHarness) requireNoUnexpectedErrors() {
	if h.testOutput.HasErrors() {
		h.T.Fatal("test failed; unexpected errors were logged")
	}
}

func Logging(tb testing.TB, f func(harness *LoggingHarness)) {
	h := newLoggingHarness(tb)
	defer h.testOutput.TestTerminated()
	f(h)
	h.requireNoUnexpectedErrors()
}
