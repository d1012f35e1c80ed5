// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package test

import (
	"fmt"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"testing"
)

// RequireCmpEqual fails the test with a go-cmp diff when expected and actual differ.
func RequireCmpEqual(t testing.TB, expected interface{}, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		assert.Fail(t, fmt.Sprintf("not equal (-expected +actual):\n%s", diff), msgAndArgs...)
		t.FailNow()
	}
}
