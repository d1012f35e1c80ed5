// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
// Package supervised keeps track of long-running goroutines so that their owner can wait for
// them to finish on shutdown, and reports their failures to a logger.
package supervised
