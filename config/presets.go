// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package config

import "time"

func defaultProductionConfig() mutableHostConfig {
	cfg := emptyConfig()

	cfg.SetUint32(MAX_PARAMETER_SIZE, 65535)
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 30*time.Second)

	return cfg
}

func ForProduction(statePersistencePath string) mutableHostConfig {
	cfg := defaultProductionConfig()
	if statePersistencePath != "" {
		cfg.SetString(STATE_PERSISTENCE_PATH, statePersistencePath)
	}
	return cfg
}

// ForTests keeps state in memory and reports metrics often
func ForTests(overrides ...HostConfigKeyValue) mutableHostConfig {
	cfg := defaultProductionConfig()
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 10*time.Millisecond)
	cfg.Modify(overrides...)
	return cfg
}
