// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package config

import "github.com/pkg/errors"

func ValidateHostConfig(cfg HostConfig) error {
	if cfg.MaxParameterSize() == 0 {
		return errors.New("MAX_PARAMETER_SIZE must be positive")
	}
	if cfg.MetricsReportInterval() <= 0 {
		return errors.New("METRICS_REPORT_INTERVAL must be positive")
	}
	return nil
}
