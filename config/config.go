// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package config

import "time"

type HostConfig interface {
	MaxParameterSize() uint32
	StatePersistencePath() string
	MetricsReportInterval() time.Duration
	LogFilePath() string
}

type mutableHostConfig interface {
	HostConfig
	Set(key string, value HostConfigValue) mutableHostConfig
	SetUint32(key string, value uint32) mutableHostConfig
	SetDuration(key string, value time.Duration) mutableHostConfig
	SetString(key string, value string) mutableHostConfig
	Modify(newValues ...HostConfigKeyValue)
}

type HostConfigKeyValue struct {
	Key   string
	Value HostConfigValue
}

type HostConfigValue struct {
	Uint32Value   uint32
	DurationValue time.Duration
	StringValue   string
}

const (
	MAX_PARAMETER_SIZE      = "MAX_PARAMETER_SIZE"
	STATE_PERSISTENCE_PATH  = "STATE_PERSISTENCE_PATH"
	METRICS_REPORT_INTERVAL = "METRICS_REPORT_INTERVAL"
	LOG_FILE_PATH           = "LOG_FILE_PATH"
)

type config struct {
	kv map[string]HostConfigValue
}

func emptyConfig() mutableHostConfig {
	return &config{
		kv: make(map[string]HostConfigValue),
	}
}

func (c *config) Set(key string, value HostConfigValue) mutableHostConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetUint32(key string, value uint32) mutableHostConfig {
	c.kv[key] = HostConfigValue{Uint32Value: value}
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableHostConfig {
	c.kv[key] = HostConfigValue{DurationValue: value}
	return c
}

func (c *config) SetString(key string, value string) mutableHostConfig {
	c.kv[key] = HostConfigValue{StringValue: value}
	return c
}

func (c *config) Modify(newValues ...HostConfigKeyValue) {
	for _, kv := range newValues {
		c.kv[kv.Key] = kv.Value
	}
}

// parameters larger than this are rejected by the host before any contract code runs
func (c *config) MaxParameterSize() uint32 {
	return c.kv[MAX_PARAMETER_SIZE].Uint32Value
}

// empty means state is kept in memory only
func (c *config) StatePersistencePath() string {
	return c.kv[STATE_PERSISTENCE_PATH].StringValue
}

func (c *config) MetricsReportInterval() time.Duration {
	return c.kv[METRICS_REPORT_INTERVAL].DurationValue
}

func (c *config) LogFilePath() string {
	return c.kv[LOG_FILE_PATH].StringValue
}
