// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package commands

import (
	"context"
	"encoding/json"
	"flag"
	"github.com/orbs-network/my-concordium-project/config"
	"github.com/orbs-network/my-concordium-project/contracts"
	"github.com/orbs-network/my-concordium-project/instrumentation/metric"
	"github.com/orbs-network/my-concordium-project/primitives"
	"github.com/orbs-network/my-concordium-project/services/host"
	"github.com/orbs-network/my-concordium-project/services/statestorage/adapter/leveldb"
	"github.com/orbs-network/my-concordium-project/synchronization/supervised"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"os"
	"time"
)

const DEFAULT_STATE_PATH = "./.greeting-state"

// CommandRunner opens the host once per command and closes it when the command is done.
type CommandRunner struct {
	Logger log.Logger
}

type CallResult struct {
	Result      string `json:"result"`
	RejectCode  int32  `json:"rejectCode,omitempty"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
}

type commonFlags struct {
	configFiles config.FilesPaths
	statePath   *string
}

func registerCommonFlags(flagSet *flag.FlagSet) *commonFlags {
	f := &commonFlags{}
	flagSet.Var(&f.configFiles, "config", "path/to/config.json or config.toml (may be repeated)")
	f.statePath = flagSet.String("state", "", "directory of the state db (overrides STATE_PERSISTENCE_PATH)")
	return f
}

const shutdownTimeout = 5 * time.Second

type closer struct {
	name  string
	close func() error
}

// session holds everything a single command opened. close releases it in reverse order.
type session struct {
	supervised.TreeSupervisor
	host    *host.Service
	logger  log.Logger
	cancel  context.CancelFunc
	closers []closer
}

func (s *session) addCloser(name string, close func() error) {
	s.closers = append(s.closers, closer{name: name, close: close})
}

// close stops the supervised goroutines, then closes every resource even if some fail.
// Failures are logged and the first one is returned.
func (s *session) close() error {
	var first error
	fail := func(err error) {
		s.logger.Error("failed closing session", log.Error(err))
		if first == nil {
			first = err
		}
	}

	if s.cancel != nil {
		s.cancel()
	}
	if err := supervised.WaitUntilShutdownWithin(s, shutdownTimeout); err != nil {
		fail(err)
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].close(); err != nil {
			fail(errors.Wrapf(err, "could not close %s", s.closers[i].name))
		}
	}
	return first
}

// closeInto closes the session and reports a close failure through err unless the command already failed.
func (s *session) closeInto(err *error) {
	if closeErr := s.close(); closeErr != nil && *err == nil {
		*err = closeErr
	}
}

func (r *CommandRunner) open(f *commonFlags) (*session, error) {
	cfg, err := config.GetHostConfigFromFiles(f.configFiles)
	if err != nil {
		return nil, err
	}
	if err := config.ValidateHostConfig(cfg); err != nil {
		return nil, err
	}

	statePath := cfg.StatePersistencePath()
	if *f.statePath != "" {
		statePath = *f.statePath
	}
	if statePath == "" {
		statePath = DEFAULT_STATE_PATH
	}

	s := &session{logger: r.Logger}
	if cfg.LogFilePath() != "" {
		logFile, err := os.OpenFile(cfg.LogFilePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, errors.Wrap(err, "could not open log file")
		}
		s.logger = s.logger.WithOutput(log.NewFormattingOutput(logFile, log.NewJsonFormatter()))
		s.addCloser("log file", logFile.Close)
	}

	registry := metric.NewRegistry()
	persistence, err := leveldb.NewStatePersistence(statePath, s.logger, registry)
	if err != nil {
		s.close()
		return nil, err
	}
	s.addCloser("state store", persistence.Close)

	s.host, err = host.NewHost(cfg, contracts.Contracts, persistence, s.logger, registry)
	if err != nil {
		s.close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.Supervise(registry.ReportEvery(ctx, cfg.MetricsReportInterval(), s.logger))

	return s, nil
}

func parseAccount(s string) (primitives.AccountAddress, error) {
	if s == "" {
		return primitives.AccountAddress{}, nil
	}
	return primitives.ParseAccountAddress(s)
}

func toJson(result *CallResult) (string, error) {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return "", errors.Wrap(err, "could not encode result")
	}
	return string(jsonBytes), nil
}

func resultOf(r host.ExecutionResult, rejectCode int32, err error) *CallResult {
	res := &CallResult{
		Result:     r.String(),
		RejectCode: rejectCode,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}
