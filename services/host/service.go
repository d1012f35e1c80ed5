// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package host

import (
	"context"
	"github.com/orbs-network/my-concordium-project/config"
	"github.com/orbs-network/my-concordium-project/contracts/sdk"
	"github.com/orbs-network/my-concordium-project/instrumentation/metric"
	"github.com/orbs-network/my-concordium-project/primitives"
	"github.com/orbs-network/my-concordium-project/serialization"
	"github.com/orbs-network/my-concordium-project/services/statestorage/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
	"time"
)

var LogTag = log.Service("host")

type metrics struct {
	callTime  *metric.Histogram
	instances *metric.Gauge
	calls     *metric.Rate
	rejects   *metric.Rate
}

func getMetrics(m metric.Factory) *metrics {
	return &metrics{
		callTime:  m.NewLatency("Host.CallTime.Millis", 10*time.Second),
		instances: m.NewGauge("Host.Instances.Count"),
		calls:     m.NewRate("Host.Calls.Rate"),
		rejects:   m.NewRate("Host.Rejects.Rate"),
	}
}

// Service runs contract entrypoints against persisted instances. Calls are executed one at a
// time; each runs on a freshly decoded copy of the instance state which is written back only
// when a mutable entrypoint succeeds.
type Service struct {
	logger      log.Logger
	config      config.HostConfig
	persistence adapter.StatePersistence
	contracts   map[primitives.ContractName]*sdk.ContractInfo
	metrics     *metrics
	clock       func() time.Time

	mutex sync.Mutex
}

func NewHost(
	config config.HostConfig,
	contracts map[primitives.ContractName]*sdk.ContractInfo,
	persistence adapter.StatePersistence,
	parentLogger log.Logger,
	metricFactory metric.Factory,
) (*Service, error) {

	s := &Service{
		logger:      parentLogger.WithTags(LogTag),
		config:      config,
		persistence: persistence,
		contracts:   contracts,
		metrics:     getMetrics(metricFactory),
		clock:       time.Now,
	}

	instances, err := persistence.NextIndex()
	if err != nil {
		return nil, errors.Wrap(err, "could not read number of instances")
	}
	s.metrics.instances.Update(int64(instances))

	return s, nil
}

// Deploy runs the contract's init and, only if it succeeds, creates a new instance.
func (s *Service) Deploy(ctx context.Context, input *DeployInput) (*DeployOutput, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	start := time.Now()
	defer s.metrics.callTime.RecordSince(start)
	s.metrics.calls.Measure(1)

	logger := s.logger.WithTags(log.Stringable("contract", input.ContractName), log.String("entrypoint", input.ContractName.InitName()))

	if err := ctx.Err(); err != nil {
		return &DeployOutput{Result: EXECUTION_RESULT_ERROR_UNEXPECTED, RejectCode: sdk.RejectCodeTrap}, err
	}

	contract, found := s.contracts[input.ContractName]
	if !found {
		return &DeployOutput{Result: EXECUTION_RESULT_ERROR_INPUT}, errors.Errorf("contract '%s' not found", input.ContractName)
	}

	if err := s.validateParameterSize(input.Parameter); err != nil {
		return &DeployOutput{Result: EXECUTION_RESULT_ERROR_INPUT}, err
	}

	logger.Info("host executing init", log.Stringable("origin", input.Origin))

	initContext := sdk.NewInitContext(input.Origin, input.Parameter, s.clock())
	state, err := runInit(contract, initContext)
	if err != nil {
		result := s.failedResult(logger, err)
		return &DeployOutput{Result: result, RejectCode: sdk.RejectCodeOf(err)}, err
	}

	index, err := s.persistence.NextIndex()
	if err != nil {
		return &DeployOutput{Result: EXECUTION_RESULT_ERROR_UNEXPECTED, RejectCode: sdk.RejectCodeTrap}, errors.Wrap(err, "could not allocate contract address")
	}
	address := primitives.ContractAddress{Index: index, Subindex: 0}

	record := &adapter.InstanceRecord{
		ContractName: contract.Name,
		Owner:        input.Origin,
		State:        serialization.ToBytes(state),
	}
	if err := s.persistence.Write(address, record); err != nil {
		return &DeployOutput{Result: EXECUTION_RESULT_ERROR_UNEXPECTED, RejectCode: sdk.RejectCodeTrap}, errors.Wrapf(err, "could not persist instance %s", address)
	}
	s.metrics.instances.Inc()

	logger.Info("instance created", log.Stringable("address", address))
	return &DeployOutput{Address: address, Result: EXECUTION_RESULT_SUCCESS}, nil
}

// Update runs an entrypoint and commits its state changes if it is mutable and succeeds.
func (s *Service) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	return s.receive(ctx, input, true)
}

// Invoke runs an entrypoint without committing anything, for views and dry runs.
func (s *Service) Invoke(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	return s.receive(ctx, input, false)
}

// InstanceState returns the serialized state of an instance as last committed.
func (s *Service) InstanceState(ctx context.Context, address primitives.ContractAddress) ([]byte, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, found, err := s.persistence.Read(address)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Errorf("instance %s not found", address)
	}
	return record.State, nil
}

func (s *Service) receive(ctx context.Context, input *UpdateInput, commit bool) (*UpdateOutput, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	start := time.Now()
	defer s.metrics.callTime.RecordSince(start)
	s.metrics.calls.Measure(1)

	if err := ctx.Err(); err != nil {
		return &UpdateOutput{Result: EXECUTION_RESULT_ERROR_UNEXPECTED, RejectCode: sdk.RejectCodeTrap}, err
	}

	record, found, err := s.persistence.Read(input.Address)
	if err != nil {
		return &UpdateOutput{Result: EXECUTION_RESULT_ERROR_UNEXPECTED, RejectCode: sdk.RejectCodeTrap}, errors.Wrapf(err, "could not read instance %s", input.Address)
	}
	if !found {
		return &UpdateOutput{Result: EXECUTION_RESULT_ERROR_INPUT}, errors.Errorf("instance %s not found", input.Address)
	}

	contract, found := s.contracts[record.ContractName]
	if !found {
		return &UpdateOutput{Result: EXECUTION_RESULT_ERROR_UNEXPECTED, RejectCode: sdk.RejectCodeTrap}, errors.Errorf("instance %s runs unknown contract '%s'", input.Address, record.ContractName)
	}

	entrypoint, found := contract.Entrypoint(input.Entrypoint)
	if !found {
		return &UpdateOutput{Result: EXECUTION_RESULT_ERROR_INPUT}, errors.Errorf("entrypoint '%s' not found on contract '%s'", input.Entrypoint, contract.Name)
	}

	if err := s.validateParameterSize(input.Parameter); err != nil {
		return &UpdateOutput{Result: EXECUTION_RESULT_ERROR_INPUT}, err
	}

	state := contract.NewState()
	if err := serialization.FromBytes(record.State, state); err != nil {
		return &UpdateOutput{Result: EXECUTION_RESULT_ERROR_UNEXPECTED, RejectCode: sdk.RejectCodeTrap}, errors.Wrapf(err, "state of instance %s is corrupt", input.Address)
	}

	receiveContext := sdk.NewReceiveContext(sdk.ReceiveContextParams{
		Sender:    input.Sender,
		Invoker:   input.Invoker,
		Self:      input.Address,
		Owner:     record.Owner,
		Parameter: input.Parameter,
		SlotTime:  s.clock(),
	})

	logger := s.logger.WithTags(log.Stringable("contract", contract.Name), log.String("entrypoint", contract.Name.ReceiveName(entrypoint.Name)), log.Stringable("address", input.Address))
	logger.Info("host executing entrypoint", log.Stringable("sender", receiveContext.Sender()), log.Stringable("invoker", input.Invoker))

	returnValue, err := runReceive(entrypoint, receiveContext, sdk.NewStateHost(state))
	if err != nil {
		result := s.failedResult(logger, err)
		return &UpdateOutput{Result: result, RejectCode: sdk.RejectCodeOf(err)}, err
	}

	if commit && entrypoint.Mutable {
		record.State = serialization.ToBytes(state)
		if err := s.persistence.Write(input.Address, record); err != nil {
			return &UpdateOutput{Result: EXECUTION_RESULT_ERROR_UNEXPECTED, RejectCode: sdk.RejectCodeTrap}, errors.Wrapf(err, "could not persist instance %s", input.Address)
		}
	}

	output := &UpdateOutput{Result: EXECUTION_RESULT_SUCCESS}
	if returnValue != nil {
		output.ReturnValue = serialization.ToBytes(returnValue)
	}
	return output, nil
}

func (s *Service) validateParameterSize(parameter []byte) error {
	if uint64(len(parameter)) > uint64(s.config.MaxParameterSize()) {
		return errors.Errorf("parameter of %d bytes exceeds the limit of %d", len(parameter), s.config.MaxParameterSize())
	}
	return nil
}

func (s *Service) failedResult(logger log.Logger, err error) ExecutionResult {
	s.metrics.rejects.Measure(1)
	if _, ok := errors.Cause(err).(sdk.Reject); ok {
		logger.Info("contract rejected", log.Error(err), log.Int("reject-code", int(sdk.RejectCodeOf(err))))
		return EXECUTION_RESULT_REJECTED
	}
	logger.Error("contract execution failed", log.Error(err))
	return EXECUTION_RESULT_ERROR_UNEXPECTED
}
