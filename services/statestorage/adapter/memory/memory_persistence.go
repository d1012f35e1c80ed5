// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package memory

import (
	"fmt"
	"github.com/orbs-network/my-concordium-project/instrumentation/metric"
	"github.com/orbs-network/my-concordium-project/primitives"
	"github.com/orbs-network/my-concordium-project/services/statestorage/adapter"
	"sort"
	"strings"
	"sync"
)

type metrics struct {
	numberOfInstances *metric.Gauge
	stateSizeBytes    *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		numberOfInstances: m.NewGauge("StateStoragePersistence.TotalNumberOfInstances.Count"),
		stateSizeBytes:    m.NewGauge("StateStoragePersistence.TotalStateSize.Bytes"),
	}
}

type InMemoryStatePersistence struct {
	metrics   *metrics
	mutex     sync.RWMutex
	instances map[primitives.ContractAddress]*adapter.InstanceRecord
	nextIndex uint64
}

func NewStatePersistence(metricFactory metric.Factory) *InMemoryStatePersistence {
	return &InMemoryStatePersistence{
		metrics:   newMetrics(metricFactory),
		instances: make(map[primitives.ContractAddress]*adapter.InstanceRecord),
	}
}

func (sp *InMemoryStatePersistence) reportSize() {
	size := 0
	for _, record := range sp.instances {
		size += len(record.State)
	}
	sp.metrics.numberOfInstances.Update(int64(len(sp.instances)))
	sp.metrics.stateSizeBytes.Update(int64(size))
}

func (sp *InMemoryStatePersistence) Read(address primitives.ContractAddress) (*adapter.InstanceRecord, bool, error) {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	record, ok := sp.instances[address]
	if !ok {
		return nil, false, nil
	}
	return record.Clone(), true, nil
}

func (sp *InMemoryStatePersistence) Write(address primitives.ContractAddress, record *adapter.InstanceRecord) error {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()

	sp.instances[address] = record.Clone()
	if address.Index >= sp.nextIndex {
		sp.nextIndex = address.Index + 1
	}
	sp.reportSize()
	return nil
}

func (sp *InMemoryStatePersistence) NextIndex() (uint64, error) {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	return sp.nextIndex, nil
}

func (sp *InMemoryStatePersistence) Dump() string {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	lines := make([]string, 0, len(sp.instances))
	for address, record := range sp.instances {
		lines = append(lines, fmt.Sprintf("%s %s %x", address, record.ContractName, record.State))
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}
