// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package leveldb

import (
	"encoding/binary"
	"github.com/orbs-network/my-concordium-project/instrumentation/metric"
	"github.com/orbs-network/my-concordium-project/primitives"
	"github.com/orbs-network/my-concordium-project/serialization"
	"github.com/orbs-network/my-concordium-project/services/statestorage/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"sync"
	"time"
)

var (
	instancePrefix = []byte("instance/")
	nextIndexKey   = []byte("meta/next-index")
)

type metrics struct {
	writeTime *metric.Histogram
	readTime  *metric.Histogram
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		writeTime: m.NewLatency("StateStoragePersistence.LevelDB.WriteTime.Millis", 5*time.Second),
		readTime:  m.NewLatency("StateStoragePersistence.LevelDB.ReadTime.Millis", 5*time.Second),
	}
}

type LevelDBStatePersistence struct {
	logger  log.Logger
	metrics *metrics
	mutex   sync.Mutex
	db      *leveldb.DB
}

func NewStatePersistence(path string, parentLogger log.Logger, metricFactory metric.Factory) (*LevelDBStatePersistence, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open state db at %s", path)
	}
	return newStatePersistence(db, parentLogger.WithTags(log.String("state-db", path)), metricFactory), nil
}

// NewInMemoryStatePersistence is backed by leveldb's memory storage; used by tests.
func NewInMemoryStatePersistence(parentLogger log.Logger, metricFactory metric.Factory) (*LevelDBStatePersistence, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not open in-memory state db")
	}
	return newStatePersistence(db, parentLogger, metricFactory), nil
}

func newStatePersistence(db *leveldb.DB, logger log.Logger, metricFactory metric.Factory) *LevelDBStatePersistence {
	return &LevelDBStatePersistence{
		logger:  logger,
		metrics: newMetrics(metricFactory),
		db:      db,
	}
}

func instanceKey(address primitives.ContractAddress) []byte {
	key := make([]byte, len(instancePrefix)+16)
	copy(key, instancePrefix)
	binary.BigEndian.PutUint64(key[len(instancePrefix):], address.Index)
	binary.BigEndian.PutUint64(key[len(instancePrefix)+8:], address.Subindex)
	return key
}

func (sp *LevelDBStatePersistence) Read(address primitives.ContractAddress) (*adapter.InstanceRecord, bool, error) {
	start := time.Now()
	defer sp.metrics.readTime.RecordSince(start)

	value, err := sp.db.Get(instanceKey(address), nil)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "could not read instance %s", address)
	}

	record := &adapter.InstanceRecord{}
	if err := serialization.FromBytes(value, record); err != nil {
		return nil, false, errors.Wrapf(err, "instance %s is corrupt", address)
	}
	return record, true, nil
}

func (sp *LevelDBStatePersistence) Write(address primitives.ContractAddress, record *adapter.InstanceRecord) error {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()

	start := time.Now()
	defer sp.metrics.writeTime.RecordSince(start)

	next, err := sp.readNextIndex()
	if err != nil {
		return err
	}

	batch := new(leveldb.Batch)
	batch.Put(instanceKey(address), serialization.ToBytes(record))
	if address.Index >= next {
		batch.Put(nextIndexKey, encodeIndex(address.Index+1))
	}
	if err := sp.db.Write(batch, nil); err != nil {
		return errors.Wrapf(err, "could not write instance %s", address)
	}
	return nil
}

func (sp *LevelDBStatePersistence) NextIndex() (uint64, error) {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()

	return sp.readNextIndex()
}

func (sp *LevelDBStatePersistence) readNextIndex() (uint64, error) {
	value, err := sp.db.Get(nextIndexKey, nil)
	if err == leveldb.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "could not read next contract index")
	}
	if len(value) != 8 {
		return 0, errors.Errorf("next contract index has length %d", len(value))
	}
	return binary.BigEndian.Uint64(value), nil
}

func (sp *LevelDBStatePersistence) Close() error {
	sp.logger.Info("closing state db")
	return sp.db.Close()
}

func encodeIndex(index uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, index)
	return b
}
