package model

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Superset holds every distinct partition of a mode in lexicographic order. It must not be modified
type Superset struct {
	Mode       Mode
	Partitions []Partition
}

// SupersetCache computes the superset of each mode at most once and keeps it for the life of the process.
// Concurrent requests for the same missing mode wait for a single computation; different modes don't block each other
type SupersetCache struct {
	generator     partitionGenerator
	maxPartitions int
	logger        logrus.FieldLogger

	mutex     sync.RWMutex
	supersets map[string]*Superset
	flights   singleflight.Group
}

// NewSupersetCache creates an empty cache refusing modes with more than maxPartitions partitions (0 means no limit)
func NewSupersetCache(maxPartitions int, logger logrus.FieldLogger) *SupersetCache {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SupersetCache{
		generator:     newPartitionGenerator(),
		maxPartitions: maxPartitions,
		logger:        logger,
		supersets:     make(map[string]*Superset),
	}
}

// Get returns the superset of mode, computing it on first request
func (cache *SupersetCache) Get(mode Mode) (*Superset, error) {
	key := mode.String()
	if superset, ok := cache.lookup(key); ok {
		return superset, nil
	}

	if size := SupersetSize(mode); cache.maxPartitions > 0 && size > cache.maxPartitions {
		return nil, fmt.Errorf("%w: %v has more than %v partitions", ErrModeTooLarge, key, cache.maxPartitions)
	}

	value, _, _ := cache.flights.Do(key, func() (any, error) {
		// Another flight may have stored the superset between the lookup and this call
		if superset, ok := cache.lookup(key); ok {
			return superset, nil
		}

		start := time.Now()
		superset := &Superset{Mode: mode, Partitions: cache.generator.Partitions(mode)}
		cache.logger.WithFields(logrus.Fields{
			"mode":       key,
			"partitions": len(superset.Partitions),
			"elapsed":    time.Since(start),
		}).Debug("computed partition superset")

		cache.mutex.Lock()
		cache.supersets[key] = superset
		cache.mutex.Unlock()
		return superset, nil
	})
	return value.(*Superset), nil
}

// Modes returns the canonical descriptors of every cached mode, sorted
func (cache *SupersetCache) Modes() []string {
	cache.mutex.RLock()
	defer cache.mutex.RUnlock()

	modes := lo.Keys(cache.supersets)
	slices.Sort(modes)
	return modes
}

func (cache *SupersetCache) lookup(key string) (*Superset, bool) {
	cache.mutex.RLock()
	defer cache.mutex.RUnlock()

	superset, ok := cache.supersets[key]
	return superset, ok
}
