package internal

import (
	"sync"

	"github.com/driftmark/kinetic/entity"
)

var snapshotPool = sync.Pool{
	New: func() interface{} {
		return make(map[int64]entity.Snapshot, 16)
	},
}

// GetSnapshotMap returns an empty snapshot map from the pool.
func GetSnapshotMap() map[int64]entity.Snapshot {
	return snapshotPool.Get().(map[int64]entity.Snapshot)
}

// PutSnapshotMap clears the map and returns it to the pool. The caller must
// not retain it afterwards.
func PutSnapshotMap(m map[int64]entity.Snapshot) {
	clear(m)
	snapshotPool.Put(m)
}
