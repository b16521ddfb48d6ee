// Package pool provides memory optimization through object pooling.
//
// It implements pooling for frequently used objects such as Ristretto255
// scalars, Ristretto255 group elements, and the slices built from them.
// This helps reduce memory allocations and garbage collection overhead in
// the bulletproofs inner-product argument and the Burmester–Desmedt
// key-combination loop, the hottest allocation sites in this module.
//
// The pools are backed by sync.Pool, which has no fixed size; the size
// constants below are not applied to them. Objects go back to a pool only
// through an explicit Put call.
//
// This is an internal package not intended for direct use by applications.
package pool

// Pool types
const (
	// PoolSize is the default size for object pools
	PoolSize = 100

	// ScalarPoolSize is the size of the ristretto255.Scalar pool
	ScalarPoolSize = 200

	// ElementPoolSize is the size of the ristretto255.Element pool
	ElementPoolSize = 50

	// SlicePoolSize is the size of the slice pool
	SlicePoolSize = 20
)