package pool

import (
	"sync"

	"github.com/gtank/ristretto255"
)

// ObjectPool provides a memory pool for frequently used Ristretto255
// scalars, elements and the slices built from them.
type ObjectPool struct {
	scalarPool      sync.Pool
	scalarSlicePool sync.Pool

	elementPool      sync.Pool
	elementSlicePool sync.Pool
}

// NewObjectPool creates a new object pool.
func NewObjectPool() *ObjectPool {
	return &ObjectPool{
		scalarPool: sync.Pool{
			New: func() interface{} {
				return ristretto255.NewScalar()
			},
		},
		scalarSlicePool: sync.Pool{
			New: func() interface{} {
				return make([]*ristretto255.Scalar, 0, 8)
			},
		},
		elementPool: sync.Pool{
			New: func() interface{} {
				return ristretto255.NewElement()
			},
		},
		elementSlicePool: sync.Pool{
			New: func() interface{} {
				return make([]*ristretto255.Element, 0, 8)
			},
		},
	}
}

// Singleton instance of the object pool.
var defaultPool = NewObjectPool()

// GetScalar gets a zeroed scalar from the pool.
func (p *ObjectPool) GetScalar() *ristretto255.Scalar {
	s := p.scalarPool.Get().(*ristretto255.Scalar)
	return s.Subtract(s, s)
}

// PutScalar returns a scalar to the pool.
func (p *ObjectPool) PutScalar(s *ristretto255.Scalar) {
	if s != nil {
		p.scalarPool.Put(s)
	}
}

// GetScalarSlice gets a slice of scalar pointers with at least capacity
// from the pool.
func (p *ObjectPool) GetScalarSlice(capacity int) []*ristretto255.Scalar {
	slice := p.scalarSlicePool.Get().([]*ristretto255.Scalar)
	if cap(slice) < capacity {
		return make([]*ristretto255.Scalar, 0, capacity)
	}
	return slice[:0]
}

// PutScalarSlice returns a slice of scalar pointers to the pool.
func (p *ObjectPool) PutScalarSlice(slice []*ristretto255.Scalar) {
	if slice != nil {
		p.scalarSlicePool.Put(slice)
	}
}

// GetElement gets an identity-valued element from the pool.
func (p *ObjectPool) GetElement() *ristretto255.Element {
	e := p.elementPool.Get().(*ristretto255.Element)
	return e.Subtract(e, e)
}

// PutElement returns an element to the pool.
func (p *ObjectPool) PutElement(e *ristretto255.Element) {
	if e != nil {
		p.elementPool.Put(e)
	}
}

// GetElementSlice gets a slice of element pointers with at least capacity
// from the pool.
func (p *ObjectPool) GetElementSlice(capacity int) []*ristretto255.Element {
	slice := p.elementSlicePool.Get().([]*ristretto255.Element)
	if cap(slice) < capacity {
		return make([]*ristretto255.Element, 0, capacity)
	}
	return slice[:0]
}

// PutElementSlice returns a slice of element pointers to the pool.
func (p *ObjectPool) PutElementSlice(slice []*ristretto255.Element) {
	if slice != nil {
		p.elementSlicePool.Put(slice)
	}
}

// Global helper functions operating on the default pool.

// GetScalar gets a zeroed scalar from the default pool.
func GetScalar() *ristretto255.Scalar { return defaultPool.GetScalar() }

// PutScalar returns a scalar to the default pool.
func PutScalar(s *ristretto255.Scalar) { defaultPool.PutScalar(s) }

// GetScalarSlice gets a slice of scalar pointers from the default pool.
func GetScalarSlice(capacity int) []*ristretto255.Scalar {
	return defaultPool.GetScalarSlice(capacity)
}

// PutScalarSlice returns a slice of scalar pointers to the default pool.
func PutScalarSlice(slice []*ristretto255.Scalar) { defaultPool.PutScalarSlice(slice) }

// GetElement gets a zeroed element from the default pool.
func GetElement() *ristretto255.Element { return defaultPool.GetElement() }

// PutElement returns an element to the default pool.
func PutElement(e *ristretto255.Element) { defaultPool.PutElement(e) }

// GetElementSlice gets a slice of element pointers from the default pool.
func GetElementSlice(capacity int) []*ristretto255.Element {
	return defaultPool.GetElementSlice(capacity)
}

// PutElementSlice returns a slice of element pointers to the default pool.
func PutElementSlice(slice []*ristretto255.Element) { defaultPool.PutElementSlice(slice) }
