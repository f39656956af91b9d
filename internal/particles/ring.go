// Package particles holds the fixed-capacity ring buffer behind the rain
// and snow systems. Records are never removed, only overwritten at the
// write cursor; the whole buffer is drawn every frame.
package particles

import "fmt"

// Sink receives every range of floats that changed after an emission.
// offset is counted in floats from the start of the buffer.
type Sink interface {
	Upload(offset int, data []float32)
}

type Ring[R Record] struct {
	slots   []R
	data    []float32
	stride  int
	cursor  int
	emitted uint64
	sink    Sink
}

func NewRing[R Record](capacity int) *Ring[R] {
	if capacity <= 0 {
		panic(fmt.Sprintf("particles: invalid ring capacity %d", capacity))
	}
	var zero R
	stride := zero.Vertices() * VertexFloats
	return &Ring[R]{
		slots:  make([]R, capacity),
		data:   make([]float32, capacity*stride),
		stride: stride,
	}
}

// SetSink attaches the upload target. A nil sink keeps the ring host-only.
func (r *Ring[R]) SetSink(s Sink) {
	r.sink = s
}

func (r *Ring[R]) Emit(rec R) {
	r.slots[r.cursor] = rec
	start := r.cursor * r.stride
	chunk := r.data[start : start+r.stride]
	rec.Put(chunk)
	if r.sink != nil {
		r.sink.Upload(start, chunk)
	}
	r.cursor = (r.cursor + 1) % len(r.slots)
	r.emitted++
}

// Initialize emits count records produced by gen, in order.
func (r *Ring[R]) Initialize(count int, gen func(i int) R) {
	for i := range count {
		r.Emit(gen(i))
	}
}

func (r *Ring[R]) Cap() int        { return len(r.slots) }
func (r *Ring[R]) Cursor() int     { return r.cursor }
func (r *Ring[R]) Emitted() uint64 { return r.emitted }
func (r *Ring[R]) At(i int) R      { return r.slots[i] }

// Floats is the host mirror of the whole buffer, laid out exactly as it is
// uploaded. The slice is owned by the ring.
func (r *Ring[R]) Floats() []float32 {
	return r.data
}

func (r *Ring[R]) Kind() Kind {
	var zero R
	return zero.Kind()
}

// VertexCount is the number of vertices a full redraw submits.
func (r *Ring[R]) VertexCount() int {
	return len(r.data) / VertexFloats
}
