package spawn

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hadisv/glcourse/internal/particles"
)

// Sampling volume shared by both weathers. Fresh records spawn at the
// ceiling; the vertex shader wraps everything back into the box.
const (
	HalfWidth = 20
	Ceiling   = 20

	StreakLength = 0.4
)

var wind = mgl32.Vec3{0.8, 0, 0.3}

type Mode string

const (
	ModeSnow Mode = "snow"
	ModeRain Mode = "rain"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSnow, ModeRain:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown weather mode %q (want %q or %q)", s, ModeSnow, ModeRain)
	}
}

// System is one weather variant over a particle ring.
type System interface {
	Prefill(count int)
	Step(now float32)
	SetSink(s particles.Sink)
	Kind() particles.Kind
	VertexCount() int
	Floats() []float32
}

func New(mode Mode, capacity int, rng *rand.Rand) (System, error) {
	switch mode {
	case ModeSnow:
		return NewSnow(capacity, rng), nil
	case ModeRain:
		return NewRain(capacity, rng), nil
	default:
		return nil, fmt.Errorf("unknown weather mode %q", mode)
	}
}

type Snow struct {
	*particles.Ring[particles.Particle]
	rng *rand.Rand
}

func NewSnow(capacity int, rng *rand.Rand) *Snow {
	return &Snow{Ring: particles.NewRing[particles.Particle](capacity), rng: rng}
}

func (s *Snow) Prefill(count int) {
	s.Initialize(count, func(int) particles.Particle {
		return s.flake(randomPoint(s.rng), 0)
	})
}

func (s *Snow) Step(now float32) {
	s.Emit(s.flake(spawnPoint(s.rng), now))
}

func (s *Snow) flake(pos mgl32.Vec3, birth float32) particles.Particle {
	shade := 0.85 + s.rng.Float32()*0.15
	return particles.Particle{
		Position: pos,
		Velocity: mgl32.Vec3{
			between(s.rng, -0.3, 0.3),
			-between(s.rng, 0.5, 1.5),
			between(s.rng, -0.3, 0.3),
		},
		Offset: randomUnit(s.rng),
		Color:  mgl32.Vec3{shade, shade, 1},
		Birth:  birth,
	}
}

type Rain struct {
	*particles.Ring[particles.Segment]
	rng *rand.Rand
}

func NewRain(capacity int, rng *rand.Rand) *Rain {
	return &Rain{Ring: particles.NewRing[particles.Segment](capacity), rng: rng}
}

func (r *Rain) Prefill(count int) {
	r.Initialize(count, func(int) particles.Segment {
		return r.drop(randomPoint(r.rng), 0)
	})
}

func (r *Rain) Step(now float32) {
	r.Emit(r.drop(spawnPoint(r.rng), now))
}

func (r *Rain) drop(start mgl32.Vec3, birth float32) particles.Segment {
	vel := mgl32.Vec3{0, -between(r.rng, 8, 12), 0}.Add(wind)
	return particles.Segment{
		Start:    start,
		End:      start.Add(vel.Normalize().Mul(StreakLength)),
		Velocity: vel,
		Offset:   randomUnit(r.rng),
		Color:    mgl32.Vec3{0.6, 0.65, 0.8},
		Birth:    birth,
	}
}

func between(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

func randomPoint(rng *rand.Rand) mgl32.Vec3 {
	return mgl32.Vec3{
		between(rng, -HalfWidth, HalfWidth),
		between(rng, 0, Ceiling),
		between(rng, -HalfWidth, HalfWidth),
	}
}

func spawnPoint(rng *rand.Rand) mgl32.Vec3 {
	return mgl32.Vec3{
		between(rng, -HalfWidth, HalfWidth),
		Ceiling,
		between(rng, -HalfWidth, HalfWidth),
	}
}

func randomUnit(rng *rand.Rand) mgl32.Vec3 {
	return mgl32.Vec3{rng.Float32(), rng.Float32(), rng.Float32()}
}
