package placement

import "github.com/chewxy/math32"

// Seeds for the sine-hash noise. Distribution sampling and scale
// variation use decoupled seeds so changing one never reshuffles the
// other.
const (
	distributionSeed = 99
	scaleSeed        = 131
)

// hash01 is a deterministic sine hash in [0,1). It is not a general
// purpose RNG: regeneration with identical inputs must reproduce the
// exact sample sequence, which a stateful RNG would not guarantee across
// call sites.
func hash01(seed, n float32) float32 {
	s := math32.Sin(n*12.9898+seed) * 43758.5453
	return s - math32.Floor(s)
}

// hashRange maps the hash to [-1,1).
func hashRange(seed, n float32) float32 {
	return hash01(seed, n)*2 - 1
}
