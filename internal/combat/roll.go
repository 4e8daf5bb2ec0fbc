package combat

import (
	"math/rand/v2"
)

// Tunable constants of the opposed-roll algorithm.
const (
	// AttackerModifier and DefenderModifier scale each side's roll base.
	// The defender's 0.9 is deliberate: it offsets first-mover attacker
	// advantage elsewhere in the design and is kept as a tunable rather
	// than symmetrized.
	AttackerModifier = 1.0
	DefenderModifier = 0.9

	StatWeight  = 0.7
	SkillWeight = 0.3

	// StdDevRatio sets roll spread proportional to the roll base.
	StdDevRatio = 0.15

	CritThreshold   = 1.2
	FumbleThreshold = 0.7

	CritDamageMultiplier = 1.3
	StaminaCost          = 10
	DefaultSkill         = 50
)

// RollBase combines a stat and a skill into the center of a side's roll
// distribution: stat*0.7 + skill*0.3, scaled by the side modifier, with a
// floor of 1.
func RollBase(stat, skill uint8, modifier float64) float64 {
	base := (float64(stat)*StatWeight + float64(skill)*SkillWeight) * modifier
	if base < 1.0 {
		return 1.0
	}
	return base
}

// StdDev is the spread of a side's roll: sigma = base * 0.15.
func StdDev(base float64) float64 {
	return base * StdDevRatio
}

// Sampler draws stochastic roll samples. It is injectable so tests can pin
// outcomes and deployments can seed deterministically.
type Sampler interface {
	// Roll draws one sample from N(base, StdDev(base)).
	Roll(base float64) float64

	// IntN returns a uniform int in [0, n). Used for NPC wander choices.
	IntN(n int) int
}

// GaussianSampler draws from a normal law using a seedable PCG source.
type GaussianSampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler seeded from the given values. The same seed
// pair reproduces the same roll sequence.
func NewSampler(seed1, seed2 uint64) *GaussianSampler {
	return &GaussianSampler{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (s *GaussianSampler) Roll(base float64) float64 {
	return base + s.rng.NormFloat64()*StdDev(base)
}

func (s *GaussianSampler) IntN(n int) int {
	return s.rng.IntN(n)
}

// IsCriticalHit reports whether the attacker's sample beat the defender's
// by the critical margin.
func IsCriticalHit(attackSample, defenseSample float64) bool {
	return attackSample >= defenseSample*CritThreshold
}

// IsFumble reports whether the attacker's sample fell to the fumble floor.
// A fumble takes precedence over the raw hit comparison.
func IsFumble(attackSample, defenseSample float64) bool {
	return attackSample <= defenseSample*FumbleThreshold
}
