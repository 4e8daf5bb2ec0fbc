package combat

import (
	"errors"
	"time"

	"github.com/dogmud/dogmud/internal/game"
)

// Precondition failures. None of these mutate either combatant.
var (
	ErrAttackerDead        = errors.New("you are dead")
	ErrTargetDead          = errors.New("target is already dead")
	ErrSelfAttack          = errors.New("you cannot attack yourself")
	ErrDifferentRoom       = errors.New("target is not in the same room")
	ErrCombatNotAllowed    = errors.New("combat is not allowed here")
	ErrInsufficientStamina = errors.New("not enough stamina to attack")
)

// OutcomeKind is the result class of one resolved attack.
type OutcomeKind int

const (
	Fumble OutcomeKind = iota
	Miss
	Hit
	CriticalHit
)

func (k OutcomeKind) String() string {
	switch k {
	case Fumble:
		return "fumble"
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case CriticalHit:
		return "critical"
	default:
		return "unknown"
	}
}

// Outcome is the resolved result of one attack, including the mutated
// combatant snapshots for the caller to persist.
type Outcome struct {
	Kind         OutcomeKind
	Damage       int
	DefenderDied bool

	AttackSample  float64
	DefenseSample float64

	Attacker *game.Entity
	Defender *game.Entity
}

// CheckPreconditions runs the full precondition ladder for an attack.
// It is split out so callers can re-validate right before committing,
// tolerating a lost race against a concurrent tick or kill.
func CheckPreconditions(attacker, defender *game.Entity, room *game.Room) error {
	if !attacker.IsAlive {
		return ErrAttackerDead
	}
	if !defender.IsAlive {
		return ErrTargetDead
	}
	if attacker.ID == defender.ID {
		return ErrSelfAttack
	}
	if attacker.RoomID != defender.RoomID {
		return ErrDifferentRoom
	}
	if room == nil || !room.AllowsCombat {
		return ErrCombatNotAllowed
	}
	if attacker.Stamina < StaminaCost {
		return ErrInsufficientStamina
	}
	return nil
}

// Resolve runs one opposed-roll attack. The passed entities are mutated in
// place (damage, stamina, last-action timestamp); callers hand in copies
// and persist both snapshots only on success, keeping the operation
// all-or-nothing.
func Resolve(attacker, defender *game.Entity, attackerSkill, defenderSkill uint8, now time.Time, s Sampler) (*Outcome, error) {
	attackBase := RollBase(attacker.AttackStat(), attackerSkill, AttackerModifier)
	defenseBase := RollBase(defender.DefenseStat(), defenderSkill, DefenderModifier)

	attackSample := s.Roll(attackBase)
	defenseSample := s.Roll(defenseBase)

	out := &Outcome{
		AttackSample:  attackSample,
		DefenseSample: defenseSample,
		Attacker:      attacker,
		Defender:      defender,
	}

	hit := attackSample > defenseSample

	switch {
	case IsFumble(attackSample, defenseSample):
		// Fumble wins over the raw comparison.
		out.Kind = Fumble

	case !hit:
		out.Kind = Miss

	default:
		damage := int(attacker.Strength) / 10
		if IsCriticalHit(attackSample, defenseSample) {
			out.Kind = CriticalHit
			damage = int(float64(damage) * CritDamageMultiplier)
		} else {
			out.Kind = Hit
		}

		out.Damage = damage
		defender.ApplyDamage(damage)
		out.DefenderDied = !defender.IsAlive
	}

	// Swinging costs stamina whether or not it lands.
	attacker.DrainResource(game.ResourceStamina, StaminaCost)
	attacker.LastActionAt = now

	return out, nil
}
