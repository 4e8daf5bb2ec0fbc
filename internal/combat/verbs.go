package combat

import (
	"fmt"
)

var damageMessages = []struct {
	maxDamage int
	verb3rd   string // "{attacker} {verb} {target}!"
}{
	{0, "misses"},
	{2, "barely scratches"},
	{4, "tickles"},
	{6, "barely hurts"},
	{10, "hits"},
	{14, "hits hard"},
	{19, "pummels"},
	{24, "thrashes"},
	{30, "mauls"},
	{40, "decimates"},
}

// DamageVerb returns the 3rd person verb for a damage amount.
func DamageVerb(damage int) string {
	for _, msg := range damageMessages {
		if damage <= msg.maxDamage {
			return msg.verb3rd
		}
	}
	return "devastates"
}

// Describe renders a one-line narration of an outcome for event payloads.
func Describe(out *Outcome) string {
	attacker, defender := out.Attacker.Name, out.Defender.Name

	var msg string
	switch out.Kind {
	case Fumble:
		msg = fmt.Sprintf("%s fumbles the attack!", attacker)
	case Miss:
		msg = fmt.Sprintf("%s misses %s", attacker, defender)
	case CriticalHit:
		msg = fmt.Sprintf("%s critically %s %s for %d damage!", attacker, DamageVerb(out.Damage), defender, out.Damage)
	default:
		msg = fmt.Sprintf("%s %s %s for %d damage", attacker, DamageVerb(out.Damage), defender, out.Damage)
	}

	if out.DefenderDied {
		msg += fmt.Sprintf(" %s has died!", defender)
	}
	return msg
}
