package combat

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/dogmud/dogmud/internal/game"
)

func TestDamageVerb(t *testing.T) {
	tests := map[string]struct {
		damage  int
		expVerb string
	}{
		"zero damage":   {damage: 0, expVerb: "misses"},
		"light hit":     {damage: 5, expVerb: "barely hurts"},
		"solid hit":     {damage: 10, expVerb: "hits"},
		"heavy hit":     {damage: 25, expVerb: "mauls"},
		"off the chart": {damage: 99, expVerb: "devastates"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "verb", DamageVerb(tt.damage), tt.expVerb)
		})
	}
}

func TestDescribe(t *testing.T) {
	att := &game.Entity{Name: "Hero"}
	def := &game.Entity{Name: "Rat"}

	tests := map[string]struct {
		out      *Outcome
		contains []string
	}{
		"fumble": {
			out:      &Outcome{Kind: Fumble, Attacker: att, Defender: def},
			contains: []string{"Hero", "fumbles"},
		},
		"miss": {
			out:      &Outcome{Kind: Miss, Attacker: att, Defender: def},
			contains: []string{"Hero", "misses", "Rat"},
		},
		"hit": {
			out:      &Outcome{Kind: Hit, Damage: 5, Attacker: att, Defender: def},
			contains: []string{"Hero", "Rat", "5 damage"},
		},
		"critical": {
			out:      &Outcome{Kind: CriticalHit, Damage: 12, Attacker: att, Defender: def},
			contains: []string{"critically", "12 damage"},
		},
		"killing blow": {
			out:      &Outcome{Kind: Hit, Damage: 8, DefenderDied: true, Attacker: att, Defender: def},
			contains: []string{"Rat has died!"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			msg := Describe(tt.out)
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("expected %q in %q", want, msg)
				}
			}
		})
	}
}
