package game

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestParseDirection(t *testing.T) {
	tests := map[string]struct {
		token  string
		expDir Direction
		expOK  bool
	}{
		"full word":        {token: "north", expDir: North, expOK: true},
		"single letter":    {token: "n", expDir: North, expOK: true},
		"mixed case":       {token: "SoUtH", expDir: South, expOK: true},
		"upper alias":      {token: "U", expDir: Up, expOK: true},
		"down alias":       {token: "d", expDir: Down, expOK: true},
		"unknown token":    {token: "portal", expOK: false},
		"empty token":      {token: "", expOK: false},
		"partial word":     {token: "nor", expOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir, ok := ParseDirection(tt.token)

			testutil.AssertEqual(t, "ok", ok, tt.expOK)
			if tt.expOK {
				testutil.AssertEqual(t, "direction", dir, tt.expDir)
			}
		})
	}
}

func TestRoom_ExitRoundTrip(t *testing.T) {
	r := &Room{}
	for _, d := range []Direction{North, South, East, West, Up, Down} {
		r.SetExit(d, uint64(d)+10)
	}

	for _, d := range []Direction{North, South, East, West, Up, Down} {
		testutil.AssertEqual(t, d.String(), r.Exit(d), uint64(d)+10)
	}
}

func TestResolveExit(t *testing.T) {
	room := &Room{
		ID:              1,
		NorthExit:       2,
		HasSpecialExits: true,
	}
	specials := []*SpecialExit{
		{FromRoom: 1, ToRoom: 9, Direction: "portal"},
		{FromRoom: 1, ToRoom: 8, Direction: "hatch", IsLocked: true},
		{FromRoom: 3, ToRoom: 7, Direction: "chute"},
	}

	tests := map[string]struct {
		token   string
		expDest uint64
		expErr  error
	}{
		"cardinal exit":            {token: "north", expDest: 2},
		"cardinal alias":           {token: "N", expDest: 2},
		"cardinal with no exit":    {token: "south", expErr: ErrNoExit},
		"special exit":             {token: "portal", expDest: 9},
		"special exit mixed case":  {token: "PORTAL", expDest: 9},
		"locked special exit":      {token: "hatch", expErr: ErrNoExit},
		"other room's special":     {token: "chute", expErr: ErrNoExit},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dest, err := ResolveExit(room, tt.token, specials)

			if !errors.Is(err, tt.expErr) {
				t.Fatalf("expected error %v, got %v", tt.expErr, err)
			}
			testutil.AssertEqual(t, "destination", dest, tt.expDest)
		})
	}
}

func TestResolveExit_NoSpecialTable(t *testing.T) {
	room := &Room{ID: 1, NorthExit: 2}

	_, err := ResolveExit(room, "portal", nil)
	if !errors.Is(err, ErrUnknownDirection) {
		t.Fatalf("expected ErrUnknownDirection, got %v", err)
	}
}

func TestValidateDestination(t *testing.T) {
	tests := map[string]struct {
		target *Room
		expErr error
	}{
		"active room": {target: &Room{ID: 1, IsActive: true}, expErr: nil},
		"missing":     {target: nil, expErr: ErrRoomNotFound},
		"inactive":    {target: &Room{ID: 1}, expErr: ErrRoomInactive},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := ValidateDestination(tt.target)
			if !errors.Is(err, tt.expErr) {
				t.Fatalf("expected error %v, got %v", tt.expErr, err)
			}
		})
	}
}
