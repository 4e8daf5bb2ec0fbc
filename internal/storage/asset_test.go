package storage

import (
	"fmt"
	"testing"
)

// gateSpec implements ValidatingSpec with a switchable outcome
type gateSpec struct {
	valid bool
}

func (s *gateSpec) Validate() error {
	if !s.valid {
		return fmt.Errorf("spec is invalid")
	}
	return nil
}

func TestAsset_Validate(t *testing.T) {
	tests := map[string]struct {
		asset  Asset[*gateSpec]
		expErr bool
	}{
		"valid asset": {
			asset: Asset[*gateSpec]{
				Version:    1,
				Identifier: "north-meadow",
				Spec:       &gateSpec{valid: true},
			},
			expErr: false,
		},
		"version not set": {
			asset: Asset[*gateSpec]{
				Identifier: "north-meadow",
				Spec:       &gateSpec{valid: true},
			},
			expErr: true,
		},
		"empty identifier": {
			asset: Asset[*gateSpec]{
				Version: 1,
				Spec:    &gateSpec{valid: true},
			},
			expErr: true,
		},
		"identifier with spaces": {
			asset: Asset[*gateSpec]{
				Version:    1,
				Identifier: "north meadow",
				Spec:       &gateSpec{valid: true},
			},
			expErr: true,
		},
		"identifier with underscore": {
			asset: Asset[*gateSpec]{
				Version:    1,
				Identifier: "north_meadow",
				Spec:       &gateSpec{valid: true},
			},
			expErr: true,
		},
		"nil spec": {
			asset: Asset[*gateSpec]{
				Version:    1,
				Identifier: "north-meadow",
			},
			expErr: true,
		},
		"invalid spec": {
			asset: Asset[*gateSpec]{
				Version:    1,
				Identifier: "north-meadow",
				Spec:       &gateSpec{valid: false},
			},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.asset.Validate()
			if tt.expErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.expErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
