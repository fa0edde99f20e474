package featureid

import "testing"

func TestMakeRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		group    uint16
		subID    uint64
	}{
		{"zero", 0, 0},
		{"max group", 0xffff, 12345},
		{"max sub", 7, 0x0000ffffffffffff},
		{"both max", 0xffff, 0x0000ffffffffffff},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			id := Make(test.group, test.subID)
			if got := GroupID(id); got != test.group {
				t.Errorf("GroupID() = %d, want %d", got, test.group)
			}
			if got := SubFeatureID(id); got != test.subID {
				t.Errorf("SubFeatureID() = %d, want %d", got, test.subID)
			}
		})
	}
}

func TestMakeMasksOversizedSubID(t *testing.T) {
	// Bits above the low 48 of subFeatureID must be discarded, not carried
	// into the group id.
	id := Make(1, 0xffffffffffffffff)
	if got := GroupID(id); got != 1 {
		t.Errorf("GroupID() = %d, want 1", got)
	}
	if got := SubFeatureID(id); got != 0x0000ffffffffffff {
		t.Errorf("SubFeatureID() = %#x, want %#x", got, uint64(0x0000ffffffffffff))
	}
}
