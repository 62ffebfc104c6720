package datadevice

import "testing"

func TestSerialIsStale(t *testing.T) {
	tests := []struct {
		name            string
		current, serial uint32
		stale           bool
	}{
		{"older", 100, 50, true},
		{"equal", 100, 100, true},
		{"newer", 100, 101, false},
		{"far behind across wrap", 100, 4294967200, true},
		{"newer across wrap", 4294967200, 5, false},
		{"just inside half range", 2147483747, 101, true},
		{"at half range", 2147483747, 100, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := serialIsStale(test.current, test.serial); got != test.stale {
				t.Errorf("serialIsStale(%v, %v) = %v, want %v", test.current, test.serial, got, test.stale)
			}
		})
	}
}
