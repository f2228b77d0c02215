package bitrow

import (
	"errors"
	"testing"
)

func TestSignedRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		width uint
	}{
		{"minus_one_width_4", -1, 4},
		{"min_width_4", -8, 4},
		{"max_width_4", 7, 4},
		{"zero_width_1", 0, 1},
		{"minus_one_width_1", -1, 1},
		{"min_width_16", -32768, 16},
		{"max_width_16", 32767, 16},
		{"min_width_64", -9223372036854775808, 64},
		{"max_width_64", 9223372036854775807, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Row[uint64]
			if err := r.PushInt(tt.value, tt.width); err != nil {
				t.Fatalf("push %d/%d: %v", tt.value, tt.width, err)
			}
			got, err := r.PopInt(tt.width)
			if err != nil {
				t.Fatalf("pop: %v", err)
			}
			if got != tt.value {
				t.Errorf("got %d, want %d", got, tt.value)
			}
		})
	}
}

func TestSignedRange(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		width uint
		ok    bool
	}{
		{"fits_max", 7, 4, true},
		{"fits_min", -8, 4, true},
		{"above_max", 8, 4, false},
		{"below_min", -9, 4, false},
		{"one_bit_zero", 0, 1, true},
		{"one_bit_minus_one", -1, 1, true},
		{"one_bit_one", 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Row[uint16]
			err := r.PushInt(tt.value, tt.width)
			if tt.ok && err != nil {
				t.Errorf("push %d/%d: %v", tt.value, tt.width, err)
			}
			if !tt.ok {
				if !errors.Is(err, ErrValueTooWide) {
					t.Errorf("push %d/%d: got %v, want ErrValueTooWide", tt.value, tt.width, err)
				}
				if r.Used() != 0 {
					t.Errorf("row changed by failed push: used=%d", r.Used())
				}
			}
		})
	}
}

func TestSignedStoresTwosComplementPattern(t *testing.T) {
	var r Row[uint8]
	if err := r.PushInt(-2, 3); err != nil {
		t.Fatalf("push: %v", err)
	}
	// -2 in 3 bits is 0b110.
	if r.Raw() != 0b110 {
		t.Errorf("raw: got %#b, want 0b110", r.Raw())
	}
}

func TestSignedNextToUnsigned(t *testing.T) {
	// A signed field packed between unsigned neighbors must not leak its
	// sign bits into them.
	var r Row[uint32]
	mustPush(t, &r, 0xA, 4)
	if err := r.PushInt(-3, 5); err != nil {
		t.Fatalf("push int: %v", err)
	}
	mustPush(t, &r, 0x7, 3)

	v, err := r.Pop(4)
	if err != nil || v != 0xA {
		t.Fatalf("pop unsigned: got (%#x, %v)", v, err)
	}
	iv, err := r.PopInt(5)
	if err != nil || iv != -3 {
		t.Fatalf("pop int: got (%d, %v)", iv, err)
	}
	v, err = r.Pop(3)
	if err != nil || v != 0x7 {
		t.Fatalf("pop unsigned: got (%#x, %v)", v, err)
	}
}

func TestPopTopInt(t *testing.T) {
	var r Row[uint16]
	mustPush(t, &r, 0x3, 2)
	if err := r.PushInt(-5, 6); err != nil {
		t.Fatalf("push int: %v", err)
	}

	iv, err := r.PopTopInt(6)
	if err != nil || iv != -5 {
		t.Errorf("pop top int: got (%d, %v), want (-5, nil)", iv, err)
	}
	if r.Used() != 2 {
		t.Errorf("used: got %d, want 2", r.Used())
	}
}

func TestSignedZeroWidth(t *testing.T) {
	var r Row[uint8]
	if err := r.PushInt(0, 0); err != nil {
		t.Errorf("push int width 0: %v", err)
	}
	iv, err := r.PopInt(0)
	if err != nil || iv != 0 {
		t.Errorf("pop int width 0: got (%d, %v), want (0, nil)", iv, err)
	}
	if r.Used() != 0 {
		t.Errorf("used: got %d, want 0", r.Used())
	}
}
