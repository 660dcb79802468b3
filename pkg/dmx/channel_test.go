package dmx

import "testing"

func TestChannelZeroValue(t *testing.T) {
	var ch Channel
	if ch.Value() != 0 {
		t.Errorf("Value() = %d, want 0", ch.Value())
	}
	if ch.Overridden() {
		t.Error("new channel should not be overridden")
	}
}

func TestChannelSetValue(t *testing.T) {
	for _, v := range []uint32{0, 1, 128, 255, 1 << 31} {
		var ch Channel
		ch.SetValue(v)
		if got := ch.Value(); got != v {
			t.Errorf("SetValue(%d): Value() = %d", v, got)
		}
	}
}

func TestChannelOverride(t *testing.T) {
	tests := []struct {
		name     string
		base     uint32
		override uint32
	}{
		{"above base", 10, 255},
		{"below base", 200, 0},
		{"equal to base", 42, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ch Channel
			ch.SetValue(tt.base)
			ch.OverrideValue(tt.override)

			if got := ch.Value(); got != tt.override {
				t.Errorf("Value() with override = %d, want %d", got, tt.override)
			}
			if got := ch.BaseValue(); got != tt.base {
				t.Errorf("BaseValue() = %d, want %d", got, tt.base)
			}

			ch.RevertOverride()
			if got := ch.Value(); got != tt.base {
				t.Errorf("Value() after revert = %d, want %d", got, tt.base)
			}
		})
	}
}

func TestChannelSetValueWhileOverridden(t *testing.T) {
	var ch Channel
	ch.OverrideValue(255)
	ch.SetValue(7)

	if got := ch.Value(); got != 255 {
		t.Errorf("override should keep shadowing base, Value() = %d", got)
	}
	if !ch.Overridden() {
		t.Error("override should persist across reads and base writes")
	}

	ch.RevertOverride()
	if got := ch.Value(); got != 7 {
		t.Errorf("Value() after revert = %d, want 7", got)
	}
}

func TestChannelRevertWithoutOverride(t *testing.T) {
	var ch Channel
	ch.SetValue(9)
	ch.RevertOverride()
	if got := ch.Value(); got != 9 {
		t.Errorf("Value() = %d, want 9", got)
	}
}
