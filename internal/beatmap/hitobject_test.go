package beatmap

import "testing"

func TestHeaderComboDecoding(t *testing.T) {
	tests := []struct {
		name         string
		flags        TypeFlags
		wantNewCombo bool
		wantSkip     int
	}{
		{"plain circle", TypeCircle, false, 0},
		{"new combo", TypeCircle | TypeNewCombo, true, 0},
		{"skip one colour", TypeCircle | TypeNewCombo | TypeComboSkip1, true, 1},
		{"skip seven colours", TypeCircle | TypeNewCombo | TypeComboSkip1 | TypeComboSkip2 | TypeComboSkip3, true, 7},
		{"hold bit does not set new combo", TypeHold, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Header{Type: tt.flags}
			if got := h.NewCombo(); got != tt.wantNewCombo {
				t.Errorf("NewCombo() = %v, want %v", got, tt.wantNewCombo)
			}
			if got := h.ComboColourSkip(); got != tt.wantSkip {
				t.Errorf("ComboColourSkip() = %v, want %v", got, tt.wantSkip)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		obj  HitObject
		want string
	}{
		{Circle{}, "circle"},
		{Slider{}, "slider"},
		{Spinner{}, "spinner"},
		{Hold{}, "hold"},
	}
	for _, tt := range tests {
		if got := tt.obj.Kind().String(); got != tt.want {
			t.Errorf("Kind().String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSoundFlags(t *testing.T) {
	h := Header{Sound: SoundWhistle | SoundClap}
	if h.HitSound()&SoundWhistle == 0 || h.HitSound()&SoundClap == 0 {
		t.Error("whistle and clap should be set")
	}
	if h.HitSound()&SoundNormal != 0 || h.HitSound()&SoundFinish != 0 {
		t.Error("normal and finish should be unset")
	}
}
