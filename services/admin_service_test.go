package services

import "testing"

func TestPageNormalize(t *testing.T) {
	cases := []struct {
		name       string
		in         Page
		wantNumber int
		wantSize   int
		wantOffset int
	}{
		{"defaults", Page{}, 1, 20, 0},
		{"negative page", Page{Number: -3, Size: 10}, 1, 10, 0},
		{"oversized page", Page{Number: 2, Size: 500}, 2, 20, 20},
		{"normal", Page{Number: 3, Size: 25}, 3, 25, 50},
	}

	for _, tc := range cases {
		p := tc.in.normalize()
		if p.Number != tc.wantNumber || p.Size != tc.wantSize {
			t.Errorf("%s: normalize() = {%d %d}, want {%d %d}", tc.name, p.Number, p.Size, tc.wantNumber, tc.wantSize)
		}
		if off := p.offset(); off != tc.wantOffset {
			t.Errorf("%s: offset() = %d, want %d", tc.name, off, tc.wantOffset)
		}
	}
}

func TestLogValidators(t *testing.T) {
	for _, q := range []string{"Poor", "Fair", "Good", "Excellent"} {
		if !validSleepQuality(q) {
			t.Errorf("validSleepQuality(%q) = false", q)
		}
	}
	if validSleepQuality("Amazing") {
		t.Error("validSleepQuality should reject unknown values")
	}

	for _, v := range []string{"heart_rate", "blood_pressure", "temperature", "glucose", "oxygen"} {
		if !validVitalType(v) {
			t.Errorf("validVitalType(%q) = false", v)
		}
	}
	if validVitalType("steps") {
		t.Error("validVitalType should reject unknown values")
	}

	for _, m := range []string{"Excellent", "Good", "Neutral", "Bad", "Terrible"} {
		if !validMood(m) {
			t.Errorf("validMood(%q) = false", m)
		}
	}
	if validMood("Okay") {
		t.Error("validMood should reject unknown values")
	}
}
