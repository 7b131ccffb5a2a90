package numberutils

import "testing"

func TestToPositiveInt64(t *testing.T) {
	cases := map[string]bool{"7": true, "0": false, "-3": false, "abc": false, "": false}
	for in, ok := range cases {
		_, err := ToPositiveInt64(in)
		if (err == nil) != ok {
			t.Errorf("ToPositiveInt64(%q) err=%v, want ok=%v", in, err, ok)
		}
	}
}

func TestRoundToInt(t *testing.T) {
	cases := map[float64]int{21.4: 21, 21.5: 22, -0.4: 0, -0.5: 0, -2.5: -2, -2.6: -3, 3: 3}
	for in, want := range cases {
		if got := RoundToInt(in); got != want {
			t.Errorf("RoundToInt(%v) = %d, want %d", in, got, want)
		}
	}
}
