package pixel

import "testing"

// TestColorHexRoundTrip checks the law: decoding a color's own "#rrggbbaa"
// encoding reproduces it exactly.
func TestColorHexRoundTrip(t *testing.T) {
	colors := []Color{Transparent, Black, Red, {R: 18, G: 52, B: 86, A: 171}}
	for _, c := range colors {
		encoded, err := c.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}
		var decoded Color
		if err := decoded.UnmarshalJSON(encoded); err != nil {
			t.Fatal(err)
		}
		if decoded != c {
			t.Fatalf("round trip of %v produced %v", c, decoded)
		}
	}
}

func TestColorUnmarshalShortAndLongForms(t *testing.T) {
	cases := []struct {
		wire string
		want Color
	}{
		{`"#f00"`, Color{R: 255, G: 0, B: 0, A: 255}},
		{`"#ff0000"`, Color{R: 255, G: 0, B: 0, A: 255}},
		{`"#ff000080"`, Color{R: 255, G: 0, B: 0, A: 0x80}},
	}
	for _, tc := range cases {
		var c Color
		if err := c.UnmarshalJSON([]byte(tc.wire)); err != nil {
			t.Fatalf("%s: %v", tc.wire, err)
		}
		if c != tc.want {
			t.Fatalf("%s decoded to %v, want %v", tc.wire, c, tc.want)
		}
	}
}

func TestColorUnmarshalRejectsMissingHash(t *testing.T) {
	var c Color
	if err := c.UnmarshalJSON([]byte(`"ff0000"`)); err == nil {
		t.Fatal("want error for a color string missing its leading '#'")
	}
}

func TestColorUnmarshalRejectsWrongLength(t *testing.T) {
	var c Color
	if err := c.UnmarshalJSON([]byte(`"#ffff"`)); err == nil {
		t.Fatal("want error for a color hex segment of the wrong length")
	}
}
