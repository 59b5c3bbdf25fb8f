package color

import "testing"

func TestFromRGBAUnmultiplied(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint8
		want       Color32
	}{
		{"zero alpha", 200, 100, 50, 0, Transparent},
		{"opaque", 200, 100, 50, 255, Color32{200, 100, 50, 255}},
		{"transparent keeps nothing", 1, 2, 3, 0, Color32{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromRGBAUnmultiplied(tt.r, tt.g, tt.b, tt.a)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnmultipliedRoundtrip(t *testing.T) {
	// Premultiplying quantizes channels to bytes, so unmultiplying can
	// be off by up to 255/(2*alpha) per channel.
	cases := []struct {
		rgba [4]uint8
		tol  uint8
	}{
		{[4]uint8{255, 255, 255, 255}, 1},
		{[4]uint8{128, 64, 32, 200}, 2},
		{[4]uint8{200, 100, 50, 10}, 13},
		{[4]uint8{255, 0, 0, 1}, 1},
	}
	for _, tc := range cases {
		c := tc.rgba
		pm := FromRGBAUnmultiplied(c[0], c[1], c[2], c[3])
		um := pm.ToUnmultiplied()
		for i := 0; i < 3; i++ {
			if diffU8(um[i], c[i]) > tc.tol {
				t.Errorf("channel %d of %v: got %d, want %d±%d", i, c, um[i], c[i], tc.tol)
			}
		}
		if um[3] != c[3] {
			t.Errorf("alpha of %v: got %d, want %d", c, um[3], c[3])
		}
	}
}

func TestAdditive(t *testing.T) {
	c := RGBAdditive(10, 20, 30)
	if !c.IsAdditive() {
		t.Fatal("RGBAdditive should be additive")
	}
	if c.A != 0 {
		t.Errorf("additive alpha = %d, want 0", c.A)
	}
	if (Color32{10, 20, 30, 255}).IsAdditive() {
		t.Error("opaque color reported additive")
	}
	if !RGB(10, 20, 30).Additive().IsAdditive() {
		t.Error("Additive() should clear alpha")
	}
}

func TestBlackWhiteAlpha(t *testing.T) {
	if got := WhiteAlpha(0); got != Transparent {
		t.Errorf("WhiteAlpha(0) = %v", got)
	}
	if got := WhiteAlpha(255); got != White {
		t.Errorf("WhiteAlpha(255) = %v", got)
	}
	if got := BlackAlpha(128); got != (Color32{0, 0, 0, 128}) {
		t.Errorf("BlackAlpha(128) = %v", got)
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name          string
		under, over   Color32
		want          Color32
	}{
		{"opaque wins", Red, Green, Green},
		{"transparent noop", Red, Transparent, Red},
		{"additive adds", RGB(10, 20, 30), RGBAdditive(5, 5, 5), RGB(15, 25, 35)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.under.Blend(tt.over)
			if got != tt.want {
				t.Errorf("%v.Blend(%v) = %v, want %v", tt.under, tt.over, got, tt.want)
			}
		})
	}
}

func TestGammaMultiply(t *testing.T) {
	c := RGB(100, 200, 40)
	if got := c.GammaMultiply(1); got != c {
		t.Errorf("factor 1 changed color: %v", got)
	}
	if got := c.GammaMultiply(0); got != Transparent {
		t.Errorf("factor 0: got %v, want transparent", got)
	}
	half := c.GammaMultiply(0.5)
	if half.A != 128 && half.A != 127 {
		t.Errorf("half alpha = %d", half.A)
	}
}

func TestToOpaque(t *testing.T) {
	// ToOpaque divides alpha back out in linear space, so it inverts
	// LinearMultiply up to quantization.
	faint := RGB(200, 100, 50).LinearMultiply(0.15)
	op := faint.ToOpaque()
	if !op.IsOpaque() {
		t.Fatalf("ToOpaque not opaque: %v", op)
	}
	if diffU8(op.R, 200) > 3 || diffU8(op.G, 100) > 3 || diffU8(op.B, 50) > 3 {
		t.Errorf("ToOpaque lost intensity: %v", op)
	}
}

func TestColor32String(t *testing.T) {
	if got := (Color32{255, 0, 128, 64}).String(); got != "#FF_00_80_40" {
		t.Errorf("String() = %q", got)
	}
}

func diffU8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
