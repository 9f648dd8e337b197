package gaze

import "testing"

func TestFallbackDescriptorNormalizesAndClamps(t *testing.T) {
	cases := []struct {
		mx, my, w, h int32
		wantFX       float32
		wantFY       float32
	}{
		{mx: 0, my: 0, w: 1920, h: 1080, wantFX: 0, wantFY: 0},
		{mx: 960, my: 540, w: 1920, h: 1080, wantFX: 0.5, wantFY: 0.5},
		{mx: 1920, my: 1080, w: 1920, h: 1080, wantFX: 1, wantFY: 1},
		{mx: -10, my: 5000, w: 1920, h: 1080, wantFX: 0, wantFY: 1}, // out of bounds, still clamped
	}

	for _, c := range cases {
		d := fallbackDescriptor(c.mx, c.my, c.w, c.h)
		if d.FX != c.wantFX || d.FY != c.wantFY {
			t.Errorf("fallbackDescriptor(%d,%d,%d,%d) = (%v,%v), want (%v,%v)",
				c.mx, c.my, c.w, c.h, d.FX, d.FY, c.wantFX, c.wantFY)
		}
		if d.FX < 0 || d.FX > 1 || d.FY < 0 || d.FY > 1 {
			t.Errorf("descriptor coordinates out of [0,1]: %+v", d)
		}
		if d.Sigma != 0.3 || d.Offset != 20 {
			t.Errorf("unexpected fallback sigma/offset: %+v", d)
		}
	}
}
