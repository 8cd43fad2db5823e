package device

import "testing"

func TestClassifyLabels(t *testing.T) {
	cases := []struct {
		label string
		class Class
		pos   Position
	}{
		{"FaceTime HD Camera", ClassBuiltInWideAngle, PositionFront},
		{"Integrated Webcam", ClassBuiltInWideAngle, PositionFront},
		{"Built-in Camera", ClassBuiltInWideAngle, PositionFront},
		{"Logitech BRIO", ClassExternal, PositionUnspecified},
		{"USB Rear Camera", ClassExternal, PositionBack},
		{"", ClassExternal, PositionUnspecified},
	}
	for _, c := range cases {
		if got := classify(c.label); got != c.class {
			t.Errorf("classify(%q) = %v, want %v", c.label, got, c.class)
		}
		if got := position(c.label); got != c.pos {
			t.Errorf("position(%q) = %v, want %v", c.label, got, c.pos)
		}
	}
}
