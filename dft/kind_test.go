package dft

import "testing"

var allKinds = []Kind{
	RealForward, RealBackward,
	ComplexForward, ComplexBackward,
	HermitianForward, HermitianBackward,
}

func TestKindInverseInvolution(t *testing.T) {
	for _, k := range allKinds {
		if got := k.Inverse().Inverse(); got != k {
			t.Errorf("%s.Inverse().Inverse() = %s", k, got)
		}
		if k.Inverse() == k {
			t.Errorf("%s is its own inverse", k)
		}
	}
}

func TestKindShapeSymmetry(t *testing.T) {
	shapes := []Shape{{5, 6}, {4, 3}, {1, 1}, {2, 9}}

	for _, k := range allKinds {
		for _, s := range shapes {
			if k.InShape(s) != k.Inverse().OutShape(s) {
				t.Errorf("%s: InShape(%v) != Inverse().OutShape(%v)", k, s, s)
			}
			if k.OutShape(s) != k.Inverse().InShape(s) {
				t.Errorf("%s: OutShape(%v) != Inverse().InShape(%v)", k, s, s)
			}
		}
	}
}

func TestKindShapeLaws(t *testing.T) {
	logical := Shape{Width: 5, Height: 6}
	packed := Shape{Width: 3, Height: 6}

	if got := RealForward.OutShape(logical); got != packed {
		t.Errorf("RealForward.OutShape(%v) = %v, want %v", logical, got, packed)
	}
	if got := RealForward.InShape(logical); got != logical {
		t.Errorf("RealForward.InShape(%v) = %v, want %v", logical, got, logical)
	}

	for _, k := range []Kind{ComplexForward, ComplexBackward} {
		if k.InShape(logical) != logical || k.OutShape(logical) != logical {
			t.Errorf("%s does not preserve shapes", k)
		}
	}

	for _, k := range []Kind{HermitianForward, HermitianBackward} {
		if k.InShape(logical) != packed || k.OutShape(logical) != packed {
			t.Errorf("%s is not packed on both sides", k)
		}
	}
}

func TestKindElementClasses(t *testing.T) {
	if RealForward.ComplexIn() || !RealForward.ComplexOut() {
		t.Error("RealForward element classes wrong")
	}
	if !RealBackward.ComplexIn() || RealBackward.ComplexOut() {
		t.Error("RealBackward element classes wrong")
	}
	for _, k := range allKinds[2:] {
		if !k.ComplexIn() || !k.ComplexOut() {
			t.Errorf("%s should be complex on both sides", k)
		}
	}
}

func TestKindString(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range allKinds {
		s := k.String()
		if s == "unknown" || seen[s] {
			t.Errorf("bad or duplicate name %q", s)
		}
		seen[s] = true
	}
}
