package libutil_test

import (
	"testing"

	"opengl-sandbox/libutil"
)

func TestClamp(t *testing.T) {
	if v := libutil.Clamp(91.0, -89.0, 89.0); v != 89.0 {
		t.Errorf("clamp above range should be 89 but was %v", v)
	}
	if v := libutil.Clamp(-91.0, -89.0, 89.0); v != -89.0 {
		t.Errorf("clamp below range should be -89 but was %v", v)
	}
	if v := libutil.Clamp(15, 1, 45); v != 15 {
		t.Errorf("clamp inside range should be 15 but was %v", v)
	}
}

func TestNextPow2(t *testing.T) {
	cases := [][2]int{{0, 1}, {1, 1}, {2, 2}, {3, 4}, {255, 256}, {256, 256}, {257, 512}}
	for _, c := range cases {
		if p := libutil.NextPow2(c[0]); p != c[1] {
			t.Errorf("next power of two of %d should be %d but was %d", c[0], c[1], p)
		}
	}
}

func TestIsPow2(t *testing.T) {
	for _, n := range []int{1, 2, 64, 4096} {
		if !libutil.IsPow2(n) {
			t.Errorf("%d should be a power of two", n)
		}
	}
	for _, n := range []int{0, -2, 3, 100} {
		if libutil.IsPow2(n) {
			t.Errorf("%d should not be a power of two", n)
		}
	}
}
