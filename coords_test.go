// Copyright ©2026 The fluidsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluidsim

import "testing"

func TestCoordsAddSub(t *testing.T) {
	c := Coords{1, 2, 3}
	got := c.Add(XForw).Add(YForw).Add(ZForw)
	want := Coords{2, 3, 4}
	if got != want {
		t.Errorf("Add offsets = %v, want %v", got, want)
	}
	if got.Sub(Ones) != c {
		t.Errorf("Sub(Ones) = %v, want %v", got.Sub(Ones), c)
	}
}

func TestCoordsInRange(t *testing.T) {
	size := Coords{3, 3, 3}
	cases := []struct {
		c    Coords
		want bool
	}{
		{Coords{0, 0, 0}, true},
		{Coords{2, 2, 2}, true},
		{Coords{3, 0, 0}, false},
		{Coords{0, -1, 0}, false},
	}
	for _, tc := range cases {
		if got := tc.c.InRange(Coords{}, size); got != tc.want {
			t.Errorf("InRange(%v) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestIndexXFastest(t *testing.T) {
	size := Coords{3, 3, 3}
	if got := index(size, Coords{0, 0, 0}); got != 0 {
		t.Errorf("index(0,0,0) = %d, want 0", got)
	}
	if got := index(size, Coords{1, 0, 0}); got != 1 {
		t.Errorf("index(1,0,0) = %d, want 1", got)
	}
	if got := index(size, Coords{0, 1, 0}); got != 3 {
		t.Errorf("index(0,1,0) = %d, want 3", got)
	}
	if got := index(size, Coords{0, 0, 1}); got != 9 {
		t.Errorf("index(0,0,1) = %d, want 9", got)
	}
}
