// SPDX-License-Identifier: EPL-2.0

package audio

import "testing"

func TestPeaks(t *testing.T) {
	t.Parallel()

	b, _ := FromChannels(8, [][]float32{
		{0.1, 0.5, -0.2, 0.0, 0.3, 0.3, -0.9, 0.2},
		{0.0, -0.4, 0.1, 0.0, 0.0, 0.8, 0.0, 0.0},
	})

	got := Peaks(b, 4)
	want := []Peak{
		{Min: -0.4, Max: 0.5},
		{Min: -0.2, Max: 0.1},
		{Min: 0.0, Max: 0.8},
		{Min: -0.9, Max: 0.2},
	}

	if len(got) != len(want) {
		t.Fatalf("Peaks() returned %d bins, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bin %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPeaks_Edges(t *testing.T) {
	t.Parallel()

	if Peaks(nil, 10) != nil {
		t.Error("Peaks(nil) should be nil")
	}

	empty, _ := NewBuffer(1, 8000, 0)
	if Peaks(empty, 10) != nil {
		t.Error("Peaks(empty) should be nil")
	}

	short, _ := FromChannels(8000, [][]float32{{0.1, 0.2, 0.3}})
	if got := Peaks(short, 10); len(got) != 3 {
		t.Errorf("Peaks() with more bins than frames returned %d bins, want 3", len(got))
	}
}
