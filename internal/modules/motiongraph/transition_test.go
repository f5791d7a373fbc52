package motiongraph

import (
	"math"
	"reflect"
	"testing"
)

func TestAssignTransitions_FirstIsAlwaysFadeZero(t *testing.T) {
	for _, seed := range []int64{0, 1, 2, -7, math.MaxInt64, math.MinInt64} {
		for n := 1; n <= 6; n++ {
			out := AssignTransitions(n, seed, 30)
			if out[0] != (TransitionSpec{TransitionType: TransitionFade, TransitionDuration: 0}) {
				t.Fatalf("seed %d n %d: first transition %+v", seed, n, out[0])
			}
			for i := 1; i < n; i++ {
				if out[i].TransitionType == out[i-1].TransitionType {
					t.Fatalf("seed %d: scenes %d,%d repeat %s", seed, i-1, i, out[i].TransitionType)
				}
				if out[i].TransitionType == TransitionZoom {
					t.Fatalf("zoom should never be assigned")
				}
			}
		}
	}
}

func TestAssignTransitions_RotationAndCollision(t *testing.T) {
	got := types(AssignTransitions(4, 0, 30))
	want := []TransitionType{TransitionFade, TransitionSlideUp, TransitionMaskWipe, TransitionFade}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("seed 0: want=%v got=%v", want, got)
	}

	// seed 2 lands on fade at i=1 and slide-up at i=2, both collide.
	got = types(AssignTransitions(3, 2, 30))
	want = []TransitionType{TransitionFade, TransitionSlideUp, TransitionMaskWipe}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("seed 2: want=%v got=%v", want, got)
	}

	got = types(AssignTransitions(2, -1, 30))
	if got[1] != TransitionMaskWipe {
		t.Fatalf("seed -1: want=mask-wipe got=%s", got[1])
	}
}

func TestAssignTransitions_DurationScalesWithFPS(t *testing.T) {
	cases := map[int]int{30: 10, 60: 20, 24: 8, 25: 8}
	for fps, want := range cases {
		if got := AssignTransitions(2, 0, fps)[1].TransitionDuration; got != want {
			t.Fatalf("fps %d: want=%d got=%d", fps, want, got)
		}
	}
}

func TestAssignTransitions_Deterministic(t *testing.T) {
	a := AssignTransitions(12, 99, 30)
	b := AssignTransitions(12, 99, 30)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("transitions not deterministic")
	}
}

func types(specs []TransitionSpec) []TransitionType {
	out := make([]TransitionType, len(specs))
	for i, s := range specs {
		out[i] = s.TransitionType
	}
	return out
}
