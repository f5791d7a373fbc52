package motiongraph

import (
	"errors"
	"reflect"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestBaseFrames_UniformPacingBypassesWordCount(t *testing.T) {
	s := Enrich(RawScene{Text: "one two three four five six seven eight nine ten", ImportanceScore: 1}, "")
	got := BaseFrames(s, RhythmOptions{FPS: 30, TargetSecondsPerScene: floatPtr(4.5)})
	if got != 135 {
		t.Fatalf("base frames: want=135 got=%v", got)
	}
}

func TestBaseFrames_ContentDriven(t *testing.T) {
	s := EnrichedScene{WordCount: 10, EnergyScore: 0.5, RawScene: RawScene{ImportanceScore: 0.5}}
	got := BaseFrames(s, RhythmOptions{FPS: 30})
	want := 10 * 18 * 0.85 * 1.0
	if got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("base frames: want=%v got=%v", want, got)
	}
}

func TestAllocate_SingleSceneNotStretched(t *testing.T) {
	s := Enrich(RawScene{Text: "Ship it.", SceneRole: RoleCTA, EmphasisLevel: 0.9, ImportanceScore: 0.9}, "")
	out, err := Allocate([]EnrichedScene{s}, RhythmOptions{FPS: 30, Seed: 7})
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if out[0].TotalFrames != 60 {
		t.Fatalf("total: want=60 got=%d", out[0].TotalFrames)
	}
}

func TestAllocate_ClosingSceneStretchedAndCapped(t *testing.T) {
	scenes := []EnrichedScene{{}, {}}
	out, err := Allocate(scenes, RhythmOptions{FPS: 30, TargetSecondsPerScene: floatPtr(4)})
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if out[0].TotalFrames != 120 || out[1].TotalFrames != 132 {
		t.Fatalf("totals: want=[120 132] got=[%d %d]", out[0].TotalFrames, out[1].TotalFrames)
	}

	out, err = Allocate(scenes, RhythmOptions{FPS: 30, TargetSecondsPerScene: floatPtr(20)})
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if out[0].TotalFrames != 300 || out[1].TotalFrames != 300 {
		t.Fatalf("capped totals: want=[300 300] got=[%d %d]", out[0].TotalFrames, out[1].TotalFrames)
	}
}

func TestAllocate_SumsAndFloors(t *testing.T) {
	texts := []string{"", "Hi", "A short line here", "This scene has quite a few more words than the others do in total"}
	scenes := make([]EnrichedScene, len(texts))
	for i, txt := range texts {
		scenes[i] = Enrich(RawScene{Text: txt, SceneRole: RoleFeature, EmphasisLevel: 0.5, ImportanceScore: 0.5}, "")
	}
	for seed := int64(-5); seed <= 5; seed++ {
		out, err := Allocate(scenes, RhythmOptions{FPS: 30, Seed: seed})
		if err != nil {
			t.Fatalf("Allocate: %v", err)
		}
		for i, r := range out {
			if r.TotalFrames != r.EntryFrames+r.HoldFrames+r.ExitFrames {
				t.Fatalf("seed %d scene %d: sum mismatch %+v", seed, i, r)
			}
			if r.TotalFrames < 60 {
				t.Fatalf("seed %d scene %d: total below 60: %d", seed, i, r.TotalFrames)
			}
			if r.HoldFrames < 24 {
				t.Fatalf("seed %d scene %d: hold below floor: %d", seed, i, r.HoldFrames)
			}
			if r.EntryFrames < 10 || r.ExitFrames < 8 {
				t.Fatalf("seed %d scene %d: entry/exit minimums violated %+v", seed, i, r)
			}
		}
	}
}

func TestAllocate_HoldFloorPushesTotal(t *testing.T) {
	s := Enrich(RawScene{Text: "Go"}, "")
	out, err := Allocate([]EnrichedScene{s}, RhythmOptions{FPS: 30, MinHoldSeconds: floatPtr(3)})
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	r := out[0]
	if r.HoldFrames != 90 {
		t.Fatalf("hold: want=90 got=%d", r.HoldFrames)
	}
	if r.TotalFrames != r.EntryFrames+90+r.ExitFrames || r.TotalFrames <= 60 {
		t.Fatalf("total not recomputed: %+v", r)
	}
}

func TestAllocate_DeterministicForSeed(t *testing.T) {
	scenes := EnrichAll([]RawScene{
		{Text: "Meet the studio", SceneRole: RoleIntro, ImportanceScore: 0.3, EmphasisLevel: 0.5},
		{Text: "Edit in minutes not hours", SceneRole: RoleFeature, ImportanceScore: 0.5, EmphasisLevel: 0.5},
		{Text: "Start free", SceneRole: RoleCTA, ImportanceScore: 0.7, EmphasisLevel: 0.5},
	}, "")
	a, _ := Allocate(scenes, RhythmOptions{FPS: 30, Seed: 42})
	b, _ := Allocate(scenes, RhythmOptions{FPS: 30, Seed: 42})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("allocation not deterministic: %v vs %v", a, b)
	}
}

func TestAllocate_EmptyIsInvariantViolation(t *testing.T) {
	_, err := Allocate(nil, RhythmOptions{})
	if !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("want ErrInvariantViolation got=%v", err)
	}
}

func TestJitter_BoundedAndStable(t *testing.T) {
	for seed := int64(-50); seed < 50; seed++ {
		for i := 0; i < 20; i++ {
			j := Jitter(seed, i)
			if j < -0.05-1e-12 || j > 0.05+1e-12 {
				t.Fatalf("jitter(%d,%d) out of range: %v", seed, i, j)
			}
			if j != Jitter(seed, i) {
				t.Fatalf("jitter(%d,%d) not stable", seed, i)
			}
		}
	}
	// "0:0" hashes to 48*31*31 + 58*31 + 48 = 47974 -> bucket 974.
	bucket := 974.0
	want := bucket/999*0.1 - 0.05
	if got := Jitter(0, 0); got < want-1e-12 || got > want+1e-12 {
		t.Fatalf("jitter(0,0): want=%v got=%v", want, got)
	}
}
