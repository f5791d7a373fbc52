package motiongraph

import (
	"math"
	"testing"
)

func TestEnrich_EnergyBlendsEmphasisDensityImportance(t *testing.T) {
	s := Enrich(RawScene{Text: "Ship it.", SceneRole: RoleCTA, EmphasisLevel: 0.9, ImportanceScore: 0.9}, "")
	if s.WordCount != 2 {
		t.Fatalf("word count: want=2 got=%d", s.WordCount)
	}
	want := 0.4*0.9 + 0.3*(1-1/1.4) + 0.3*0.9
	if math.Abs(s.EnergyScore-want) > 1e-9 {
		t.Fatalf("energy: want=%v got=%v", want, s.EnergyScore)
	}
	if math.Abs(s.VisualWeight-0.9) > 1e-9 {
		t.Fatalf("visual weight: want=0.9 got=%v", s.VisualWeight)
	}
	if s.ToneCategory != ToneUrgent {
		t.Fatalf("tone: want=%s got=%s", ToneUrgent, s.ToneCategory)
	}
}

func TestEnrich_EmptyTextIsDefined(t *testing.T) {
	s := Enrich(RawScene{Text: "   ", SceneRole: RoleIntro, EmphasisLevel: 0.5, ImportanceScore: 0.3}, "neutral")
	if s.WordCount != 0 || len(s.Words) != 0 {
		t.Fatalf("expected no words, got %v", s.Words)
	}
	if math.IsNaN(s.EnergyScore) || s.EnergyScore < 0 || s.EnergyScore > 1 {
		t.Fatalf("energy not in [0,1]: %v", s.EnergyScore)
	}
	if math.Abs(s.EnergyScore-0.29) > 1e-9 {
		t.Fatalf("energy: want=0.29 got=%v", s.EnergyScore)
	}
	if math.IsNaN(s.VisualWeight) || math.Abs(s.VisualWeight-0.38) > 1e-9 {
		t.Fatalf("visual weight: want=0.38 got=%v", s.VisualWeight)
	}
	if s.LayoutHint != "" {
		t.Fatalf("layout hint: want empty got=%s", s.LayoutHint)
	}
}

func TestEnrich_ToneByRoleAndGlobalTone(t *testing.T) {
	cases := []struct {
		role SceneRole
		tone string
		want Tone
	}{
		{RoleCTA, "calm", ToneUrgent},
		{RoleIntro, "urgent", ToneCalm},
		{RoleProblem, "Urgent and direct", ToneUrgent},
		{RoleProblem, "playful", ToneNeutral},
		{RoleFeature, "Celebratory", ToneCelebratory},
		{RoleFeature, "bold", ToneCelebratory},
		{RoleFeature, "urgent", ToneNeutral},
	}
	for _, tc := range cases {
		got := Enrich(RawScene{Text: "x", SceneRole: tc.role}, tc.tone).ToneCategory
		if got != tc.want {
			t.Fatalf("%s/%q: want=%s got=%s", tc.role, tc.tone, tc.want, got)
		}
	}
}

func TestEnrich_LayoutHint(t *testing.T) {
	cases := []struct {
		name string
		raw  RawScene
		want LayoutType
	}{
		{"single short word", RawScene{Text: "Launch"}, LayoutImpactSingleWord},
		{"single long word", RawScene{Text: "Extraordinarily"}, ""},
		{"eight words", RawScene{Text: "one two three four five six seven eight"}, LayoutSplitStack},
		{"fifty chars", RawScene{Text: "Supercalifragilistic expialidocious antidisestablish"}, LayoutSplitStack},
		{"short phrase", RawScene{Text: "Make it count"}, ""},
		{"source suggestion wins", RawScene{Text: "Go", SuggestedLayout: LayoutMinimalLeft}, LayoutMinimalLeft},
		{"invalid suggestion ignored", RawScene{Text: "Go", SuggestedLayout: "diagonal"}, LayoutImpactSingleWord},
	}
	for _, tc := range cases {
		if got := Enrich(tc.raw, "").LayoutHint; got != tc.want {
			t.Fatalf("%s: want=%q got=%q", tc.name, tc.want, got)
		}
	}
}
