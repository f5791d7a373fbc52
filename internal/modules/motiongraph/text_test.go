package motiongraph

import (
	"reflect"
	"testing"
)

func TestSplitBlocks(t *testing.T) {
	got := SplitBlocks("Hello world. This is 3.5 times better!  Buy now?!\nLast line\n\n")
	want := []string{"Hello world.", "This is 3.5 times better!", "Buy now?!", "Last line"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want=%q got=%q", want, got)
	}
	if got := SplitBlocks("   \n  "); len(got) != 0 {
		t.Fatalf("blank input: want no blocks got=%q", got)
	}
}

func TestHighlightIndices(t *testing.T) {
	if got := HighlightIndices([]string{"The", "secret", "is", "out"}, []string{"secret"}); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("want=[1] got=%v", got)
	}
	got := HighlightIndices([]string{"SECRET", "secrets", "secret.", "(Secret)", "Secret"}, []string{" Secret "})
	if !reflect.DeepEqual(got, []int{0, 4}) {
		t.Fatalf("exact match: want=[0 4] got=%v", got)
	}
	if got := HighlightIndices([]string{"a"}, []string{"", "  "}); got != nil {
		t.Fatalf("empty terms: want=nil got=%v", got)
	}
}

func TestTruncateIsRuneSafe(t *testing.T) {
	if got := Truncate("héllo wörld", 4); got != "héll" {
		t.Fatalf("want=héll got=%q", got)
	}
	if got := Truncate("short", 25); got != "short" {
		t.Fatalf("want=short got=%q", got)
	}
}

func TestDefaultSeedStable(t *testing.T) {
	if DefaultSeed("abc") != DefaultSeed("abc") {
		t.Fatalf("seed not stable")
	}
	// FNV-1a 32 of "a".
	if got := DefaultSeed("a"); got != 0xe40c292c {
		t.Fatalf("fnv1a(a): want=%d got=%d", int64(0xe40c292c), got)
	}
}
