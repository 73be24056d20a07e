package source

import "testing"

func TestSpan(t *testing.T) {
	sp := Span{Start: 2, End: 5}

	if sp.Empty() {
		t.Error("non-empty span reported empty")
	}
	if sp.Len() != 3 {
		t.Errorf("Len: got %d, want 3", sp.Len())
	}
	if sp.String() != "2-5" {
		t.Errorf("String: got %q", sp.String())
	}
	if !(Span{Start: 4, End: 4}).Empty() {
		t.Error("zero-length span not empty")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{Start: 3, End: 6}
	b := Span{Start: 1, End: 4}

	got := a.Cover(b)
	if got.Start != 1 || got.End != 6 {
		t.Errorf("Cover: got %s, want 1-6", got)
	}

	got = a.Cover(Span{Start: 4, End: 9})
	if got.Start != 3 || got.End != 9 {
		t.Errorf("Cover: got %s, want 3-9", got)
	}
}

func TestInput(t *testing.T) {
	in := NewInput("1 + 2")

	if in.Len() != 5 {
		t.Errorf("Len: got %d, want 5", in.Len())
	}
	if in.String() != "1 + 2" {
		t.Errorf("String: got %q", in.String())
	}
	if got := in.Snippet(Span{Start: 2, End: 3}); got != "+" {
		t.Errorf("Snippet: got %q, want %q", got, "+")
	}
}

func TestSnippetClamps(t *testing.T) {
	in := NewInput("abc")

	if got := in.Snippet(Span{Start: 1, End: 99}); got != "bc" {
		t.Errorf("over-long span: got %q, want %q", got, "bc")
	}
	if got := in.Snippet(Span{Start: 7, End: 9}); got != "" {
		t.Errorf("out-of-range span: got %q, want empty", got)
	}
}
