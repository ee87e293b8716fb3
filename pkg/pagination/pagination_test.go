package pagination

import "testing"

func TestNormalize_Defaults(t *testing.T) {
	p := Normalize(Options{})
	if p.Page != 1 || p.Limit != 10 || p.Skip != 0 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if p.SortBy != "created_at" || p.SortOrder != SortDesc {
		t.Fatalf("unexpected sort defaults: %+v", p)
	}
}

func TestNormalize_SkipComputation(t *testing.T) {
	p := Normalize(Options{Page: 3, Limit: 25})
	if p.Skip != 50 {
		t.Fatalf("expected skip 50, got %d", p.Skip)
	}
}

func TestNormalize_LimitClamped(t *testing.T) {
	p := Normalize(Options{Limit: 5000})
	if p.Limit != 100 {
		t.Fatalf("expected limit clamped to 100, got %d", p.Limit)
	}
}

func TestNormalize_Ascending(t *testing.T) {
	p := Normalize(Options{SortBy: "title", SortOrder: "asc"})
	if p.SortBy != "title" || p.SortOrder != SortAsc {
		t.Fatalf("unexpected sort: %+v", p)
	}
}

func TestNormalize_NegativePage(t *testing.T) {
	p := Normalize(Options{Page: -2, Limit: -1})
	if p.Page != 1 || p.Limit != 10 || p.Skip != 0 {
		t.Fatalf("unexpected normalization: %+v", p)
	}
}
