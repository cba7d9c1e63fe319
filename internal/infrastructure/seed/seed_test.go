package seed

import "testing"

func TestLoad(t *testing.T) {
	ds, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds.Users) == 0 || len(ds.Plans) != 3 {
		t.Fatalf("unexpected seed sizes: users=%d plans=%d", len(ds.Users), len(ds.Plans))
	}
	if ds.Plans[2].DurationDays != 365 {
		t.Fatalf("annual plan duration=%d", ds.Plans[2].DurationDays)
	}
	for _, r := range ds.Recommendations {
		out, err := r.Output()
		if err != nil {
			t.Fatalf("recommendation %d: %v", r.RecommendationID, err)
		}
		if out.TotalPercentage() != 100 {
			t.Fatalf("recommendation %d sums to %d", r.RecommendationID, out.TotalPercentage())
		}
	}
}

func TestLoadReturnsFreshCopies(t *testing.T) {
	a := MustLoad()
	a.Users[0].Name = "changed"
	b := MustLoad()
	if b.Users[0].Name == "changed" {
		t.Fatalf("Load must not share state between calls")
	}
}
