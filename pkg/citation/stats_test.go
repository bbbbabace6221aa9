package citation

import (
	"errors"
	"testing"
)

func TestStats(t *testing.T) {
	d := NewCaselawDetector()

	text := "See Carroll v. United States, 267 U.S. 132 (1925). The stop was lawful. " +
		"Id. at 153. The statute, 18 U.S.C. § 3109, adds nothing."

	stats, err := Stats(d, text)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.ByType[TypeFull] != 1 || stats.ByType[TypeID] != 1 || stats.ByType[TypeStatute] != 1 {
		t.Errorf("ByType = %v", stats.ByType)
	}
	if stats.Words == 0 {
		t.Error("Words should be counted")
	}
	wantDensity := float64(stats.Total) / float64(stats.Words) * 1000
	if stats.Density != wantDensity {
		t.Errorf("Density = %f, want %f", stats.Density, wantDensity)
	}
	if stats.SpanBytes <= 0 {
		t.Errorf("SpanBytes = %d, want > 0", stats.SpanBytes)
	}
}

func TestStatsEmptyText(t *testing.T) {
	stats, err := Stats(NewCaselawDetector(), "")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 0 || stats.Words != 0 || stats.Density != 0 {
		t.Errorf("stats on empty text = %+v", stats)
	}
}

func TestStatsPropagatesDetectorError(t *testing.T) {
	boom := errors.New("detector offline")
	if _, err := Stats(&stubDetector{name: "bad", err: boom}, "text"); !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped detector failure", err)
	}
}
