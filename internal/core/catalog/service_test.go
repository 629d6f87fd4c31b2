package catalog

import (
	"context"
	"testing"
)

// These tests run without a database; the service falls back to the
// embedded defaults, which is exactly the behavior under test.

func TestScenariosLevelFilter(t *testing.T) {
	svc := NewService()

	all, err := svc.Scenarios(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != len(defaultScenarios) {
		t.Fatalf("empty level must return the full catalog, got %d", len(all))
	}

	a1, err := svc.Scenarios(context.Background(), "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, sc := range a1 {
		if sc.MinLevel != "A1" {
			t.Errorf("A1 catalog contains scenario above level: %+v", sc)
		}
	}
	if len(a1) == 0 {
		t.Error("A1 catalog must not be empty")
	}

	c2, err := svc.Scenarios(context.Background(), "C2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c2) != len(defaultScenarios) {
		t.Errorf("C2 must see every scenario, got %d of %d", len(c2), len(defaultScenarios))
	}
	if len(a1) >= len(c2) {
		t.Errorf("catalog must grow with level: A1=%d C2=%d", len(a1), len(c2))
	}
}

func TestScenariosUnsupportedLevel(t *testing.T) {
	if _, err := NewService().Scenarios(context.Background(), "Z9"); err == nil {
		t.Fatal("expected error for unsupported level")
	}
}

func TestRandomTip(t *testing.T) {
	tip := NewService().RandomTip(context.Background())
	if tip.Text == "" {
		t.Fatal("tip text must be non-empty")
	}
}

func TestLanguages(t *testing.T) {
	langs, levels := NewService().Languages()
	if len(langs) == 0 {
		t.Fatal("languages must be non-empty")
	}
	if len(levels) != 6 {
		t.Fatalf("expected 6 CEFR levels, got %d", len(levels))
	}
}
