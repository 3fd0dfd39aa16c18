package llm

import (
	"math"
	"testing"
)

func TestModelCost_Cost(t *testing.T) {
	mc := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}

	tests := []struct {
		name    string
		in, out int
		wantUSD float64
	}{
		{"zero tokens", 0, 0, 0},
		{"one million input", 1_000_000, 0, 3},
		{"mixed", 500_000, 100_000, 1.5 + 1.5},
		{"small call", 1_000, 500, 0.003 + 0.0075},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mc.Cost(tt.in, tt.out)
			if math.Abs(got-tt.wantUSD) > 1e-9 {
				t.Errorf("Cost(%d, %d) = %v, want %v", tt.in, tt.out, got, tt.wantUSD)
			}
		})
	}
}

func TestLookupCost(t *testing.T) {
	if LookupCost("claude-haiku-4-5-20251001") == nil {
		t.Error("expected pricing for claude-haiku-4-5-20251001")
	}
	if LookupCost("gpt-4o-mini") == nil {
		t.Error("expected pricing for gpt-4o-mini")
	}
	if LookupCost("mock") != nil {
		t.Error("expected no pricing for mock model")
	}
}

func TestLookupCost_CoversResolvedModels(t *testing.T) {
	for _, models := range []map[string]string{anthropicModels, openaiModels, geminiModels} {
		for alias, id := range models {
			if LookupCost(id) == nil {
				t.Errorf("model %s (alias %s) has no pricing entry", id, alias)
			}
		}
	}
}
