// ABOUTME: Tests for the cost ledger and provenance billing rules
// ABOUTME: Only primary-provider stages count as billable

package models

import (
	"math"
	"testing"
)

func TestProvenance_Billable(t *testing.T) {
	tests := []struct {
		prov Provenance
		want bool
	}{
		{ProvenancePrimary, true},
		{ProvenanceLocal, false},
		{ProvenanceMock, false},
		{ProvenanceRules, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.prov), func(t *testing.T) {
			if got := tt.prov.Billable(); got != tt.want {
				t.Errorf("Billable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCostLedger_Totals(t *testing.T) {
	ledger := CostLedger{
		Embedding: StageCost{Tokens: 10, Cost: 0.001, Provenance: ProvenancePrimary},
		Parsing:   StageCost{Tokens: 200, Cost: 0.0002, Provenance: ProvenancePrimary},
		Reply:     StageCost{Tokens: 50, Cost: 0.002, Provenance: ProvenanceMock},
	}

	if got := ledger.TotalTokens(); got != 260 {
		t.Errorf("TotalTokens() = %d, want 260", got)
	}
	if got := ledger.TotalCost(); math.Abs(got-0.0032) > 1e-12 {
		t.Errorf("TotalCost() = %f, want 0.0032", got)
	}
	if ledger.AllMock() {
		t.Error("AllMock() = true with a primary stage present")
	}
}

func TestCostLedger_AllMock(t *testing.T) {
	ledger := CostLedger{
		Embedding: StageCost{Cost: 0.001, Provenance: ProvenanceMock},
		Parsing:   StageCost{Provenance: ProvenanceRules},
		Reply:     StageCost{Cost: 0.002, Provenance: ProvenanceLocal},
	}

	if !ledger.AllMock() {
		t.Error("AllMock() = false with no primary stage")
	}
}
