// ABOUTME: PipelineContext threaded through the 12 pipeline steps
// ABOUTME: Includes the CostLedger, per-step LogEntry, and final PipelineResult
package models

import "time"

// Provenance records which strategy produced an external-backed output.
// Used for cost attribution only, never for downstream decisions.
type Provenance string

const (
	ProvenancePrimary Provenance = "primary" // hosted provider (OpenAI)
	ProvenanceLocal   Provenance = "local"   // local provider (Ollama)
	ProvenanceMock    Provenance = "mock"    // deterministic mock
	ProvenanceRules   Provenance = "rules"   // rule-based extractor
)

// Billable reports whether the stage incurred real provider cost
func (p Provenance) Billable() bool {
	return p == ProvenancePrimary
}

// StageCost is one ledger line for an external-backed stage
type StageCost struct {
	Tokens     int        `json:"tokens"`
	Cost       float64    `json:"cost"`
	Provenance Provenance `json:"provenance"`
}

// CostLedger accumulates per-stage token and dollar accounting for one run
type CostLedger struct {
	Embedding StageCost `json:"embedding"`
	Parsing   StageCost `json:"parsing"`
	Reply     StageCost `json:"reply"`
}

// TotalTokens sums tokens across all stages
func (cl *CostLedger) TotalTokens() int {
	return cl.Embedding.Tokens + cl.Parsing.Tokens + cl.Reply.Tokens
}

// TotalCost sums dollar cost across all stages
func (cl *CostLedger) TotalCost() float64 {
	return cl.Embedding.Cost + cl.Parsing.Cost + cl.Reply.Cost
}

// AllMock reports whether no stage touched a real provider
func (cl *CostLedger) AllMock() bool {
	return !cl.Embedding.Provenance.Billable() &&
		!cl.Parsing.Provenance.Billable() &&
		!cl.Reply.Provenance.Billable()
}

// PipelineContext is the transient accumulator threaded through one pipeline
// invocation. Discarded after publish, never persisted.
type PipelineContext struct {
	UserID        string
	RawText       string
	Embedding     []float64
	RecentEntries []DiaryEntry
	Profile       *UserProfile
	MetaData      MetaData
	Parsed        ParsedEntry
	CarryIn       bool
	EmotionFlip   bool
	EntryID       string
	ResponseText  string
	StartTime     time.Time
	Costs         CostLedger
}

// LogEntry is the per-step observability record, one per step in step order
type LogEntry struct {
	Tag    string `json:"tag"`
	Input  string `json:"input"`
	Output string `json:"output"`
	Note   string `json:"note"`
}

// PipelineResult is the public result object assembled by the publish step
type PipelineResult struct {
	EntryID        string        `json:"entryId"`
	ResponseText   string        `json:"response_text"`
	CarryIn        bool          `json:"carry_in"`
	UpdatedProfile *UserProfile  `json:"updated_profile"`
	ExecutionTime  time.Duration `json:"execution_time"`
	TotalCost      float64       `json:"total_cost"`
	TotalTokens    int           `json:"total_tokens"`
}
