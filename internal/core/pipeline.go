// ABOUTME: The 12-step diary pipeline runner threading a PipelineContext
// ABOUTME: Each step appends one LogEntry; provider failures fall through, storage failures abort
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harper/diary-standalone/internal/config"
	"github.com/harper/diary-standalone/internal/models"
	"github.com/harper/diary-standalone/internal/storage"
)

// Pipeline wires the strategy providers and the store into the step sequence.
// Embedder, Primary, and Local may all be nil; the deterministic fallbacks
// make every run completable offline.
type Pipeline struct {
	cfg      *config.Config
	store    storage.Store
	embedder EmbedProvider
	primary  Completer
	local    Completer
}

// NewPipeline builds a pipeline around the given store and providers
func NewPipeline(cfg *config.Config, store storage.Store, embedder EmbedProvider, primary, local Completer) *Pipeline {
	return &Pipeline{cfg: cfg, store: store, embedder: embedder, primary: primary, local: local}
}

// Run processes one transcript for a user through the full step sequence and
// returns the published result plus the per-step log. Validation and storage
// failures return an error with whatever log entries accumulated; provider
// failures never surface here, the strategy chains absorb them.
func (p *Pipeline) Run(ctx context.Context, transcript, userID string) (*models.PipelineResult, []models.LogEntry, error) {
	pc := &models.PipelineContext{UserID: userID, StartTime: time.Now()}
	logs := make([]models.LogEntry, 0, 13)

	// RAW_TEXT_IN
	rawText, err := NormalizeTranscript(transcript)
	if err != nil {
		return nil, logs, err
	}
	pc.RawText = rawText
	logs = append(logs, models.LogEntry{
		Tag:    "RAW_TEXT_IN",
		Input:  fmt.Sprintf("transcript=%q", truncate(transcript, 50)),
		Output: fmt.Sprintf("raw_text=%q (%d chars)", truncate(rawText, 50), len(rawText)),
		Note:   "Validated and cleaned transcript input",
	})

	// EMBEDDING
	emb := embedText(ctx, p.embedder, rawText, p.cfg.VectorDimension)
	pc.Embedding = emb.vector
	pc.Costs.Embedding = emb.cost
	logs = append(logs, models.LogEntry{
		Tag:    "EMBEDDING",
		Input:  fmt.Sprintf("raw_text=%q", truncate(rawText, 30)),
		Output: fmt.Sprintf("embedding[%d] (first 3: [%s...])", len(emb.vector), previewVector(emb.vector, 3)),
		Note:   fmt.Sprintf("[%s] Generated %dD embedding, cost: %s", strings.ToUpper(string(emb.cost.Provenance)), len(emb.vector), FormatStageCost(emb.cost)),
	})

	// FETCH_RECENT
	recent, err := p.store.GetRecentEntries(userID, p.cfg.RecentWindow)
	if err != nil {
		return nil, logs, fmt.Errorf("fetching recent entries: %w", err)
	}
	pc.RecentEntries = recent
	logs = append(logs, models.LogEntry{
		Tag:    "FETCH_RECENT",
		Input:  fmt.Sprintf("userId=%q, limit=%d", userID, p.cfg.RecentWindow),
		Output: fmt.Sprintf("recent[%d] entries", len(recent)),
		Note:   recentNote(recent),
	})

	// FETCH_PROFILE
	profile, err := p.store.GetProfile(userID)
	if err != nil {
		return nil, logs, fmt.Errorf("fetching profile: %w", err)
	}
	newProfile := profile == nil
	if newProfile {
		profile = models.NewEmptyProfile()
	}
	pc.Profile = profile
	logs = append(logs, models.LogEntry{
		Tag:    "FETCH_PROFILE",
		Input:  fmt.Sprintf("userId=%q", userID),
		Output: fmt.Sprintf("profile loaded (%d entries)", profile.EntryCount),
		Note:   profileNote(profile, newProfile),
	})

	// META_EXTRACT
	pc.MetaData = ExtractMetaData(rawText)
	logs = append(logs, models.LogEntry{
		Tag:    "META_EXTRACT",
		Input:  fmt.Sprintf("raw_text (%d chars)", len(rawText)),
		Output: fmt.Sprintf("meta_data: %d words, top_words=[%s...]", pc.MetaData.WordCount, strings.Join(head(pc.MetaData.TopWords, 3), ", ")),
		Note: fmt.Sprintf("Flags: exclamation=%t, question=%t, emoji=%t, punct_density=%.3f",
			pc.MetaData.HasExclamation, pc.MetaData.HasQuestion, pc.MetaData.HasEmoji, pc.MetaData.PunctuationDensity),
	})

	// PARSE_ENTRY
	parse := parseEntry(ctx, p.primary, p.local, rawText)
	pc.Parsed = parse.parsed
	pc.Costs.Parsing = parse.cost
	parsedJSON, _ := json.Marshal(parse.parsed)
	logs = append(logs, models.LogEntry{
		Tag:    "PARSE_ENTRY",
		Input:  fmt.Sprintf("raw_text=%q", truncate(rawText, 40)),
		Output: fmt.Sprintf("parsed=%s", parsedJSON),
		Note:   parseNote(parse.cost.Provenance),
	})

	// CARRY_IN
	carry := DetectCarryIn(pc.Parsed, pc.Embedding, pc.RecentEntries, p.cfg.CarryInThreshold)
	pc.CarryIn = carry.CarryIn
	logs = append(logs, models.LogEntry{
		Tag:    "CARRY_IN",
		Input:  fmt.Sprintf("themes=[%s], vibes=[%s], recent_count=%d", strings.Join(pc.Parsed.Theme, ", "), strings.Join(pc.Parsed.Vibe, ", "), len(pc.RecentEntries)),
		Output: fmt.Sprintf("carry_in=%t", carry.CarryIn),
		Note:   carry.Reason,
	})

	// CONTRAST_CHECK
	flip := DetectEmotionFlip(pc.Parsed.Vibe, pc.Profile)
	pc.EmotionFlip = flip.EmotionFlip
	logs = append(logs, models.LogEntry{
		Tag:    "CONTRAST_CHECK",
		Input:  fmt.Sprintf("current_vibes=[%s], dominant_vibe=%q", strings.Join(pc.Parsed.Vibe, ", "), pc.Profile.DominantVibe),
		Output: fmt.Sprintf("emotion_flip=%t", flip.EmotionFlip),
		Note:   flip.Reason,
	})

	// PROFILE_UPDATE
	prevProfile := pc.Profile
	updated := AggregateProfile(prevProfile, pc.Parsed)
	pc.Profile = updated
	logs = append(logs, models.LogEntry{
		Tag:    "PROFILE_UPDATE",
		Input:  fmt.Sprintf("themes=[%s], vibes=[%s], traits=[%s]", strings.Join(pc.Parsed.Theme, ", "), strings.Join(pc.Parsed.Vibe, ", "), strings.Join(pc.Parsed.PersonaTrait, ", ")),
		Output: fmt.Sprintf("updated profile (%d entries)", updated.EntryCount),
		Note:   profileChanges(prevProfile, updated),
	})

	// SAVE_ENTRY
	pc.EntryID = models.NewEntryID()
	entry := &models.DiaryEntry{
		ID:          pc.EntryID,
		RawText:     pc.RawText,
		Embedding:   pc.Embedding,
		MetaData:    pc.MetaData,
		Parsed:      pc.Parsed,
		Timestamp:   time.Now().UTC(),
		CarryIn:     pc.CarryIn,
		EmotionFlip: pc.EmotionFlip,
	}
	if err := p.store.SaveEntry(entry, userID); err != nil {
		return nil, logs, fmt.Errorf("saving entry: %w", err)
	}
	if err := p.store.SaveProfile(updated, userID); err != nil {
		return nil, logs, fmt.Errorf("saving profile: %w", err)
	}
	logs = append(logs, models.LogEntry{
		Tag:    "SAVE_ENTRY",
		Input:  fmt.Sprintf("entry_data (%d chars, %dD embedding)", len(pc.RawText), len(pc.Embedding)),
		Output: fmt.Sprintf("entryId=%q", pc.EntryID),
		Note:   fmt.Sprintf("Saved complete entry and updated profile for user %q", userID),
	})

	// GPT_REPLY. Flip and carry were decided against the pre-update profile;
	// the reply sees the same baseline so first entries read as first entries.
	reply := generateReply(ctx, p.primary, p.local, pc.Parsed, prevProfile, pc.CarryIn, pc.EmotionFlip, p.cfg.MaxReplyLength)
	pc.ResponseText = reply.text
	pc.Costs.Reply = reply.cost
	logs = append(logs, models.LogEntry{
		Tag: "GPT_REPLY",
		Input: fmt.Sprintf("vibes=[%s], carry_in=%t, emotion_flip=%t, entry_count=%d",
			strings.Join(pc.Parsed.Vibe, ", "), pc.CarryIn, pc.EmotionFlip, prevProfile.EntryCount),
		Output: fmt.Sprintf("response_text=%q (%d chars)", reply.text, len([]rune(reply.text))),
		Note:   fmt.Sprintf("[%s] Generated empathic response, cost: %s", strings.ToUpper(string(reply.cost.Provenance)), FormatStageCost(reply.cost)),
	})

	// PUBLISH
	elapsed := time.Since(pc.StartTime)
	result := &models.PipelineResult{
		EntryID:        pc.EntryID,
		ResponseText:   pc.ResponseText,
		CarryIn:        pc.CarryIn,
		UpdatedProfile: updated,
		ExecutionTime:  elapsed,
		TotalCost:      pc.Costs.TotalCost(),
		TotalTokens:    pc.Costs.TotalTokens(),
	}
	logs = append(logs, models.LogEntry{
		Tag:    "PUBLISH",
		Input:  fmt.Sprintf("entryId=%q, response_text=%q, carry_in=%t", pc.EntryID, pc.ResponseText, pc.CarryIn),
		Output: "final_result packaged",
		Note:   fmt.Sprintf("Pipeline complete: %dms, $%.4f total cost", elapsed.Milliseconds(), result.TotalCost),
	})

	// COST_LATENCY_LOG
	report := GradeRun(elapsed, pc.Costs, p.gradeBands())
	logs = append(logs, models.LogEntry{
		Tag:    "COST_LATENCY_LOG",
		Input:  fmt.Sprintf("execution_time=%dms, total_cost=%s", elapsed.Milliseconds(), report.TotalCostDisplay),
		Output: fmt.Sprintf("performance_grade=%s, cost_grade=%s", report.PerformanceGrade, report.CostGrade),
		Note: fmt.Sprintf("Wall-Clock: %.3fs | Costs: embedding=%s, parsing=%s, gpt=%s",
			elapsed.Seconds(), FormatStageCost(pc.Costs.Embedding), FormatStageCost(pc.Costs.Parsing), FormatStageCost(pc.Costs.Reply)),
	})

	return result, logs, nil
}

// gradeBands reads the thresholds from config, falling back to the stock
// defaults when unset
func (p *Pipeline) gradeBands() GradeBands {
	bands := GradeBands{
		LatencyGoodSecs:      p.cfg.LatencyGoodSecs,
		LatencyPoorSecs:      p.cfg.LatencyPoorSecs,
		CostExcellentDollars: p.cfg.CostExcellentDollars,
		CostFairDollars:      p.cfg.CostFairDollars,
	}
	if bands.LatencyGoodSecs <= 0 || bands.LatencyPoorSecs <= 0 ||
		bands.CostExcellentDollars <= 0 || bands.CostFairDollars <= 0 {
		return DefaultGradeBands
	}
	return bands
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func head(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func previewVector(vec []float64, n int) string {
	parts := make([]string, 0, n)
	for i := 0; i < n && i < len(vec); i++ {
		parts = append(parts, fmt.Sprintf("%.4f", vec[i]))
	}
	return strings.Join(parts, ", ")
}

func recentNote(recent []models.DiaryEntry) string {
	if len(recent) == 0 {
		return "No recent entries found (first-time user)"
	}
	previews := make([]string, 0, len(recent))
	for _, e := range recent {
		previews = append(previews, fmt.Sprintf("  %s: %q", e.ID, truncate(e.RawText, 40)))
	}
	return fmt.Sprintf("Found %d recent entries:\n%s", len(recent), strings.Join(previews, "\n"))
}

func profileNote(profile *models.UserProfile, isNew bool) string {
	if isNew {
		return "Initialized new empty profile for first-time user"
	}
	return fmt.Sprintf("Loaded existing profile: dominant_vibe=%q, top_themes=[%s...]",
		profile.DominantVibe, strings.Join(head(profile.TopThemes, 2), ", "))
}

func parseNote(prov models.Provenance) string {
	switch prov {
	case models.ProvenancePrimary:
		return "[LLM] hosted model"
	case models.ProvenanceLocal:
		return "[LLM] local model via Ollama"
	default:
		return "[FALLBACK] rule-based parser"
	}
}

func profileChanges(before, after *models.UserProfile) string {
	var changes []string
	if before.DominantVibe != after.DominantVibe {
		changes = append(changes, fmt.Sprintf("dominant_vibe: %q → %q", before.DominantVibe, after.DominantVibe))
	}
	changes = append(changes, fmt.Sprintf("entry_count: %d → %d", before.EntryCount, after.EntryCount))
	return strings.Join(changes, ", ")
}
