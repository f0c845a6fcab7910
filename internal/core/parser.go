// ABOUTME: Entry parser: ordered strategy chain ending in a rule-based extractor
// ABOUTME: Hosted model, then local model, then deterministic rules that cannot fail
package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/harper/diary-standalone/internal/models"
)

// Completer produces raw completion text for a system/user prompt pair,
// returning the text and the provider-reported token count
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, int, error)
}

const parseSystemPrompt = `You are a JSON-only extraction engine.

Return one single line of STRICT JSON (double-quoted keys, no markdown, no
comments). If something is unclear, choose the closest reasonable value.
Never leave any array empty.

Fields:
- theme: external topics of the entry (array of short labels)
- vibe: emotional tones (array of short labels)
- intent: stated surface goal, one sentence (string)
- subtext: hidden worry or underlying fear, one sentence (string)
- persona_trait: behaviour styles inferred from phrasing (array)
- bucket: coarse filing category such as "Thought" or "Goal" (array)

Schema (use exactly this shape):
{"theme":["topic"],"vibe":["tone"],"intent":"goal sentence","subtext":"hidden worry","persona_trait":["trait"],"bucket":["Thought"]}`

// parseResult carries one strategy's output plus its ledger line
type parseResult struct {
	parsed models.ParsedEntry
	cost   models.StageCost
}

// parseEntry runs the extraction strategy chain in fixed priority: primary
// hosted model, local model, rule-based extractor. First success wins; the
// terminal rules cannot fail. Every output is normalized before return.
func parseEntry(ctx context.Context, primary, local Completer, rawText string) parseResult {
	userPrompt := fmt.Sprintf("Diary entry:\n%q\nJSON:", rawText)

	type strategy struct {
		completer  Completer
		provenance models.Provenance
		costPerTok float64
	}
	strategies := []strategy{
		{primary, models.ProvenancePrimary, chatCostPerToken},
		{local, models.ProvenanceLocal, 0},
	}

	for _, s := range strategies {
		if s.completer == nil {
			continue
		}
		raw, tokens, err := s.completer.Complete(ctx, parseSystemPrompt, userPrompt, 0)
		if err != nil {
			continue
		}
		parsed, err := decodeParsedEntry(raw)
		if err != nil {
			continue
		}
		parsed.Normalize()
		return parseResult{
			parsed: parsed,
			cost: models.StageCost{
				Tokens:     tokens,
				Cost:       float64(tokens) * s.costPerTok,
				Provenance: s.provenance,
			},
		}
	}

	parsed := ParseRuleBased(rawText)
	return parseResult{
		parsed: parsed,
		cost:   models.StageCost{Provenance: models.ProvenanceRules},
	}
}

// themeRules maps a theme label to its trigger substrings, in fixed priority
// order so output ordering is stable
var themeRules = []struct {
	label    string
	triggers []string
}{
	{"work-life balance", []string{"work", "life", "balance", "burnout", "rest"}},
	{"productivity", []string{"productive", "efficiency", "focus", "deadline"}},
	{"startup culture", []string{"startup", "company", "culture", "team"}},
	{"intern management", []string{"intern", "mentoring", "guidance"}},
	{"personal growth", []string{"learn", "growth", "development", "skill"}},
	{"relationships", []string{"friend", "family", "relationship"}},
	{"health", []string{"health", "exercise", "sleep", "tired", "sick"}},
	{"technology", []string{"code", "programming", "software", "tech"}},
}

// vibeRules maps a vibe label to its emotion keywords
var vibeRules = []struct {
	label    string
	triggers []string
}{
	{"anxious", []string{"anxious", "worried", "nervous", "stressed", "overwhelmed", "panic", "fear"}},
	{"exhausted", []string{"tired", "exhausted", "drained", "worn out", "fatigue", "weary"}},
	{"excited", []string{"excited", "thrilled", "enthusiastic", "energetic", "pumped", "motivated"}},
	{"sad", []string{"sad", "down", "depressed", "melancholy", "blue", "disappointed"}},
	{"happy", []string{"happy", "joy", "cheerful", "delighted", "pleased", "content", "great"}},
	{"grateful", []string{"grateful", "thankful", "appreciate", "blessed"}},
	{"confident", []string{"confident", "proud", "accomplished", "successful"}},
	{"frustrated", []string{"frustrated", "annoyed", "irritated", "angry"}},
}

// emojiVibeRules overrides for emoji-heavy entries with little or no prose
var emojiVibeRules = []struct {
	label  string
	emojis []string
}{
	{"happy", []string{"😀", "😊", "🎉", "✨"}},
	{"sad", []string{"😔", "😢", "😞"}},
	{"anxious", []string{"😰", "😟", "😨"}},
	{"excited", []string{"🔥", "💪", "🚀"}},
	{"grateful", []string{"🙏", "💝", "❤️"}},
}

// bucketRules file an entry into a coarse category; first match wins
var bucketRules = []struct {
	label    string
	triggers []string
}{
	{"Goal", []string{"plan to", "goal", "aim to", "i will"}},
	{"Gratitude", []string{"grateful", "thankful", "appreciate"}},
}

var (
	needWantPattern  = regexp.MustCompile(`(?:need|want|plan|hope)\s+to\s+([^,.!?]+)`)
	excitedToPattern = regexp.MustCompile(`excited\s+(?:to|about)\s+([^,.!?]+)`)
	passionPattern   = regexp.MustCompile(`passionate\s+about\s+([^,.!?]+)`)
	lovePattern      = regexp.MustCompile(`love\s+([^,.!?]+)`)
	gratefulPattern  = regexp.MustCompile(`grateful\s+for\s+([^,.!?]+)`)
)

// ParseRuleBased is the terminal extraction strategy. A total function: it
// succeeds for any input and never returns an empty list field.
func ParseRuleBased(text string) models.ParsedEntry {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		parsed := models.ParsedEntry{
			Intent:  "Express thoughts",
			Subtext: models.DefaultSubtext,
		}
		parsed.Normalize()
		return parsed
	}

	lower := strings.ToLower(trimmed)

	parsed := models.ParsedEntry{
		Theme:        extractThemes(lower),
		Vibe:         extractVibes(lower, trimmed),
		Intent:       extractIntent(lower, trimmed),
		Subtext:      extractSubtext(lower, trimmed),
		PersonaTrait: extractTraits(lower, trimmed),
		Bucket:       extractBucket(lower),
	}
	parsed.Normalize()
	return parsed
}

func extractThemes(lower string) models.StringList {
	var themes models.StringList
	for _, rule := range themeRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				themes = append(themes, rule.label)
				break
			}
		}
	}
	return themes
}

func extractVibes(lower, text string) models.StringList {
	var vibes models.StringList
	seen := map[string]struct{}{}

	add := func(label string) {
		if _, ok := seen[label]; !ok {
			seen[label] = struct{}{}
			vibes = append(vibes, label)
		}
	}

	for _, rule := range vibeRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				add(rule.label)
				break
			}
		}
	}

	for _, rule := range emojiVibeRules {
		for _, emoji := range rule.emojis {
			if strings.Contains(text, emoji) {
				add(rule.label)
				break
			}
		}
	}

	return vibes
}

// extractIntent runs the intent pattern battery in fixed priority; the first
// matching rule produces a templated sentence
func extractIntent(lower, trimmed string) string {
	if len([]rune(trimmed)) <= 3 {
		return "Brief expression"
	}

	// Conflict: wanting rest while fearing what gets missed
	if strings.Contains(lower, "need") && strings.Contains(lower, "rest") &&
		strings.Contains(lower, "but") && containsAny(lower, "scared", "afraid", "worried") &&
		strings.Contains(lower, "miss") {
		return "Find rest without fear of missing out"
	}

	if m := excitedToPattern.FindStringSubmatch(lower); m != nil {
		return "Pursue passion for " + strings.TrimSpace(m[1])
	}
	if m := passionPattern.FindStringSubmatch(lower); m != nil {
		return "Pursue passion for " + strings.TrimSpace(m[1])
	}
	if m := lovePattern.FindStringSubmatch(lower); m != nil {
		return "Cultivate joy through " + strings.TrimSpace(m[1])
	}
	if m := gratefulPattern.FindStringSubmatch(lower); m != nil {
		return "Appreciate and nurture " + strings.TrimSpace(m[1])
	}
	if m := needWantPattern.FindStringSubmatch(lower); m != nil {
		return "Work to " + strings.TrimSpace(m[1])
	}

	return models.DefaultIntent
}

// extractSubtext runs the subtext pattern battery in fixed priority
func extractSubtext(lower, trimmed string) string {
	if strings.Contains(lower, "but") && containsAny(lower, "scared", "afraid") &&
		containsAny(lower, "miss", "behind", "committed") {
		return "Fears being seen as less committed or dedicated"
	}
	if containsAny(lower, "excited", "curious") && containsAny(lower, "learn", "grow", "skill") {
		return "Driven by genuine curiosity and desire for growth"
	}
	if containsAny(lower, "love", "enjoy") && containsAny(lower, "help", "team", "support", "succeed") {
		return "Motivated by desire to serve and contribute to others"
	}
	if strings.Contains(lower, "not good enough") || strings.Contains(lower, "compared to") {
		return "Struggles with imposter syndrome and self-doubt"
	}
	if strings.Contains(lower, "but") {
		return "Has conflicting feelings"
	}
	if len([]rune(trimmed)) <= 10 {
		return "Brief moment of reflection"
	}
	return models.DefaultSubtext
}

func extractTraits(lower, trimmed string) models.StringList {
	if strings.Contains(lower, "plan") {
		return models.StringList{"organiser"}
	}
	if len([]rune(trimmed)) <= 5 {
		return models.StringList{"expressive"}
	}
	return models.StringList{models.DefaultTrait}
}

func extractBucket(lower string) models.StringList {
	for _, rule := range bucketRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return models.StringList{rule.label}
			}
		}
	}
	return models.StringList{models.DefaultBucket}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
