// ABOUTME: Empathic reply generation with hosted, local, and template fallbacks
// ABOUTME: Every candidate is post-processed to one sentence of at most 120 chars
package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/harper/diary-standalone/internal/models"
)

const replySystemPrompt = `You are an empathetic AI companion.
Reply with ONE sentence of gentle support that ends with an encouraging action or positive reassurance.
It MUST be 120 characters or fewer.`

const replyExamples = `User: I'm exhausted and overwhelmed.
AI: Rest is not failure—take a breath, you've got this.

User: I'm anxious about tomorrow's deadline.
AI: You've handled challenges before—focus now, victory ahead.

`

// replyResult carries one strategy's reply text plus its ledger line
type replyResult struct {
	text string
	cost models.StageCost
}

// generateReply tries hosted then local completion and falls back to the
// template bank. Model output goes through postProcessReply; templates are
// already within budget.
func generateReply(ctx context.Context, primary, local Completer, parsed models.ParsedEntry, profile *models.UserProfile, carryIn, emotionFlip bool, maxLen int) replyResult {
	userPrompt := buildEmpathyPrompt(parsed, profile, carryIn, emotionFlip)

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
		raw, tokens, err := s.completer.Complete(ctx, replySystemPrompt, userPrompt, 0.7)
		if err != nil {
			continue
		}
		text := postProcessReply(raw, maxLen)
		if text == "" {
			continue
		}
		return replyResult{
			text: text,
			cost: models.StageCost{
				Tokens:     tokens,
				Cost:       float64(tokens) * s.costPerTok,
				Provenance: s.provenance,
			},
		}
	}

	return replyResult{
		text: templateReply(parsed, profile, carryIn, emotionFlip),
		cost: models.StageCost{Cost: mockReplyCost, Provenance: models.ProvenanceMock},
	}
}

// buildEmpathyPrompt frames the entry's signals plus profile history as a
// few-shot prompt for the completion models
func buildEmpathyPrompt(parsed models.ParsedEntry, profile *models.UserProfile, carryIn, emotionFlip bool) string {
	var b strings.Builder
	b.WriteString(replyExamples)
	fmt.Fprintf(&b, "User shared: themes=[%s], vibes=[%s], intent=%q.",
		strings.Join(parsed.Theme, ", "), strings.Join(parsed.Vibe, ", "), parsed.Intent)
	if profile == nil || profile.EntryCount == 0 {
		b.WriteString(" This is their first diary entry.")
	} else {
		fmt.Fprintf(&b, " Dominant vibe so far %q (%d entries).", profile.DominantVibe, profile.EntryCount)
		if emotionFlip {
			b.WriteString(" Emotion flip detected.")
		}
		if carryIn {
			b.WriteString(" Continues recent pattern.")
		}
	}
	b.WriteString("\nReply ≤120 characters (one sentence, encouragement required):")
	return b.String()
}

var sentenceEndPattern = regexp.MustCompile(`[.!?](\s|$)`)

// postProcessReply collapses whitespace, keeps text up to the first sentence
// terminator, and hard-caps the length with an ellipsis
func postProcessReply(raw string, maxLen int) string {
	reply := strings.Join(strings.Fields(raw), " ")
	if loc := sentenceEndPattern.FindStringIndex(reply); loc != nil {
		reply = reply[:loc[0]+1]
	}
	if runes := []rune(reply); len(runes) > maxLen {
		reply = strings.TrimRight(string(runes[:maxLen-3]), " ") + "..."
	}
	return reply
}

// templateReply picks a canned response by situation priority: first entry,
// then emotion flip, then carry-in, then the standard bank
func templateReply(parsed models.ParsedEntry, profile *models.UserProfile, carryIn, emotionFlip bool) string {
	vibe := models.DefaultVibe
	if len(parsed.Vibe) > 0 {
		vibe = parsed.Vibe[0]
	}
	theme := models.DefaultTheme
	if len(parsed.Theme) > 0 {
		theme = parsed.Theme[0]
	}

	switch {
	case profile == nil || profile.EntryCount == 0:
		return firstEntryReply(vibe)
	case emotionFlip:
		return flipReply(vibe)
	case carryIn:
		return carryReply(vibe, theme)
	default:
		return standardReply(vibe)
	}
}

var firstEntryReplies = map[string]string{
	"anxious":    "Sounds like you're feeling tense—that's okay.",
	"excited":    "Love the energy! Keep that momentum going.",
	"driven":     "Your motivation is inspiring—stay focused.",
	"curious":    "Great questions lead to great discoveries.",
	"exhausted":  "Rest is not failure—you're doing enough.",
	"confident":  "That confidence will take you far.",
	"frustrated": "Tough moments teach us the most.",
	"grateful":   "Gratitude is a beautiful mindset.",
	"sad":        "It's okay to feel down—you're not alone.",
	"happy":      "Your joy is contagious—embrace it!",
}

func firstEntryReply(vibe string) string {
	if r, ok := firstEntryReplies[vibe]; ok {
		return r
	}
	return "Thanks for sharing—I'm here to listen."
}

var flipReplies = map[string]string{
	"anxious":    "🌊 Feeling different today—that's normal.",
	"sad":        "💙 It's okay to have down moments.",
	"frustrated": "🔄 Change in mood—let's work through it.",
	"exhausted":  "💤 Your energy shifted—rest is needed.",
	"excited":    "✨ Nice to see your spirits lift!",
	"confident":  "💪 Great to see you feeling stronger!",
	"happy":      "😊 Love seeing this positive shift!",
	"grateful":   "🙏 Beautiful change in perspective.",
}

func flipReply(vibe string) string {
	if r, ok := flipReplies[vibe]; ok {
		return r
	}
	return "🧩 Mood shifts happen—you're adapting."
}

var carryThemeReplies = map[string]string{
	"work-life balance": "🧩 Still working on that balance, I see.",
	"productivity":      "⚡ Productivity patterns continuing.",
	"startup culture":   "🚀 Startup life keeps you engaged.",
	"intern management": "👥 Leadership thoughts persist.",
	"personal growth":   "🌱 Growth mindset showing again.",
}

var carryVibeReplies = map[string]string{
	"driven":    "🧩 That drive keeps showing up 💪",
	"anxious":   "🧩 Those worries are back—breathe 💨",
	"curious":   "🧩 Your curiosity continues to spark ✨",
	"exhausted": "🧩 Still feeling drained—self-care time 💤",
}

func carryReply(vibe, theme string) string {
	if r, ok := carryThemeReplies[theme]; ok {
		return r
	}
	if r, ok := carryVibeReplies[vibe]; ok {
		return r
	}
	return "🧩 Familiar patterns—you're processing."
}

var standardReplies = map[string]string{
	"anxious":    "Take a breath—you've got this.",
	"excited":    "That enthusiasm is infectious!",
	"driven":     "Your determination shows.",
	"curious":    "Questions lead to growth.",
	"exhausted":  "Rest when you need it.",
	"confident":  "That confidence suits you.",
	"frustrated": "Challenges make us stronger.",
	"grateful":   "Gratitude transforms everything.",
	"sad":        "Tough days don't last forever.",
	"happy":      "Your joy brightens the day.",
}

func standardReply(vibe string) string {
	if r, ok := standardReplies[vibe]; ok {
		return r
	}
	return "Thanks for sharing your thoughts."
}
