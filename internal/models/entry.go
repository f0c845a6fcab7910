// ABOUTME: Core diary entry data structures: ParsedEntry, MetaData, DiaryEntry
// ABOUTME: ParsedEntry guarantees non-empty list fields after Normalize
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Defaults applied when a parser strategy produces an empty field.
const (
	DefaultTheme   = "general"
	DefaultVibe    = "neutral"
	DefaultTrait   = "reflective"
	DefaultBucket  = "Thought"
	DefaultIntent  = "Express thoughts and feelings"
	DefaultSubtext = "Processing experiences"
)

// StringList unmarshals either a JSON array of strings or a bare string.
// LLM output frequently returns a scalar where the schema asks for a list;
// a bare scalar becomes a singleton list.
type StringList []string

// UnmarshalJSON implements tolerant decoding for StringList
func (sl *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sl = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*sl = []string{s}
		return nil
	}

	// Mixed arrays (strings and other scalars) show up in sloppy LLM output;
	// keep the string members and stringify the rest.
	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("string list: cannot decode %s", string(data))
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, fmt.Sprintf("%v", v))
	}
	*sl = out
	return nil
}

// ParsedEntry holds the structured signals extracted from one diary entry
type ParsedEntry struct {
	Theme        StringList `json:"theme"`
	Vibe         StringList `json:"vibe"`
	Intent       string     `json:"intent"`
	Subtext      string     `json:"subtext"`
	PersonaTrait StringList `json:"persona_trait"`
	Bucket       StringList `json:"bucket"`
}

// Normalize enforces the ParsedEntry invariant: every list field has at least
// one element and every string field is non-empty. Blank members are dropped
// before the emptiness check.
func (p *ParsedEntry) Normalize() {
	p.Theme = normalizeList(p.Theme, DefaultTheme)
	p.Vibe = normalizeList(p.Vibe, DefaultVibe)
	p.PersonaTrait = normalizeList(p.PersonaTrait, DefaultTrait)
	p.Bucket = normalizeList(p.Bucket, DefaultBucket)

	if strings.TrimSpace(p.Intent) == "" {
		p.Intent = DefaultIntent
	}
	if strings.TrimSpace(p.Subtext) == "" {
		p.Subtext = DefaultSubtext
	}
}

func normalizeList(in StringList, def string) StringList {
	out := make(StringList, 0, len(in))
	for _, v := range in {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return StringList{def}
	}
	return out
}

// MetaData holds lexical features derived solely from the raw text
type MetaData struct {
	WordCount          int      `json:"word_count"`
	CharCount          int      `json:"char_count"`
	TopWords           []string `json:"top_words"`
	HasExclamation     bool     `json:"has_exclamation"`
	HasQuestion        bool     `json:"has_question"`
	HasEmoji           bool     `json:"has_emoji"`
	PunctuationDensity float64  `json:"punctuation_density"`
}

// DiaryEntry is the durable record of one processed entry. Created once at
// persistence time, never mutated afterward.
type DiaryEntry struct {
	ID          string      `json:"id"`
	RawText     string      `json:"raw_text"`
	Embedding   []float64   `json:"embedding"`
	MetaData    MetaData    `json:"meta_data"`
	Parsed      ParsedEntry `json:"parsed"`
	Timestamp   time.Time   `json:"timestamp"`
	CarryIn     bool        `json:"carry_in"`
	EmotionFlip bool        `json:"emotion_flip"`
}

// NewEntryID generates a sortable timestamp-prefixed entry identifier
func NewEntryID() string {
	return fmt.Sprintf("entry_%s_%s", time.Now().UTC().Format("20060102_150405"), uuid.New().String()[:8])
}
