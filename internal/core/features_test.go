// ABOUTME: Tests for lexical metadata extraction
// ABOUTME: Covers counts, top words, punctuation density, and emoji detection

package core

import (
	"testing"
)

func TestExtractMetaData_Counts(t *testing.T) {
	meta := ExtractMetaData("I went for a long walk today.")

	if meta.WordCount != 7 {
		t.Errorf("WordCount = %d, want 7", meta.WordCount)
	}
	if meta.CharCount != 29 {
		t.Errorf("CharCount = %d, want 29", meta.CharCount)
	}
}

func TestExtractMetaData_Flags(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		wantExclamation bool
		wantQuestion    bool
		wantEmoji       bool
	}{
		{"plain", "just a normal day", false, false, false},
		{"exclamation", "what a day!", true, false, false},
		{"question", "why does this keep happening?", false, true, false},
		{"emoji", "shipped it 🚀", false, false, true},
		{"heart emoji", "so thankful ❤️", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := ExtractMetaData(tt.text)
			if meta.HasExclamation != tt.wantExclamation {
				t.Errorf("HasExclamation = %t, want %t", meta.HasExclamation, tt.wantExclamation)
			}
			if meta.HasQuestion != tt.wantQuestion {
				t.Errorf("HasQuestion = %t, want %t", meta.HasQuestion, tt.wantQuestion)
			}
			if meta.HasEmoji != tt.wantEmoji {
				t.Errorf("HasEmoji = %t, want %t", meta.HasEmoji, tt.wantEmoji)
			}
		})
	}
}

func TestExtractMetaData_TopWordsSkipStopwords(t *testing.T) {
	meta := ExtractMetaData("the meeting and the deadline and the meeting again")

	for _, w := range meta.TopWords {
		if _, stop := stopWords[w]; stop {
			t.Errorf("Top words contain stopword %q", w)
		}
	}
	if len(meta.TopWords) == 0 {
		t.Fatal("Expected some top words")
	}
	if meta.TopWords[0] != "meet" {
		t.Errorf("TopWords[0] = %q, want %q (stemmed, most frequent first)", meta.TopWords[0], "meet")
	}
}

func TestExtractMetaData_TopWordsStemming(t *testing.T) {
	// running and runs stem to the same bucket
	meta := ExtractMetaData("running daily because running and runs keep me sane")

	if len(meta.TopWords) == 0 || meta.TopWords[0] != "run" {
		t.Errorf("TopWords = %v, want %q first", meta.TopWords, "run")
	}
}

func TestExtractMetaData_TopWordsLimit(t *testing.T) {
	meta := ExtractMetaData("alpha bravo charlie delta echo foxtrot golf hotel india")
	if len(meta.TopWords) > topWordLimit {
		t.Errorf("len(TopWords) = %d, want at most %d", len(meta.TopWords), topWordLimit)
	}
}

func TestExtractMetaData_EmptyText(t *testing.T) {
	meta := ExtractMetaData("")

	if meta.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", meta.WordCount)
	}
	if meta.TopWords == nil {
		t.Error("TopWords should be an empty slice, not nil")
	}
	if meta.PunctuationDensity != 0 {
		t.Errorf("PunctuationDensity = %v, want 0", meta.PunctuationDensity)
	}
}

func TestPunctuationDensity(t *testing.T) {
	// 2 punctuation marks in 10 characters
	got := punctuationDensity("ab,cd.efgh")
	if got != 0.2 {
		t.Errorf("punctuationDensity = %v, want 0.2", got)
	}
}
