// ABOUTME: Lexical feature extraction: counts, top words, punctuation and emoji flags
// ABOUTME: Pure function of the raw text, no external calls
package core

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/harper/diary-standalone/internal/models"
	"github.com/kljensen/snowball"
)

const topWordLimit = 5

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_']+`)

// stopWords is the usual English stopword list; stopped words never reach
// the top-words ranking.
var stopWords = wordSet(
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can't",
	"cannot", "could", "couldn't", "did", "didn't", "do", "does", "doesn't",
	"doing", "don't", "down", "during", "each", "few", "for", "from",
	"further", "had", "hadn't", "has", "hasn't", "have", "haven't", "having",
	"he", "he'd", "he'll", "he's", "her", "here", "here's", "hers", "herself",
	"him", "himself", "his", "how", "how's", "i", "i'd", "i'll", "i'm",
	"i've", "if", "in", "into", "is", "isn't", "it", "it's", "its", "itself",
	"let's", "me", "more", "most", "mustn't", "my", "myself", "no", "nor",
	"not", "of", "off", "on", "once", "only", "or", "other", "ought", "our",
	"ours", "ourselves", "out", "over", "own", "same", "shan't", "she",
	"she'd", "she'll", "she's", "should", "shouldn't", "so", "some", "such",
	"than", "that", "that's", "the", "their", "theirs", "them", "themselves",
	"then", "there", "there's", "these", "they", "they'd", "they'll",
	"they're", "they've", "this", "those", "through", "to", "too", "under",
	"until", "up", "very", "was", "wasn't", "we", "we'd", "we'll", "we're",
	"we've", "were", "weren't", "what", "what's", "when", "when's", "where",
	"where's", "which", "while", "who", "who's", "whom", "why", "why's",
	"with", "won't", "would", "wouldn't", "you", "you'd", "you'll", "you're",
	"you've", "your", "yours", "yourself", "yourselves",
)

// emojiRanges covers the common emoji blocks used for the has_emoji flag
var emojiRanges = [][2]rune{
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F680, 0x1F6FF}, // transport
	{0x1F1E0, 0x1F1FF}, // regional indicators
	{0x2600, 0x26FF},   // misc symbols
	{0x2700, 0x27BF},   // dingbats
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1F018, 0x1F270}, // misc
}

// ExtractMetaData derives lexical metadata from the raw text
func ExtractMetaData(rawText string) models.MetaData {
	return models.MetaData{
		WordCount:          countWords(rawText),
		CharCount:          utf8.RuneCountInString(rawText),
		TopWords:           extractTopWords(rawText, topWordLimit),
		HasExclamation:     strings.Contains(rawText, "!"),
		HasQuestion:        strings.Contains(rawText, "?"),
		HasEmoji:           hasEmoji(rawText),
		PunctuationDensity: punctuationDensity(rawText),
	}
}

// countWords counts tokens that contain at least one word character
func countWords(text string) int {
	return len(wordPattern.FindAllString(text, -1))
}

// extractTopWords ranks stemmed non-stopwords by frequency. Ties resolve by
// first-occurrence order in the text.
func extractTopWords(text string, limit int) []string {
	tokens := wordPattern.FindAllString(strings.ToLower(text), -1)

	freq := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		stem := stemWord(tok)
		if _, seen := freq[stem]; !seen {
			order = append(order, stem)
		}
		freq[stem]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	if order == nil {
		order = []string{}
	}
	return order
}

// stemWord applies the Porter stemmer, keeping the original token when the
// stemmer cannot handle it (non-English scripts, apostrophes)
func stemWord(tok string) string {
	stem, err := snowball.Stem(tok, "english", false)
	if err != nil || stem == "" {
		return tok
	}
	return stem
}

func hasEmoji(text string) bool {
	for _, r := range text {
		for _, rng := range emojiRanges {
			if r >= rng[0] && r <= rng[1] {
				return true
			}
		}
	}
	return false
}

// punctuationDensity counts . , ! ? ; : per character of text
func punctuationDensity(text string) float64 {
	total := utf8.RuneCountInString(text)
	if total == 0 {
		return 0
	}

	punct := 0
	for _, r := range text {
		switch r {
		case '.', ',', '!', '?', ';', ':':
			punct++
		}
	}
	return float64(punct) / float64(total)
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
