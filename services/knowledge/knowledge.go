// Package knowledge backs the portal's FAQ chatbot with a static, hand-curated
// knowledge table scored by keyword and answer-text overlap. It is a small
// heuristic ranking, not a search engine; the table has tens of entries and
// the weights below are load-bearing for answer quality.
package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one canned FAQ answer with the keywords that should surface it.
// The table is loaded once at process start and never mutated, so it is safe
// for concurrent readers.
type Entry struct {
	Keywords      []string `json:"keywords"`
	Category      string   `json:"category"`
	Answer        string   `json:"answer"`
	RelatedTopics []string `json:"related_topics,omitempty"`
}

// Scoring weights and cutoffs. A keyword hit outranks any number of
// answer-text word hits of the same count.
const (
	keywordMatchScore = 2
	answerWordScore   = 1
	maxResults        = 3
	minWordLength     = 3
)

type scoredEntry struct {
	entry Entry
	score int
}

// FindRelevant scores every entry against the query and returns up to three
// entries with positive score, best first. An empty or whitespace query
// returns nil.
func FindRelevant(query string, entries []Entry) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(entries) == 0 {
		return nil
	}

	words := strings.Fields(q)

	var scored []scoredEntry
	for _, entry := range entries {
		score := 0

		// Bidirectional substring test: short queries match long keywords
		// and long queries match short keywords.
		for _, keyword := range entry.Keywords {
			k := strings.ToLower(keyword)
			if strings.Contains(q, k) || strings.Contains(k, q) {
				score += keywordMatchScore
			}
		}

		answer := strings.ToLower(entry.Answer)
		for _, word := range words {
			if len(word) >= minWordLength && strings.Contains(answer, word) {
				score += answerWordScore
			}
		}

		if score > 0 {
			scored = append(scored, scoredEntry{entry: entry, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) == 0 {
		return nil
	}
	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}

	results := make([]Entry, len(scored))
	for i, s := range scored {
		results[i] = s.entry
	}
	return results
}

// GenerateAnswer builds the chatbot reply from the scored entries. With no
// matches it returns a fixed fallback listing the topic categories, so the
// bot never surfaces an error to the user.
func GenerateAnswer(query string, entries []Entry) string {
	if len(entries) == 0 {
		return fallbackAnswer()
	}

	top := entries[0]
	answer := top.Answer
	if len(top.RelatedTopics) > 0 {
		topics := top.RelatedTopics
		if len(topics) > 3 {
			topics = topics[:3]
		}
		answer += fmt.Sprintf("\n\nRelated topics: %s", strings.Join(topics, ", "))
	}
	return answer
}

func fallbackAnswer() string {
	categories := Categories(Table)
	return fmt.Sprintf(
		"I'm sorry, I couldn't find an answer to that. I can help with questions about: %s. Try rephrasing your question or contact the registry for assistance.",
		strings.Join(categories, ", "),
	)
}

// Categories returns the distinct entry categories in table order.
func Categories(entries []Entry) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, e := range entries {
		if e.Category != "" && !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	return categories
}
