package knowledge

import (
	"strings"
	"testing"
)

func testEntries() []Entry {
	return []Entry{
		{
			Keywords:      []string{"registration", "register courses"},
			Category:      "Registration",
			Answer:        "Course registration opens on your dashboard.",
			RelatedTopics: []string{"Deadlines", "Credit hours", "Calendar", "Fees"},
		},
		{
			Keywords: []string{"fees", "tuition"},
			Category: "Fees",
			Answer:   "School fees schedules are published per programme.",
		},
		{
			Keywords: []string{"transcript"},
			Category: "Records",
			Answer:   "Transcript requests take five working days to process.",
		},
	}
}

func TestFindRelevantEmptyQuery(t *testing.T) {
	if got := FindRelevant("", testEntries()); got != nil {
		t.Errorf("empty query: got %d entries, want none", len(got))
	}
	if got := FindRelevant("   ", testEntries()); got != nil {
		t.Errorf("whitespace query: got %d entries, want none", len(got))
	}
	if got := FindRelevant("fees", nil); got != nil {
		t.Errorf("empty table: got %d entries, want none", len(got))
	}
}

func TestFindRelevantKeywordMatch(t *testing.T) {
	got := FindRelevant("how do I pay my tuition", testEntries())
	if len(got) == 0 {
		t.Fatal("expected at least one match")
	}
	if got[0].Category != "Fees" {
		t.Errorf("top match category = %q, want Fees", got[0].Category)
	}
}

// A short query must match a longer keyword and vice versa.
func TestFindRelevantBidirectionalSubstring(t *testing.T) {
	entries := testEntries()

	// query contained in keyword
	if got := FindRelevant("register", entries); len(got) == 0 || got[0].Category != "Registration" {
		t.Errorf("query-in-keyword: got %v", got)
	}
	// keyword contained in query
	if got := FindRelevant("where can I see my transcript online", entries); len(got) == 0 || got[0].Category != "Records" {
		t.Errorf("keyword-in-query: got %v", got)
	}
}

// A keyword hit (weight 2) must outrank an answer-text-only hit (weight 1).
func TestFindRelevantKeywordOutranksAnswerText(t *testing.T) {
	entries := []Entry{
		{
			Keywords: []string{"zzz"},
			Category: "AnswerOnly",
			Answer:   "the deadline for everything is friday",
		},
		{
			Keywords: []string{"deadline"},
			Category: "KeywordMatch",
			Answer:   "nothing useful here",
		},
	}

	got := FindRelevant("deadline", entries)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Category != "KeywordMatch" {
		t.Errorf("top entry = %q, want KeywordMatch", got[0].Category)
	}
}

func TestFindRelevantTopThreeCutoff(t *testing.T) {
	entries := []Entry{
		{Keywords: []string{"exam"}, Category: "A", Answer: "a"},
		{Keywords: []string{"exam"}, Category: "B", Answer: "b"},
		{Keywords: []string{"exam"}, Category: "C", Answer: "c"},
		{Keywords: []string{"exam"}, Category: "D", Answer: "d"},
	}
	got := FindRelevant("exam", entries)
	if len(got) != 3 {
		t.Errorf("got %d entries, want top-3 cutoff", len(got))
	}
}

// Words of length < 3 must not contribute answer-text score.
func TestFindRelevantShortWordsIgnored(t *testing.T) {
	entries := []Entry{
		{Keywords: []string{"zzz"}, Category: "A", Answer: "it is an od to be"},
	}
	if got := FindRelevant("is to be od an", entries); got != nil {
		t.Errorf("short words scored: got %v", got)
	}
}

func TestFindRelevantDeterministic(t *testing.T) {
	first := FindRelevant("course registration deadline", testEntries())
	for i := 0; i < 10; i++ {
		again := FindRelevant("course registration deadline", testEntries())
		if len(again) != len(first) {
			t.Fatalf("run %d: got %d entries, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j].Category != first[j].Category {
				t.Fatalf("run %d: entry %d = %q, want %q", i, j, again[j].Category, first[j].Category)
			}
		}
	}
}

func TestGenerateAnswerFallback(t *testing.T) {
	got := GenerateAnswer("anything", nil)
	if got == "" {
		t.Fatal("fallback answer is empty")
	}
	if !strings.Contains(got, "couldn't find an answer") {
		t.Errorf("fallback answer missing apology: %q", got)
	}
	// fallback lists the real table's categories
	if !strings.Contains(got, "Admissions") {
		t.Errorf("fallback answer missing categories: %q", got)
	}
}

func TestGenerateAnswerRelatedTopics(t *testing.T) {
	entries := testEntries()
	got := GenerateAnswer("registration", entries[:1])
	if !strings.HasPrefix(got, entries[0].Answer) {
		t.Errorf("answer does not start with entry answer: %q", got)
	}
	if !strings.Contains(got, "Related topics: Deadlines, Credit hours, Calendar") {
		t.Errorf("related topics suffix wrong or missing: %q", got)
	}
	if strings.Contains(got, "Fees") {
		t.Errorf("related topics must cap at 3: %q", got)
	}
}

func TestGenerateAnswerNoRelatedTopics(t *testing.T) {
	entries := testEntries()
	got := GenerateAnswer("fees", entries[1:2])
	if got != entries[1].Answer {
		t.Errorf("answer = %q, want bare entry answer", got)
	}
}

// The shipped table must be internally consistent: every entry has keywords,
// a category and an answer, and every query built from a keyword finds its
// own entry.
func TestShippedTable(t *testing.T) {
	if len(Table) == 0 {
		t.Fatal("knowledge table is empty")
	}
	for i, e := range Table {
		if len(e.Keywords) == 0 || e.Category == "" || e.Answer == "" {
			t.Errorf("entry %d incomplete: %+v", i, e)
		}
		for _, k := range e.Keywords {
			if got := FindRelevant(k, Table); len(got) == 0 {
				t.Errorf("keyword %q finds nothing", k)
			}
		}
	}
}
