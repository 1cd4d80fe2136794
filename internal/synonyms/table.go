// Package synonyms parses synonym group declarations into a word to leader
// lookup table.
//
// Each non-empty line of the source declares one group; its first word is the
// leader and every word on the line maps to it. The first assignment of a word
// wins: later lines cannot move a word into another group. A Table is
// immutable once Parse returns and may be shared between goroutines.
package synonyms

import (
	"strings"

	"plagcheck/internal/textutil"
)

// Entry is one word to leader mapping.
type Entry struct {
	Word   string `json:"word"`
	Leader string `json:"leader"`
}

// Table maps words to the leader of the group that first claimed them.
type Table struct {
	leaders map[string]string
	order   []string
}

// Parse builds a table from raw synonym-source text. Lines are processed in
// order and sanitized like documents, except newlines separate groups.
func Parse(text string) *Table {
	table := &Table{leaders: make(map[string]string)}
	for _, line := range strings.Split(textutil.Sanitize(text, true), "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		leader := words[0]
		for _, word := range words {
			table.add(word, leader)
		}
	}
	return table
}

func (t *Table) add(word, leader string) {
	if _, exists := t.leaders[word]; exists {
		return
	}
	t.leaders[word] = leader
	t.order = append(t.order, word)
}

// Leader returns the canonical word for word, if the table knows it.
func (t *Table) Leader(word string) (string, bool) {
	if t == nil {
		return "", false
	}
	leader, ok := t.leaders[word]
	return leader, ok
}

// Len returns the number of mapped words, leaders included.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Entries lists the mappings in the order words were first claimed.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, 0, len(t.order))
	for _, word := range t.order {
		entries = append(entries, Entry{Word: word, Leader: t.leaders[word]})
	}
	return entries
}

// Groups returns each leader with the words mapped to it, in claim order.
func (t *Table) Groups() map[string][]string {
	if t == nil {
		return nil
	}
	groups := make(map[string][]string)
	for _, word := range t.order {
		leader := t.leaders[word]
		groups[leader] = append(groups[leader], word)
	}
	return groups
}
