package entity

import "encoding/json"

// TallyEntry is the number of games that ended with a given winner label.
type TallyEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Tally counts game outcomes per winner label and remembers the order in
// which labels were first seen.
type Tally struct {
	order  []string
	counts map[string]int
}

func NewTally() *Tally {
	return &Tally{
		counts: make(map[string]int),
	}
}

func (that *Tally) Add(label string) {
	that.AddN(label, 1)
}

func (that *Tally) AddN(label string, n int) {
	if _, ok := that.counts[label]; !ok {
		that.order = append(that.order, label)
	}
	that.counts[label] += n
}

// Merge - adds every counter of other, new labels are appended in other's order.
func (that *Tally) Merge(other *Tally) {
	for _, label := range other.order {
		that.AddN(label, other.counts[label])
	}
}

func (that *Tally) Count(label string) int {
	return that.counts[label]
}

// Labels - returns the labels in first-encounter order.
func (that *Tally) Labels() []string {
	labels := make([]string, len(that.order))
	copy(labels, that.order)
	return labels
}

func (that *Tally) Total() int {
	total := 0
	for _, count := range that.counts {
		total += count
	}
	return total
}

func (that *Tally) Entries() []TallyEntry {
	entries := make([]TallyEntry, 0, len(that.order))
	for _, label := range that.order {
		entries = append(entries, TallyEntry{Label: label, Count: that.counts[label]})
	}
	return entries
}

func (that *Tally) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Entries())
}

func (that *Tally) UnmarshalJSON(data []byte) error {
	var entries []TallyEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	that.order = nil
	that.counts = make(map[string]int, len(entries))
	for _, entry := range entries {
		that.AddN(entry.Label, entry.Count)
	}

	return nil
}
