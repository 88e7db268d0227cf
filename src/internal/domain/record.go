package domain

import "fmt"

// Record is an immutable registry value. Identity is the ID alone: two
// records with the same ID are the same entity even when the other
// fields differ, so any map keyed on records must key on ID.
type Record struct {
	ID    int
	Name  string
	Age   int
	Group string
	Score float64
}

// String prints the compact single-line form used by registry reports,
// e.g. "101 - An | CS | age 19 | score 3.40".
func (r Record) String() string {
	return fmt.Sprintf("%d - %s | %s | age %d | score %.2f", r.ID, r.Name, r.Group, r.Age, r.Score)
}

// RecordGroup is one bucket of a grouped scan. Buckets are returned as
// an ordered slice because map iteration order would lose the
// first-seen ordering of group values.
type RecordGroup struct {
	Group   string
	Records []Record
}
