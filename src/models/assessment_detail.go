package models

import "time"

// AssessmentDetail is the nested tree the frontend works with: the full
// taxonomy in canonical order, overlaid with one assessment's answers.
// The same shape is accepted back on create/update, which is why Score and
// Value are pointers — the merge rules distinguish absent from empty.
type AssessmentDetail struct {
	ID          string        `json:"id,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	CreatedAt   *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time    `json:"updatedAt,omitempty"`
	Chapters    []ChapterNode `json:"chapters"`
}

type ChapterNode struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	OrderNumber int        `json:"orderNumber"`
	Areas       []AreaNode `json:"areas"`
}

type AreaNode struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	OrderNumber  int               `json:"orderNumber"`
	Score        *string           `json:"score"`
	Comment      string            `json:"comment"`
	Requirements []RequirementNode `json:"requirements"`
}

type RequirementNode struct {
	ID          string  `json:"id"`
	Text        string  `json:"text"`
	OrderNumber int     `json:"orderNumber"`
	Value       *string `json:"value"`
	Comment     string  `json:"comment"`
}

// StrPtr is a small helper for building payloads (mostly in tests).
func StrPtr(s string) *string { return &s }

// Merge outcome reporting. The reference behavior swallows entries whose
// taxonomy ids don't resolve; we keep the skip but surface it per entry so
// callers can tell applied from ignored.
const (
	MergeApplied          = "applied"
	MergeSkippedUnknownID = "skippedUnknownId"
	MergeSkippedEmpty     = "skippedEmpty"
)

// MergeEntry records what happened to one area/requirement entry.
type MergeEntry struct {
	Kind   string `json:"kind"` // "areaScore" or "response"
	ID     string `json:"id"`
	Status string `json:"status"`
}

// MergeResult sums up one ApplyCreate/ApplyUpdate pass.
type MergeResult struct {
	Applied int          `json:"applied"`
	Skipped int          `json:"skipped"`
	Entries []MergeEntry `json:"entries"`
}

// Add appends an entry and bumps the counters.
func (r *MergeResult) Add(kind, id, status string) {
	r.Entries = append(r.Entries, MergeEntry{Kind: kind, ID: id, Status: status})
	if status == MergeApplied {
		r.Applied++
	} else {
		r.Skipped++
	}
}
