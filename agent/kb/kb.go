// Package kb holds the static career knowledge base: required skills per job
// title, open job postings, and course catalog entries per skill. A KB is
// built once at startup and read concurrently by every turn; nothing mutates
// it after construction.
package kb

import (
	"fmt"
	"strings"

	contractx "github.com/witsarut/careermate/agent/contract"
)

type JobPosting struct {
	Title    string   `json:"title" mapstructure:"title"`
	Company  string   `json:"company" mapstructure:"company"`
	Location string   `json:"location,omitempty" mapstructure:"location"`
	Skills   []string `json:"skills" mapstructure:"skills"`
}

type KB struct {
	jobSkills map[string][]string
	postings  []JobPosting
	courses   map[string][]contractx.Course
}

// Canon is the canonical form used for every lookup key and comparison.
func Canon(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeSkills trims, casefolds, and dedups a skill list, preserving
// first-seen order and dropping empties.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		c := Canon(s)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// New builds a KB from raw catalog data. Job titles and course skills are
// canonicalized as keys; duplicate job titles are rejected since required
// skills per title must be unambiguous.
func New(jobSkills map[string][]string, postings []JobPosting, courses map[string][]contractx.Course) (*KB, error) {
	js := make(map[string][]string, len(jobSkills))
	for title, skills := range jobSkills {
		key := Canon(title)
		if key == "" {
			return nil, fmt.Errorf("%w: empty job title in skill map", contractx.ErrValidation)
		}
		if _, ok := js[key]; ok {
			return nil, fmt.Errorf("%w: duplicate job title %q in skill map", contractx.ErrValidation, key)
		}
		js[key] = append([]string(nil), skills...)
	}

	cs := make(map[string][]contractx.Course, len(courses))
	for skill, entries := range courses {
		key := Canon(skill)
		if key == "" {
			continue
		}
		cs[key] = append(cs[key], entries...)
	}

	return &KB{
		jobSkills: js,
		postings:  append([]JobPosting(nil), postings...),
		courses:   cs,
	}, nil
}

// RequiredSkills reports the skill set for a job title, case-insensitively.
// The second result is false when the title is not in the catalog.
func (k *KB) RequiredSkills(title string) ([]string, bool) {
	skills, ok := k.jobSkills[Canon(title)]
	return skills, ok
}

// Postings returns the job postings in catalog order. Callers must treat the
// slice as read-only.
func (k *KB) Postings() []JobPosting {
	return k.postings
}

// CoursesFor looks up courses for a skill, case-insensitively. Unknown skills
// yield an empty slice, never an error.
func (k *KB) CoursesFor(skill string) []contractx.Course {
	return k.courses[Canon(skill)]
}
