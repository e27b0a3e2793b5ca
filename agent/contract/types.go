package contract

import "strings"

type Intent string

const (
	IntentSkillGap  Intent = "skill_gap"
	IntentJobFinder Intent = "job_finder"
	IntentCourseRec Intent = "course_recommender"
	IntentUnclear   Intent = "unclear"
)

// ParseIntent maps a raw classifier label onto the intent enum. Upstream
// output is untrusted: anything outside the enum collapses to IntentUnclear.
func ParseIntent(label string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(label))) {
	case IntentSkillGap:
		return IntentSkillGap
	case IntentJobFinder:
		return IntentJobFinder
	case IntentCourseRec:
		return IntentCourseRec
	default:
		return IntentUnclear
	}
}

type SkillGapParams struct {
	TargetJob   string   `json:"target_job"`
	KnownSkills []string `json:"known_skills,omitempty"`
}

type JobFinderParams struct {
	KnownSkills []string `json:"known_skills,omitempty"`
	Location    string   `json:"location,omitempty"`
}

type CourseParams struct {
	MissingSkills []string `json:"missing_skills"`
}

// ExtractedParams is a tagged variant keyed by Intent. Exactly one of the
// pointer fields is set, matching the intent that produced it.
type ExtractedParams struct {
	Intent    Intent           `json:"intent"`
	SkillGap  *SkillGapParams  `json:"skill_gap,omitempty"`
	JobFinder *JobFinderParams `json:"job_finder,omitempty"`
	Courses   *CourseParams    `json:"courses,omitempty"`
}

type SkillGapResult struct {
	TargetJob     string   `json:"target_job"`
	MissingSkills []string `json:"missing_skills"`
	// JobUnknown distinguishes "no such job in the catalog" from "no gap".
	JobUnknown bool `json:"job_unknown,omitempty"`
}

type JobMatch struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location,omitempty"`
	Skills   []string `json:"skills"`
	Overlap  float64  `json:"overlap"`
}

type Course struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	URL      string `json:"url,omitempty"`
}

type CourseRecommendation struct {
	Skill   string   `json:"skill"`
	Courses []Course `json:"courses"`
}

// Response is the outcome of one turn. The payload field matching Intent is
// set; a clarification turn carries only Intent=unclear and Text.
type Response struct {
	Intent   Intent                 `json:"intent"`
	SkillGap *SkillGapResult        `json:"skill_gap,omitempty"`
	Jobs     []JobMatch             `json:"jobs,omitempty"`
	Courses  []CourseRecommendation `json:"courses,omitempty"`
	Text     string                 `json:"text"`
}
