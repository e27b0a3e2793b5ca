// Package specialist implements the three deterministic career capabilities
// over an injected knowledge base. Every function here is pure: no model
// calls, no side effects, run-to-completion once invoked.
package specialist

import (
	"sort"

	contractx "github.com/witsarut/careermate/agent/contract"
	kbx "github.com/witsarut/careermate/agent/kb"
)

const DefaultMinOverlap = 0.5

// MatchOptions tunes job matching. The qualifying threshold is injectable
// rather than hard-coded; zero means DefaultMinOverlap.
type MatchOptions struct {
	MinOverlap float64
}

func (o MatchOptions) minOverlap() float64 {
	if o.MinOverlap <= 0 {
		return DefaultMinOverlap
	}
	return o.MinOverlap
}

// MissingSkills reports the case-folded set difference between a job's
// required skills and the skills the user already has. An unknown job is a
// data result (JobUnknown=true, empty difference), not an error, so the turn
// can still render a graceful reply.
func MissingSkills(k *kbx.KB, targetJob string, knownSkills []string) contractx.SkillGapResult {
	required, ok := k.RequiredSkills(targetJob)
	if !ok {
		return contractx.SkillGapResult{
			TargetJob:     targetJob,
			MissingSkills: []string{},
			JobUnknown:    true,
		}
	}

	known := make(map[string]struct{}, len(knownSkills))
	for _, s := range kbx.NormalizeSkills(knownSkills) {
		known[s] = struct{}{}
	}

	missing := make([]string, 0, len(required))
	for _, skill := range required {
		if _, has := known[kbx.Canon(skill)]; !has {
			missing = append(missing, skill)
		}
	}

	return contractx.SkillGapResult{
		TargetJob:     targetJob,
		MissingSkills: missing,
	}
}

// FindJobs ranks postings whose required skills overlap the user's skills by
// at least the qualifying ratio. Order: higher overlap first, then exact
// location match when a location was given, then original catalog order.
// An empty result is a valid answer, never an error.
func FindJobs(k *kbx.KB, knownSkills []string, location string, opts MatchOptions) []contractx.JobMatch {
	known := make(map[string]struct{}, len(knownSkills))
	for _, s := range kbx.NormalizeSkills(knownSkills) {
		known[s] = struct{}{}
	}
	wantLocation := kbx.Canon(location)

	type candidate struct {
		match       contractx.JobMatch
		locationHit bool
	}

	candidates := make([]candidate, 0, len(k.Postings()))
	for _, posting := range k.Postings() {
		required := kbx.NormalizeSkills(posting.Skills)
		ratio := 1.0
		if len(required) > 0 {
			hits := 0
			for _, skill := range required {
				if _, has := known[skill]; has {
					hits++
				}
			}
			ratio = float64(hits) / float64(len(required))
		}
		if ratio < opts.minOverlap() {
			continue
		}
		candidates = append(candidates, candidate{
			match: contractx.JobMatch{
				Title:    posting.Title,
				Company:  posting.Company,
				Location: posting.Location,
				Skills:   posting.Skills,
				Overlap:  ratio,
			},
			locationHit: wantLocation != "" && kbx.Canon(posting.Location) == wantLocation,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].match.Overlap != candidates[j].match.Overlap {
			return candidates[i].match.Overlap > candidates[j].match.Overlap
		}
		return candidates[i].locationHit && !candidates[j].locationHit
	})

	matches := make([]contractx.JobMatch, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, c.match)
	}
	return matches
}

// RecommendCourses returns one recommendation per requested skill in request
// order. Skills without catalog courses are kept with an empty slice so the
// caller can report "no course found" per skill.
func RecommendCourses(k *kbx.KB, missingSkills []string) []contractx.CourseRecommendation {
	recs := make([]contractx.CourseRecommendation, 0, len(missingSkills))
	for _, skill := range kbx.NormalizeSkills(missingSkills) {
		courses := k.CoursesFor(skill)
		if courses == nil {
			courses = []contractx.Course{}
		}
		recs = append(recs, contractx.CourseRecommendation{
			Skill:   skill,
			Courses: courses,
		})
	}
	return recs
}
