package orchestratornode

import (
	"fmt"

	contractx "github.com/witsarut/careermate/agent/contract"
	kbx "github.com/witsarut/careermate/agent/kb"
	specialistx "github.com/witsarut/careermate/agent/specialist"
)

// DispatchSpecialist is the single place knowledge-base logic runs in a turn:
// exactly one specialist call, selected by the extracted intent.
func DispatchSpecialist(in *GraphState, k *kbx.KB, opts specialistx.MatchOptions) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	switch in.Params.Intent {
	case contractx.IntentSkillGap:
		if in.Params.SkillGap == nil {
			return nil, fmt.Errorf("%w: skill gap params are nil", contractx.ErrValidation)
		}
		result := specialistx.MissingSkills(k, in.Params.SkillGap.TargetJob, in.Params.SkillGap.KnownSkills)
		in.Response = contractx.Response{
			Intent:   contractx.IntentSkillGap,
			SkillGap: &result,
		}

	case contractx.IntentJobFinder:
		if in.Params.JobFinder == nil {
			return nil, fmt.Errorf("%w: job finder params are nil", contractx.ErrValidation)
		}
		matches := specialistx.FindJobs(k, in.Params.JobFinder.KnownSkills, in.Params.JobFinder.Location, opts)
		in.Response = contractx.Response{
			Intent: contractx.IntentJobFinder,
			Jobs:   matches,
		}

	case contractx.IntentCourseRec:
		if in.Params.Courses == nil {
			return nil, fmt.Errorf("%w: course params are nil", contractx.ErrValidation)
		}
		recs := specialistx.RecommendCourses(k, in.Params.Courses.MissingSkills)
		in.Response = contractx.Response{
			Intent:  contractx.IntentCourseRec,
			Courses: recs,
		}

	default:
		return nil, fmt.Errorf("%w: no specialist for intent=%q", contractx.ErrValidation, in.Params.Intent)
	}

	return in, nil
}
