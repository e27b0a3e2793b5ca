package orchestratornode

import (
	"fmt"
	"strings"

	contractx "github.com/witsarut/careermate/agent/contract"
)

const clarificationHint = "I can analyze your skill gap for a target job, match your skills to open positions, or recommend courses for skills you want to learn."

// FormatResponse renders the structured payload into the final reply text.
// Unroutable and unextractable turns get a clarification response here
// instead of an error.
func FormatResponse(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	switch {
	case in.Intent == contractx.IntentUnclear:
		in.Response = contractx.Response{
			Intent: contractx.IntentUnclear,
			Text:   "I'm not sure what you're asking for. " + clarificationHint,
		}

	case in.NeedsClarification:
		text := "I couldn't work out the details of your request. " + clarificationHint
		if in.MissingField != "" {
			text = fmt.Sprintf("I couldn't work out %s from your message. Could you state it explicitly?", describeField(in.MissingField))
		}
		in.Response = contractx.Response{
			Intent: contractx.IntentUnclear,
			Text:   text,
		}

	default:
		in.Response.Text = renderPayload(in.Response)
	}

	return in, nil
}

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if strings.TrimSpace(in.Response.Text) == "" {
		return GraphOutput{}, fmt.Errorf("%w: rendered response text is empty", contractx.ErrValidation)
	}
	return GraphOutput{Response: in.Response}, nil
}

func describeField(field string) string {
	switch field {
	case "target_job":
		return "which job you're aiming for"
	case "missing_skills":
		return "which skills you want to learn"
	default:
		return fmt.Sprintf("the %q field", field)
	}
}

func renderPayload(resp contractx.Response) string {
	switch resp.Intent {
	case contractx.IntentSkillGap:
		return renderSkillGap(resp.SkillGap)
	case contractx.IntentJobFinder:
		return renderJobs(resp.Jobs)
	case contractx.IntentCourseRec:
		return renderCourses(resp.Courses)
	default:
		return clarificationHint
	}
}

func renderSkillGap(result *contractx.SkillGapResult) string {
	if result == nil {
		return clarificationHint
	}
	if result.JobUnknown {
		return fmt.Sprintf("I don't recognize the job %q, so I can't tell you what skills it needs.", result.TargetJob)
	}
	if len(result.MissingSkills) == 0 {
		return fmt.Sprintf("Good news: you already have every skill required for %s.", result.TargetJob)
	}
	return fmt.Sprintf("To become a %s, you need to learn: %s.", result.TargetJob, strings.Join(result.MissingSkills, ", "))
}

func renderJobs(jobs []contractx.JobMatch) string {
	if len(jobs) == 0 {
		return "I couldn't find any open positions matching your skills."
	}
	var b strings.Builder
	b.WriteString("Here are positions matching your skills:")
	for i, job := range jobs {
		b.WriteString(fmt.Sprintf("\n%d. %s at %s", i+1, job.Title, job.Company))
		if job.Location != "" {
			b.WriteString(fmt.Sprintf(" (%s)", job.Location))
		}
		b.WriteString(fmt.Sprintf(" - required skills: %s", strings.Join(job.Skills, ", ")))
	}
	return b.String()
}

func renderCourses(recs []contractx.CourseRecommendation) string {
	if len(recs) == 0 {
		return "I couldn't find courses to recommend."
	}
	var b strings.Builder
	b.WriteString("Course recommendations:")
	for _, rec := range recs {
		if len(rec.Courses) == 0 {
			b.WriteString(fmt.Sprintf("\n%s: no course found in the catalog.", rec.Skill))
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s:", rec.Skill))
		for i, course := range rec.Courses {
			b.WriteString(fmt.Sprintf("\n  %d. %s (%s)", i+1, course.Name, course.Provider))
			if course.URL != "" {
				b.WriteString(" - " + course.URL)
			}
		}
	}
	return b.String()
}
