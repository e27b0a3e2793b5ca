// Package extractor turns a query plus a target intent into a validated
// parameter struct via the model capability under a fixed JSON schema per
// intent. The model's output is untrusted: unknown fields are dropped by the
// schema decode, missing required fields become ExtractionError, and skill
// lists are normalized before any specialist sees them.
package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"

	contractx "github.com/witsarut/careermate/agent/contract"
	kbx "github.com/witsarut/careermate/agent/kb"
	llmx "github.com/witsarut/careermate/agent/llm"
	promptx "github.com/witsarut/careermate/agent/prompt"
)

type extractorImpl struct {
	skillGap  compose.Runnable[map[string]any, skillGapLLMOutput]
	jobFinder compose.Runnable[map[string]any, jobFinderLLMOutput]
	courses   compose.Runnable[map[string]any, courseLLMOutput]
}

type skillGapLLMOutput struct {
	TargetJob   string   `json:"target_job"`
	KnownSkills []string `json:"known_skills"`
}

type jobFinderLLMOutput struct {
	KnownSkills []string `json:"known_skills"`
	Location    string   `json:"location"`
}

type courseLLMOutput struct {
	MissingSkills []string `json:"missing_skills"`
}

func New(ctx context.Context, chatModel einomodel.BaseChatModel, prompts promptx.PromptSet) (contractx.Extractor, error) {
	skillGap, err := llmx.CompileStructuredGraph[skillGapLLMOutput](ctx, chatModel, prompts.SkillGap, "extractor.skill_gap_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile skill gap extractor graph: %v", contractx.ErrModelInvoke, err)
	}
	jobFinder, err := llmx.CompileStructuredGraph[jobFinderLLMOutput](ctx, chatModel, prompts.JobFinder, "extractor.job_finder_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile job finder extractor graph: %v", contractx.ErrModelInvoke, err)
	}
	courses, err := llmx.CompileStructuredGraph[courseLLMOutput](ctx, chatModel, prompts.CourseRecommender, "extractor.course_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile course extractor graph: %v", contractx.ErrModelInvoke, err)
	}

	return &extractorImpl{
		skillGap:  skillGap,
		jobFinder: jobFinder,
		courses:   courses,
	}, nil
}

func (e *extractorImpl) Extract(ctx context.Context, req contractx.ExtractRequest) (contractx.ExtractedParams, error) {
	if strings.TrimSpace(req.Query) == "" {
		return contractx.ExtractedParams{}, fmt.Errorf("%w: query is required", contractx.ErrValidation)
	}

	input, err := buildInput(req)
	if err != nil {
		return contractx.ExtractedParams{}, err
	}

	switch req.Intent {
	case contractx.IntentSkillGap:
		out, err := invoke(ctx, e.skillGap, input)
		if err != nil {
			return contractx.ExtractedParams{}, err
		}
		targetJob := strings.TrimSpace(out.TargetJob)
		if targetJob == "" {
			return contractx.ExtractedParams{}, &contractx.ExtractionError{Intent: req.Intent, MissingField: "target_job"}
		}
		return contractx.ExtractedParams{
			Intent: req.Intent,
			SkillGap: &contractx.SkillGapParams{
				TargetJob:   targetJob,
				KnownSkills: kbx.NormalizeSkills(out.KnownSkills),
			},
		}, nil

	case contractx.IntentJobFinder:
		out, err := invoke(ctx, e.jobFinder, input)
		if err != nil {
			return contractx.ExtractedParams{}, err
		}
		return contractx.ExtractedParams{
			Intent: req.Intent,
			JobFinder: &contractx.JobFinderParams{
				KnownSkills: kbx.NormalizeSkills(out.KnownSkills),
				Location:    strings.TrimSpace(out.Location),
			},
		}, nil

	case contractx.IntentCourseRec:
		out, err := invoke(ctx, e.courses, input)
		if err != nil {
			return contractx.ExtractedParams{}, err
		}
		missing := kbx.NormalizeSkills(out.MissingSkills)
		if len(missing) == 0 {
			return contractx.ExtractedParams{}, &contractx.ExtractionError{Intent: req.Intent, MissingField: "missing_skills"}
		}
		return contractx.ExtractedParams{
			Intent:  req.Intent,
			Courses: &contractx.CourseParams{MissingSkills: missing},
		}, nil

	default:
		return contractx.ExtractedParams{}, fmt.Errorf("%w: no extraction schema for intent=%q", contractx.ErrValidation, req.Intent)
	}
}

func buildInput(req contractx.ExtractRequest) (map[string]any, error) {
	payload := map[string]any{"query": req.Query}
	if reminder := strings.TrimSpace(req.Reminder); reminder != "" {
		payload["reminder"] = reminder
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal extraction payload: %v", contractx.ErrValidation, err)
	}
	return map[string]any{"input": string(raw)}, nil
}

func invoke[T any](ctx context.Context, runner compose.Runnable[map[string]any, T], input map[string]any) (T, error) {
	out, err := runner.Invoke(ctx, input)
	if err != nil {
		var zero T
		if errors.Is(err, context.DeadlineExceeded) {
			return zero, fmt.Errorf("%w: %v", contractx.ErrUpstreamTimeout, err)
		}
		return zero, fmt.Errorf("%w: extractor invoke: %v", contractx.ErrModelInvoke, err)
	}
	return out, nil
}
