package orchestratornode

import (
	"strings"
	"testing"

	contractx "github.com/witsarut/careermate/agent/contract"
)

func TestFormatResponseUnclearIntent(t *testing.T) {
	t.Parallel()

	in := &GraphState{Query: "hmm", Intent: contractx.IntentUnclear}
	out, err := FormatResponse(in)
	if err != nil {
		t.Fatalf("FormatResponse() error = %v", err)
	}
	if out.Response.Intent != contractx.IntentUnclear {
		t.Fatalf("unexpected intent: %s", out.Response.Intent)
	}
	if !strings.Contains(out.Response.Text, "not sure") {
		t.Fatalf("unexpected text: %q", out.Response.Text)
	}
}

func TestFormatResponseClarificationNamesMissingField(t *testing.T) {
	t.Parallel()

	in := &GraphState{
		Query:              "what am I missing?",
		Intent:             contractx.IntentSkillGap,
		NeedsClarification: true,
		MissingField:       "target_job",
	}
	out, err := FormatResponse(in)
	if err != nil {
		t.Fatalf("FormatResponse() error = %v", err)
	}
	if out.Response.Intent != contractx.IntentUnclear {
		t.Fatalf("unexpected intent: %s", out.Response.Intent)
	}
	if !strings.Contains(out.Response.Text, "which job") {
		t.Fatalf("unexpected text: %q", out.Response.Text)
	}
}

func TestFormatResponseSkillGapRendering(t *testing.T) {
	t.Parallel()

	in := &GraphState{
		Query:  "I want to become a data scientist",
		Intent: contractx.IntentSkillGap,
		Response: contractx.Response{
			Intent: contractx.IntentSkillGap,
			SkillGap: &contractx.SkillGapResult{
				TargetJob:     "data scientist",
				MissingSkills: []string{"Statistics", "Pandas"},
			},
		},
	}
	out, err := FormatResponse(in)
	if err != nil {
		t.Fatalf("FormatResponse() error = %v", err)
	}
	if !strings.Contains(out.Response.Text, "Statistics, Pandas") {
		t.Fatalf("unexpected text: %q", out.Response.Text)
	}
}

func TestFormatResponseNoGapRendering(t *testing.T) {
	t.Parallel()

	in := &GraphState{
		Query:  "am I ready?",
		Intent: contractx.IntentSkillGap,
		Response: contractx.Response{
			Intent: contractx.IntentSkillGap,
			SkillGap: &contractx.SkillGapResult{
				TargetJob:     "data analyst",
				MissingSkills: []string{},
			},
		},
	}
	out, err := FormatResponse(in)
	if err != nil {
		t.Fatalf("FormatResponse() error = %v", err)
	}
	if !strings.Contains(out.Response.Text, "already have every skill") {
		t.Fatalf("unexpected text: %q", out.Response.Text)
	}
}

func TestFormatResponseJobListRendering(t *testing.T) {
	t.Parallel()

	in := &GraphState{
		Query:  "find me a job",
		Intent: contractx.IntentJobFinder,
		Response: contractx.Response{
			Intent: contractx.IntentJobFinder,
			Jobs: []contractx.JobMatch{
				{Title: "Data Analyst", Company: "DataWorks", Location: "San Francisco", Skills: []string{"python", "sql"}, Overlap: 1},
			},
		},
	}
	out, err := FormatResponse(in)
	if err != nil {
		t.Fatalf("FormatResponse() error = %v", err)
	}
	if !strings.Contains(out.Response.Text, "1. Data Analyst at DataWorks (San Francisco)") {
		t.Fatalf("unexpected text: %q", out.Response.Text)
	}
}

func TestFinalizeReplyRejectsEmptyText(t *testing.T) {
	t.Parallel()

	_, err := FinalizeReply(&GraphState{Response: contractx.Response{}})
	if err == nil {
		t.Fatal("expected error for empty rendered text")
	}
}

func TestValidateQuery(t *testing.T) {
	t.Parallel()

	if _, err := ValidateQuery(GraphInput{Query: "  "}); err != ErrInvalidQuery {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}

	st, err := ValidateQuery(GraphInput{Query: "  find me a job  "})
	if err != nil {
		t.Fatalf("ValidateQuery() error = %v", err)
	}
	if st.Query != "find me a job" {
		t.Fatalf("expected trimmed query, got %q", st.Query)
	}
}
