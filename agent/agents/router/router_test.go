package router

import (
	"context"
	"errors"
	"strings"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/witsarut/careermate/agent/contract"
	promptx "github.com/witsarut/careermate/agent/prompt"
)

type fakeChatModel struct {
	responses []*schema.Message
	err       error
	idx       int
	inputs    [][]*schema.Message
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	if f.idx >= len(f.responses) {
		return nil, errors.New("no fake response left")
	}
	msg := f.responses[f.idx]
	f.idx++
	return msg, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented in fake model")
}

func newTestRouter(t *testing.T, fake *fakeChatModel) contractx.Classifier {
	t.Helper()

	r, err := New(context.Background(), fake, promptx.LoadPromptSet().Router)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestClassifyKnownLabels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		want  contractx.Intent
	}{
		{`{"intent":"skill_gap"}`, contractx.IntentSkillGap},
		{`{"intent":"job_finder"}`, contractx.IntentJobFinder},
		{`{"intent":"course_recommender"}`, contractx.IntentCourseRec},
		{`{"intent":" Job_Finder "}`, contractx.IntentJobFinder},
	}

	for _, tc := range cases {
		r := newTestRouter(t, &fakeChatModel{
			responses: []*schema.Message{{Content: tc.label}},
		})
		if got := r.Classify(context.Background(), "find me a job"); got != tc.want {
			t.Fatalf("label %s: got %s want %s", tc.label, got, tc.want)
		}
	}
}

func TestClassifyRendersEmbeddedPromptVerbatim(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{
		responses: []*schema.Message{{Content: `{"intent":"job_finder"}`}},
	}
	r := newTestRouter(t, fake)

	if got := r.Classify(context.Background(), "find me a job in Bangkok"); got != contractx.IntentJobFinder {
		t.Fatalf("expected job_finder, got %s", got)
	}
	if len(fake.inputs) != 1 || len(fake.inputs[0]) == 0 {
		t.Fatalf("expected one model call with messages, got %v", fake.inputs)
	}

	system := fake.inputs[0][0]
	if system.Role != schema.System {
		t.Fatalf("expected system message first, got role %s", system.Role)
	}
	// The JSON example in the template must survive formatting as literal
	// single-brace JSON.
	if !strings.Contains(system.Content, `{"intent"`) {
		t.Fatalf("system prompt lost its JSON schema example:\n%s", system.Content)
	}
	if strings.Contains(system.Content, "{{") || strings.Contains(system.Content, "}}") {
		t.Fatalf("system prompt still carries escaped braces:\n%s", system.Content)
	}
}

func TestClassifyMalformedLabelCollapsesToUnclear(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, &fakeChatModel{
		responses: []*schema.Message{{Content: `{"intent":"career_coach"}`}},
	})

	if got := r.Classify(context.Background(), "help me somehow"); got != contractx.IntentUnclear {
		t.Fatalf("expected unclear, got %s", got)
	}
}

func TestClassifyInvokeFailureIsUnclearNotFatal(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, &fakeChatModel{err: errors.New("upstream exploded")})

	if got := r.Classify(context.Background(), "find me a job"); got != contractx.IntentUnclear {
		t.Fatalf("expected unclear on invoke failure, got %s", got)
	}
}

func TestClassifyEmptyQueryIsUnclear(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{}
	r := newTestRouter(t, fake)

	if got := r.Classify(context.Background(), "   "); got != contractx.IntentUnclear {
		t.Fatalf("expected unclear for empty query, got %s", got)
	}
	if len(fake.inputs) != 0 {
		t.Fatalf("expected no model call for empty query, got %d", len(fake.inputs))
	}
}
