package kb

import (
	"errors"
	"testing"

	contractx "github.com/witsarut/careermate/agent/contract"
)

func TestNormalizeSkills(t *testing.T) {
	t.Parallel()

	got := NormalizeSkills([]string{" Python ", "SQL", "python", "", "sql", "React"})
	want := []string{"python", "sql", "react"}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: got %#v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected skill at %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestNewRejectsDuplicateJobTitles(t *testing.T) {
	t.Parallel()

	_, err := New(map[string][]string{
		"Data Analyst": {"SQL"},
		"data analyst": {"Python"},
	}, nil, nil)
	if err == nil {
		t.Fatal("expected error for duplicate job title")
	}
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRequiredSkillsCaseInsensitive(t *testing.T) {
	t.Parallel()

	k, err := New(map[string][]string{
		"Data Scientist": {"Python", "SQL"},
	}, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	skills, ok := k.RequiredSkills("  DATA scientist ")
	if !ok {
		t.Fatal("expected job to be found")
	}
	if len(skills) != 2 || skills[0] != "Python" {
		t.Fatalf("unexpected skills: %#v", skills)
	}

	if _, ok := k.RequiredSkills("astronaut"); ok {
		t.Fatal("expected unknown job to be absent")
	}
}

func TestCoursesForUnknownSkillIsEmpty(t *testing.T) {
	t.Parallel()

	k, err := New(nil, nil, map[string][]contractx.Course{
		"React": {{Name: "React Basics", Provider: "Udemy"}},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := k.CoursesFor("REACT"); len(got) != 1 || got[0].Name != "React Basics" {
		t.Fatalf("unexpected react courses: %#v", got)
	}
	if got := k.CoursesFor("pandas"); len(got) != 0 {
		t.Fatalf("expected no courses for unknown skill, got %#v", got)
	}
}

func TestLoadParsesCatalogDocument(t *testing.T) {
	t.Parallel()

	raw := []byte(`
job_skills:
  qa engineer: [Selenium, Python]

postings:
  - title: QA Engineer
    company: TestLab
    location: Berlin
    skills: [Selenium]

courses:
  selenium:
    - name: Selenium Basics
      provider: Udemy
      url: https://example.com/selenium
`)

	k, err := Load(raw)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	skills, ok := k.RequiredSkills("QA Engineer")
	if !ok || len(skills) != 2 {
		t.Fatalf("unexpected required skills: %#v ok=%v", skills, ok)
	}
	if len(k.Postings()) != 1 || k.Postings()[0].Company != "TestLab" {
		t.Fatalf("unexpected postings: %#v", k.Postings())
	}
	courses := k.CoursesFor("Selenium")
	if len(courses) != 1 || courses[0].Provider != "Udemy" {
		t.Fatalf("unexpected courses: %#v", courses)
	}
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	k := Default()

	skills, ok := k.RequiredSkills("data scientist")
	if !ok || len(skills) != 5 {
		t.Fatalf("unexpected data scientist skills: %#v ok=%v", skills, ok)
	}
	if len(k.Postings()) != 3 {
		t.Fatalf("expected 3 postings, got %d", len(k.Postings()))
	}
	if len(k.CoursesFor("SQL")) != 2 {
		t.Fatalf("expected 2 SQL courses, got %#v", k.CoursesFor("SQL"))
	}
}
