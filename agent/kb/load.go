package kb

import (
	"bytes"
	"fmt"

	_ "embed"

	"github.com/spf13/viper"

	contractx "github.com/witsarut/careermate/agent/contract"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	JobSkills map[string][]string `mapstructure:"job_skills"`
	Postings  []JobPosting        `mapstructure:"postings"`
	Courses   map[string][]course `mapstructure:"courses"`
}

type course struct {
	Name     string `mapstructure:"name"`
	Provider string `mapstructure:"provider"`
	URL      string `mapstructure:"url"`
}

// Load parses a YAML catalog document into a KB.
func Load(raw []byte) (*KB, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var cf catalogFile
	if err := v.Unmarshal(&cf); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	courses := make(map[string][]contractx.Course, len(cf.Courses))
	for skill, entries := range cf.Courses {
		for _, e := range entries {
			courses[skill] = append(courses[skill], contractx.Course{
				Name:     e.Name,
				Provider: e.Provider,
				URL:      e.URL,
			})
		}
	}

	return New(cf.JobSkills, cf.Postings, courses)
}

// Default returns the built-in catalog. It panics only on a malformed embed,
// which is a build defect, not a runtime condition.
func Default() *KB {
	k, err := Load(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("kb: embedded catalog is invalid: %v", err))
	}
	return k
}
