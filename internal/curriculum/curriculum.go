// Package curriculum holds the static DepEd subject catalog the form
// dropdowns are populated from. The catalog ships embedded so the service
// has no runtime file dependency.
package curriculum

import (
  _ "embed"
  "fmt"
  "sort"

  "gopkg.in/yaml.v3"
)

//go:embed data.yaml
var rawCatalog []byte

type Grade struct {
  Level    int      `yaml:"level" json:"level"`
  Subjects []string `yaml:"subjects" json:"subjects"`
}

type Catalog struct {
  Quarters        []int   `yaml:"quarters" json:"quarters"`
  CognitiveLevels []string `yaml:"cognitive_levels" json:"cognitive_levels"`
  Grades          []Grade `yaml:"grades" json:"grades"`
}

// Load parses the embedded catalog. Called once at startup.
func Load() (*Catalog, error) {
  var c Catalog
  if err := yaml.Unmarshal(rawCatalog, &c); err != nil {
    return nil, fmt.Errorf("parse curriculum catalog: %w", err)
  }
  if len(c.Grades) == 0 {
    return nil, fmt.Errorf("curriculum catalog has no grades")
  }
  sort.Slice(c.Grades, func(i, j int) bool { return c.Grades[i].Level < c.Grades[j].Level })
  return &c, nil
}

// SubjectsFor returns the subject list for a grade level, or nil when the
// grade is outside the catalog.
func (c *Catalog) SubjectsFor(level int) []string {
  for _, g := range c.Grades {
    if g.Level == level {
      return g.Subjects
    }
  }
  return nil
}

func (c *Catalog) HasGrade(level int) bool {
  return c.SubjectsFor(level) != nil
}

func (c *Catalog) HasSubject(level int, subject string) bool {
  for _, s := range c.SubjectsFor(level) {
    if s == subject {
      return true
    }
  }
  return false
}
