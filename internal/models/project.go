package models

import "time"

// DateLayout is the date format used across all generated documents
const DateLayout = "2006-01-02"

// Timeline represents the development plan for the project
type Timeline struct {
	Phases              []Phase     `json:"phases"`
	Milestones          []Milestone `json:"milestones"`
	TotalDurationWeeks  int         `json:"total_duration_weeks"`
	EstimatedCompletion string      `json:"estimated_completion"`
}

// Phase represents a development phase
type Phase struct {
	Name          string   `json:"name"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	DurationWeeks float64  `json:"duration_weeks"`
	Risk          string   `json:"risk"`
	Tasks         []string `json:"tasks"`
	Deliverables  []string `json:"deliverables"`
}

// Milestone represents a dated release checkpoint
type Milestone struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// PhaseWeeks sums the durations of all phases
func (t *Timeline) PhaseWeeks() float64 {
	total := 0.0
	for _, phase := range t.Phases {
		total += phase.DurationWeeks
	}
	return total
}

// CompletionDate parses EstimatedCompletion
func (t *Timeline) CompletionDate() (time.Time, error) {
	return time.Parse(DateLayout, t.EstimatedCompletion)
}

// PackageManifest represents a Node.js package.json document
type PackageManifest struct {
	Name            string             `json:"name"`
	Version         string             `json:"version"`
	Description     string             `json:"description"`
	Main            string             `json:"main"`
	Homepage        string             `json:"homepage,omitempty"`
	Scripts         OrderedMap[string] `json:"scripts"`
	Dependencies    OrderedMap[string] `json:"dependencies"`
	DevDependencies OrderedMap[string] `json:"devDependencies"`
	Author          string             `json:"author,omitempty"`
	License         string             `json:"license,omitempty"`
	Repository      *PackageRepository `json:"repository,omitempty"`
}

// PackageRepository represents the repository field of a package.json
type PackageRepository struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}
