package services

import (
	"fmt"
	"strings"

	"kortex-pack/internal/catalog"
	"kortex-pack/internal/helpers"
	"kortex-pack/internal/models"
	"kortex-pack/internal/repositories"

	"github.com/dustin/go-humanize"
)

// TimelineService generates the development timeline and the client package manifest
type TimelineService struct {
	repo *repositories.ArtifactRepository
}

// TimelineResult holds the generated documents and the files they were written to
type TimelineResult struct {
	Timeline  *models.Timeline
	Manifest  *models.PackageManifest
	Artifacts []*models.Artifact
}

// NewTimelineService creates a new timeline service
func NewTimelineService(repo *repositories.ArtifactRepository) *TimelineService {
	return &TimelineService{repo: repo}
}

// Generate writes timeline.json and package.json
func (s *TimelineService) Generate() (*TimelineResult, error) {
	helpers.PrintLine("📦", "Creating comprehensive development package...")

	result := &TimelineResult{
		Timeline: catalog.Timeline(),
		Manifest: catalog.FrontendManifest(),
	}

	timelineArtifact, err := s.repo.Save(models.TimelineFile, result.Timeline)
	if err != nil {
		return nil, fmt.Errorf("failed to save timeline: %w", err)
	}
	result.Artifacts = append(result.Artifacts, timelineArtifact)

	manifestArtifact, err := s.repo.Save(models.PackageFile, result.Manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to save package manifest: %w", err)
	}
	result.Artifacts = append(result.Artifacts, manifestArtifact)

	return result, nil
}

// DisplayResult prints the timeline report
func (s *TimelineService) DisplayResult(result *TimelineResult) {
	timeline := result.Timeline

	helpers.PrintSuccess("Development package structure and timeline created successfully!")
	helpers.PrintLine("📅", "Project timeline: %d weeks", timeline.TotalDurationWeeks)
	helpers.PrintInfo("Scheduled work: %s weeks across %d phases", humanize.Ftoa(timeline.PhaseWeeks()), len(timeline.Phases))
	helpers.PrintTitle("Estimated completion: %s", timeline.EstimatedCompletion)
	helpers.PrintSeparator()

	for i, phase := range timeline.Phases {
		helpers.PrintInfo("Phase %d: %s", i+1, phase.Name)
		helpers.PrintInfo("  %s → %s | %s weeks | Risk: %s",
			phase.StartDate, phase.EndDate, humanize.Ftoa(phase.DurationWeeks), phase.Risk)
		helpers.PrintInfo("  Deliverables: %s", strings.Join(phase.Deliverables, ", "))
	}
	helpers.PrintSeparator()

	for _, milestone := range timeline.Milestones {
		helpers.PrintLine("🏁", "%s (%s): %s", milestone.Name, milestone.Date, milestone.Description)
	}
	helpers.PrintSeparator()

	displayArtifacts(result.Artifacts)
}

// displayArtifacts lists written files with their sizes
func displayArtifacts(artifacts []*models.Artifact) {
	for _, artifact := range artifacts {
		helpers.PrintLine("📄", "%s (%s)", artifact.Path, humanize.Bytes(uint64(artifact.Size)))
	}
}
