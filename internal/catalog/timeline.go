// Package catalog holds the literal documents describing the Kortex Writing Hub.
// Every builder returns a fresh value so callers may modify the result freely.
package catalog

import "kortex-pack/internal/models"

// ProjectName is the display name of the project
const ProjectName = "Kortex Writing Hub"

// Timeline returns the 28-week development plan
func Timeline() *models.Timeline {
	return &models.Timeline{
		Phases: []models.Phase{
			{
				Name:          "Foundation & Core",
				StartDate:     "2025-06-26",
				EndDate:       "2025-07-31",
				DurationWeeks: 5,
				Risk:          "Medium",
				Tasks: []string{
					"Project setup and configuration",
					"Basic React + TypeScript + Vite structure",
					"Electron integration with Forge",
					"Core layout and navigation",
					"State management with Zustand",
					"Basic styling system with Tailwind",
				},
				Deliverables: []string{"Working app skeleton", "Development environment", "CI/CD pipeline"},
			},
			{
				Name:          "Writing Interface",
				StartDate:     "2025-08-03",
				EndDate:       "2025-08-27",
				DurationWeeks: 3.5,
				Risk:          "Medium",
				Tasks: []string{
					"Monaco Editor integration",
					"Markdown support and preview",
					"Slash commands for templates",
					"Multi-pane editing",
					"Document management system",
					"Auto-save and version control",
				},
				Deliverables: []string{"Functional editor", "Document system", "Template library"},
			},
			{
				Name:          "Knowledge System",
				StartDate:     "2025-08-30",
				EndDate:       "2025-10-01",
				DurationWeeks: 4.5,
				Risk:          "Medium-High",
				Tasks: []string{
					"File tree and folder structure",
					"Drag-and-drop organization",
					"Tagging system",
					"Search functionality",
					"Asset management",
					"Import/export capabilities",
				},
				Deliverables: []string{"Knowledge vault", "Asset library", "Search system"},
			},
			{
				Name:          "AI Layer",
				StartDate:     "2025-10-04",
				EndDate:       "2025-11-11",
				DurationWeeks: 5.5,
				Risk:          "High",
				Tasks: []string{
					"Multi-model AI integration",
					"Chat interface and context management",
					"Prompt library and templates",
					"Content generation workflows",
					"Knowledge base integration",
					"Cost management and rate limiting",
				},
				Deliverables: []string{"AI assistant", "Prompt system", "Context engine"},
			},
			{
				Name:          "Advanced Features",
				StartDate:     "2025-11-14",
				EndDate:       "2025-12-09",
				DurationWeeks: 3.5,
				Risk:          "Medium",
				Tasks: []string{
					"Focus timer with categories",
					"Constellation knowledge map",
					"Project management views",
					"Real-time collaboration",
					"Export and sharing",
					"Advanced settings",
				},
				Deliverables: []string{"Focus system", "Visualization tools", "Collaboration features"},
			},
			{
				Name:          "Polish & Performance",
				StartDate:     "2025-12-12",
				EndDate:       "2025-12-29",
				DurationWeeks: 2.5,
				Risk:          "Low",
				Tasks: []string{
					"Performance optimization",
					"Accessibility improvements",
					"Visual polish and animations",
					"Mobile responsiveness",
					"Bug fixes and testing",
					"Documentation completion",
				},
				Deliverables: []string{"Optimized app", "Complete documentation", "Test suite"},
			},
			{
				Name:          "Packaging & Distribution",
				StartDate:     "2026-01-01",
				EndDate:       "2026-01-19",
				DurationWeeks: 2.5,
				Risk:          "Medium",
				Tasks: []string{
					"Electron app packaging",
					"Cross-platform builds",
					"Auto-updater setup",
					"Distribution preparation",
					"Final testing",
					"Release preparation",
				},
				Deliverables: []string{"Packaged apps", "Distribution setup", "Release candidates"},
			},
		},
		Milestones: []models.Milestone{
			{Name: "MVP Demo", Date: "2025-08-15", Description: "Basic writing interface working"},
			{Name: "Alpha Release", Date: "2025-10-15", Description: "Core features complete"},
			{Name: "Beta Release", Date: "2025-12-01", Description: "All features implemented"},
			{Name: "Production Release", Date: "2026-01-20", Description: "Stable, packaged application"},
		},
		TotalDurationWeeks:  28,
		EstimatedCompletion: "2026-01-19",
	}
}
