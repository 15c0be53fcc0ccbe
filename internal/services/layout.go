package services

import (
	"fmt"
	"strings"

	"kortex-pack/internal/catalog"
	"kortex-pack/internal/helpers"
	"kortex-pack/internal/models"
	"kortex-pack/internal/repositories"
)

// LayoutService renders the planned source layout of the project
type LayoutService struct {
	repo *repositories.ArtifactRepository
}

// NewLayoutService creates a new layout service
func NewLayoutService(repo *repositories.ArtifactRepository) *LayoutService {
	return &LayoutService{repo: repo}
}

// Structure returns the planned package structure
func (s *LayoutService) Structure() models.Tree {
	return catalog.PackageStructure()
}

// BundleContents returns the described contents of the delivery archive
func (s *LayoutService) BundleContents() models.Tree {
	return catalog.BundleContents()
}

// Save writes package-structure.json
func (s *LayoutService) Save(structure models.Tree) (*models.Artifact, error) {
	artifact, err := s.repo.Save(models.PackageStructureFile, structure)
	if err != nil {
		return nil, fmt.Errorf("failed to save package structure: %w", err)
	}
	return artifact, nil
}

// DisplayStructure prints structure as an indented tree followed by totals
func (s *LayoutService) DisplayStructure(structure models.Tree) {
	helpers.PrintTitle("Development package layout")
	helpers.PrintSeparator()

	files := displayTree(structure, 0)

	helpers.PrintSeparator()
	helpers.PrintInfo("%d leaf entries, %d files", models.CountLeaves(structure), files)
}

// displayTree prints tree at the given depth and returns the number of files shown
func displayTree(tree models.Tree, depth int) int {
	indent := strings.Repeat("  ", depth)
	files := 0

	for _, entry := range tree {
		switch value := entry.Value.(type) {
		case models.Tree:
			helpers.PrintLine(indent+"📁", "%s/", strings.TrimSuffix(entry.Key, "/"))
			files += displayTree(value, depth+1)
		case []string:
			helpers.PrintLine(indent+"📁", "%s/", strings.TrimSuffix(entry.Key, "/"))
			for _, name := range value {
				helpers.PrintLine(indent+"  📄", "%s", name)
			}
			files += len(value)
		default:
			helpers.PrintLine(indent+"📄", "%s: %v", entry.Key, value)
			files++
		}
	}

	return files
}
