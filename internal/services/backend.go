package services

import (
	"fmt"
	"sort"
	"strings"

	"kortex-pack/internal/catalog"
	"kortex-pack/internal/helpers"
	"kortex-pack/internal/models"
	"kortex-pack/internal/repositories"
)

// BackendService generates the backend API, manifest, configuration and schema documents
type BackendService struct {
	repo *repositories.ArtifactRepository
}

// BackendResult holds the generated backend documents
type BackendResult struct {
	API       *models.APISpec
	Manifest  *models.PackageManifest
	Server    *models.ServerConfig
	Schema    models.DatabaseSchema
	Artifacts []*models.Artifact
}

type backendDocument struct {
	name        string
	description string
	doc         interface{}
}

// NewBackendService creates a new backend service
func NewBackendService(repo *repositories.ArtifactRepository) *BackendService {
	return &BackendService{repo: repo}
}

// Generate writes backend-api.json, backend-package.json, server-config.json
// and database-schema.json
func (s *BackendService) Generate() (*BackendResult, error) {
	result := &BackendResult{
		API:      catalog.BackendAPI(),
		Manifest: catalog.BackendManifest(),
		Server:   catalog.ServerConfig(),
		Schema:   catalog.DatabaseSchema(),
	}

	for _, d := range s.documents(result) {
		artifact, err := s.repo.Save(d.name, d.doc)
		if err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", d.description, err)
		}
		result.Artifacts = append(result.Artifacts, artifact)
	}

	return result, nil
}

func (s *BackendService) documents(result *BackendResult) []backendDocument {
	return []backendDocument{
		{name: models.BackendAPIFile, description: "API documentation", doc: result.API},
		{name: models.BackendPackageFile, description: "Node.js dependencies", doc: result.Manifest},
		{name: models.ServerConfigFile, description: "Environment configuration", doc: result.Server},
		{name: models.DatabaseSchemaFile, description: "Database structure", doc: result.Schema},
	}
}

// DisplayResult prints the backend report
func (s *BackendService) DisplayResult(result *BackendResult) {
	helpers.PrintLine("🚀", "Backend configuration files created successfully!")
	helpers.PrintLine("📁", "Files generated:")
	for _, d := range s.documents(result) {
		helpers.PrintLine(" ", "- %s (%s)", d.name, d.description)
	}
	helpers.PrintSeparator()

	helpers.PrintTitle("API %s at %s", result.API.APIVersion, result.API.BaseURL)
	for _, group := range result.API.Endpoints {
		helpers.PrintInfo("%s: %d endpoints (%s)", group.Key, len(group.Value), methodSummary(group.Value))
	}
	helpers.PrintSeparator()

	helpers.PrintTitle("Database schema: %d tables", len(result.Schema))
	for _, table := range result.Schema {
		helpers.PrintInfo("%s: %d columns", table.Key, len(table.Value))
		for _, ref := range models.ForeignKeys(table.Value) {
			helpers.PrintInfo("  🔗 %s", ref)
		}
	}
	helpers.PrintSeparator()

	displayEnvironment("development", result.Server.Development)
	displayEnvironment("production", result.Server.Production)
	helpers.PrintSeparator()

	displayArtifacts(result.Artifacts)
}

func displayEnvironment(name string, env models.Environment) {
	helpers.PrintInfo("%s: %s database, port %s, CORS %s",
		name, env.Database.Client, env.Server.Port, env.Server.CorsOrigin)
}

// methodSummary renders per-method counts such as "GET×2, POST×1"
func methodSummary(group models.EndpointGroup) string {
	counts := make(map[string]int)
	for _, route := range group {
		method, _ := models.SplitRoute(route.Key)
		counts[method]++
	}

	methods := make([]string, 0, len(counts))
	for method := range counts {
		methods = append(methods, method)
	}
	sort.Strings(methods)

	parts := make([]string, 0, len(methods))
	for _, method := range methods {
		parts = append(parts, fmt.Sprintf("%s×%d", method, counts[method]))
	}
	return strings.Join(parts, ", ")
}
