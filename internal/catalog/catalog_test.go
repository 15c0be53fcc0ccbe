package catalog

import (
	"testing"

	"kortex-pack/internal/models"

	"github.com/stretchr/testify/require"
)

func TestTimeline(t *testing.T) {
	timeline := Timeline()

	require.Len(t, timeline.Phases, 7)
	require.Len(t, timeline.Milestones, 4)
	require.Equal(t, 28, timeline.TotalDurationWeeks)
	require.Equal(t, "2026-01-19", timeline.EstimatedCompletion)
	require.Equal(t, 27.0, timeline.PhaseWeeks())

	for _, phase := range timeline.Phases {
		require.NotEmpty(t, phase.Tasks, phase.Name)
		require.NotEmpty(t, phase.Deliverables, phase.Name)
	}

	require.Equal(t, timeline.EstimatedCompletion, timeline.Phases[len(timeline.Phases)-1].EndDate)
}

func TestTimeline_ReturnsFreshValue(t *testing.T) {
	first := Timeline()
	first.Phases[0].Name = "changed"

	require.Equal(t, "Foundation & Core", Timeline().Phases[0].Name)
}

func TestManifests(t *testing.T) {
	frontend := FrontendManifest()
	require.Equal(t, "kortex-writing-hub", frontend.Name)
	require.Equal(t, "1.0.0", frontend.Version)
	require.Len(t, frontend.Scripts, 13)
	require.Len(t, frontend.Dependencies, 13)
	require.Len(t, frontend.DevDependencies, 24)
	require.NotNil(t, frontend.Repository)

	dev, ok := frontend.Scripts.Get("dev")
	require.True(t, ok)
	require.Equal(t, `concurrently "npm run dev:vite" "npm run dev:electron"`, dev)

	backend := BackendManifest()
	require.Equal(t, "kortex-writing-hub-backend", backend.Name)
	require.Equal(t, "src/server.js", backend.Main)
	require.Len(t, backend.Dependencies, 16)
	require.Nil(t, backend.Repository)
	require.Empty(t, backend.Homepage)
}

func TestBackendAPI(t *testing.T) {
	api := BackendAPI()

	require.Equal(t, []string{"authentication", "documents", "ai", "projects", "assets", "collaboration"}, api.Endpoints.Keys())

	total := 0
	for _, group := range api.Endpoints {
		total += len(group.Value)
	}
	require.Equal(t, 19, total)

	assets, ok := api.Endpoints.Get("assets")
	require.True(t, ok)
	upload, ok := assets.Get("POST /assets/upload")
	require.True(t, ok)
	require.Equal(t, "multipart/form-data", upload.Body.ContentType)

	collaboration, ok := api.Endpoints.Get("collaboration")
	require.True(t, ok)
	socket, ok := collaboration.Get("WebSocket /collaboration/rooms/:id")
	require.True(t, ok)
	require.Len(t, socket.Events, 4)
	require.Nil(t, socket.Response)
}

func TestServerConfig(t *testing.T) {
	cfg := ServerConfig()

	require.Equal(t, "sqlite3", cfg.Development.Database.Client)
	require.True(t, cfg.Development.Database.UseNullAsDefault)
	require.Equal(t, 3001, cfg.Development.Server.Port.Number)

	require.Equal(t, "postgresql", cfg.Production.Database.Client)
	require.Equal(t, &models.PoolConfig{Min: 2, Max: 10}, cfg.Production.Database.Pool)
	require.Equal(t, "process.env.PORT || 3001", cfg.Production.Server.Port.Expr)
	require.Equal(t, cfg.Development.AI, cfg.Production.AI)
}

func TestDatabaseSchema(t *testing.T) {
	schema := DatabaseSchema()

	require.Equal(t, []string{"users", "documents", "projects", "assets", "ai_conversations", "collaboration_rooms"}, schema.Keys())

	users, ok := schema.Get("users")
	require.True(t, ok)
	email, ok := users.Get("email")
	require.True(t, ok)
	require.Equal(t, "string unique", email)

	rooms, ok := schema.Get("collaboration_rooms")
	require.True(t, ok)
	require.Equal(t, []string{"document_id -> documents.id", "owner_id -> users.id"}, models.ForeignKeys(rooms))
}

func TestPackageStructure(t *testing.T) {
	structure := PackageStructure()

	require.Equal(t, []string{"writing-hub-complete"}, structure.Keys())
	require.Equal(t, 28, models.CountLeaves(structure))
}

func TestBundleContents(t *testing.T) {
	contents := BundleContents()

	archive, ok := contents.Get(BundleName)
	require.True(t, ok)
	tree, ok := archive.(models.Tree)
	require.True(t, ok)
	require.Equal(t, 37, models.CountLeaves(tree))

	for _, name := range []string{models.TimelineFile, models.PackageFile, models.BackendAPIFile, models.DatabaseSchemaFile} {
		_, ok := tree.Get(name)
		require.True(t, ok, name)
	}
}

func TestDeliveryLiterals(t *testing.T) {
	require.Len(t, LiveApplication().Features, 10)
	require.Equal(t, 6, DocumentationPackage().Files)
	require.Zero(t, SourceCode().TotalFiles)
	require.Len(t, TechnicalHighlights(), 10)
	require.Len(t, IncludedItems(), 10)
	require.Equal(t, []string{"for_writers", "for_teams", "for_organizations", "market_differentiation"}, BusinessValue().Keys())
	require.Equal(t, []string{"SQLite", "PostgreSQL", "MySQL"}, DeploymentTargets().DatabaseOptions)
}
