package services

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"kortex-pack/internal/config"
	"kortex-pack/internal/helpers"
	"kortex-pack/internal/models"
	"kortex-pack/internal/repositories"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = func() time.Time {
	return time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)
}

func newTestRepository(t *testing.T) *repositories.ArtifactRepository {
	t.Helper()
	return repositories.NewArtifactRepository(&config.OutputConfig{Dir: t.TempDir(), Indent: helpers.DefaultIndent}, zap.NewNop())
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := helpers.Output
	helpers.Output = &buf
	helpers.SetColorEnabled(false)
	t.Cleanup(func() { helpers.Output = previous })

	return &buf
}

func loadDocument(t *testing.T, repo *repositories.ArtifactRepository, name string) map[string]interface{} {
	t.Helper()

	var doc map[string]interface{}
	require.NoError(t, repo.Load(name, &doc))
	return doc
}

func TestTimelineService_Generate(t *testing.T) {
	buf := captureOutput(t)
	repo := newTestRepository(t)
	service := NewTimelineService(repo)

	result, err := service.Generate()
	require.NoError(t, err)
	require.Len(t, result.Artifacts, 2)

	timeline := loadDocument(t, repo, models.TimelineFile)
	require.Len(t, timeline["phases"], 7)
	require.Equal(t, float64(28), timeline["total_duration_weeks"])

	manifest := loadDocument(t, repo, models.PackageFile)
	require.Equal(t, "kortex-writing-hub", manifest["name"])

	service.DisplayResult(result)
	out := buf.String()
	require.Contains(t, out, "📦 Creating comprehensive development package...")
	require.Contains(t, out, "✅ Development package structure and timeline created successfully!")
	require.Contains(t, out, "📅 Project timeline: 28 weeks")
	require.Contains(t, out, "Scheduled work: 27 weeks across 7 phases")
	require.Contains(t, out, "🎯 Estimated completion: 2026-01-19")
	require.Contains(t, out, "2025-08-30 → 2025-10-01 | 4.5 weeks | Risk: Medium-High")
	require.Contains(t, out, "🏁 Production Release (2026-01-20): Stable, packaged application")
}

func TestTimelineService_Idempotent(t *testing.T) {
	captureOutput(t)
	repo := newTestRepository(t)
	service := NewTimelineService(repo)

	read := func() map[string][]byte {
		files := make(map[string][]byte)
		for _, name := range []string{models.TimelineFile, models.PackageFile} {
			data, err := os.ReadFile(repo.Path(name))
			require.NoError(t, err)
			files[name] = data
		}
		return files
	}

	_, err := service.Generate()
	require.NoError(t, err)
	first := read()

	_, err = service.Generate()
	require.NoError(t, err)
	require.Equal(t, first, read())
}

func TestBackendService_Generate(t *testing.T) {
	buf := captureOutput(t)
	repo := newTestRepository(t)
	service := NewBackendService(repo)

	result, err := service.Generate()
	require.NoError(t, err)
	require.Len(t, result.Artifacts, 4)

	for _, name := range []string{models.BackendAPIFile, models.BackendPackageFile, models.ServerConfigFile, models.DatabaseSchemaFile} {
		require.True(t, repo.Exists(name), name)
	}

	schema := loadDocument(t, repo, models.DatabaseSchemaFile)
	users, ok := schema["users"].(map[string]interface{})
	require.True(t, ok)
	require.Contains(t, users, "email")

	server := loadDocument(t, repo, models.ServerConfigFile)
	production := server["production"].(map[string]interface{})
	require.Equal(t, "process.env.PORT || 3001", production["server"].(map[string]interface{})["port"])

	service.DisplayResult(result)
	out := buf.String()
	require.Contains(t, out, "🚀 Backend configuration files created successfully!")
	require.Contains(t, out, "📁 Files generated:")
	require.Contains(t, out, "  - backend-api.json (API documentation)")
	require.Contains(t, out, "  - database-schema.json (Database structure)")
	require.Contains(t, out, "documents: 4 endpoints (DELETE×1, GET×1, POST×1, PUT×1)")
	require.Contains(t, out, "Database schema: 6 tables")
	require.Contains(t, out, "🔗 owner_id -> users.id")
	require.Contains(t, out, "production: postgresql database, port process.env.PORT || 3001")
}

func TestMethodSummary(t *testing.T) {
	group := models.EndpointGroup{
		{Key: "GET /a"},
		{Key: "POST /a"},
		{Key: "GET /b"},
		{Key: "WebSocket /ws"},
	}

	require.Equal(t, "GET×2, POST×1, WebSocket×1", methodSummary(group))
	require.Equal(t, "", methodSummary(nil))
}

func TestCountBundleFiles(t *testing.T) {
	count, err := CountBundleFiles()
	require.NoError(t, err)
	require.Equal(t, 37, count)
}

func TestDeliveryService_BuildSummary(t *testing.T) {
	service := NewDeliveryService(newTestRepository(t), fixedNow)

	summary, err := service.BuildSummary()
	require.NoError(t, err)

	require.Equal(t, "Kortex Writing Hub", summary.ProjectName)
	require.Equal(t, "2026-10-17", summary.DeliveryDate)
	require.Equal(t, 37, summary.Deliverables.SourceCode.TotalFiles)
	require.Equal(t, models.TimelineSummary{
		TotalDuration:       "28 weeks",
		Phases:              7,
		EstimatedCompletion: "January 19, 2026",
		CurrentStatus:       "Foundation complete, ready for Phase 3",
	}, summary.Timeline)
}

func TestDeliveryService_Generate(t *testing.T) {
	buf := captureOutput(t)
	repo := newTestRepository(t)
	service := NewDeliveryService(repo, fixedNow)

	result, err := service.Generate()
	require.NoError(t, err)
	require.Equal(t, repo.Path(models.DeliverySummaryFile), result.Artifact.Path)

	doc := loadDocument(t, repo, models.DeliverySummaryFile)
	require.Equal(t, "2026-10-17", doc["delivery_date"])
	require.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), doc["delivery_date"])

	sourceCode := doc["deliverables"].(map[string]interface{})["source_code"].(map[string]interface{})
	require.Greater(t, sourceCode["total_files"].(float64), float64(0))

	var loaded models.DeliverySummary
	require.NoError(t, repo.Load(models.DeliverySummaryFile, &loaded))
	require.Equal(t, result.Summary, &loaded)

	service.DisplaySummary(result.Summary)
	out := buf.String()
	require.Contains(t, out, "📦 KORTEX WRITING HUB - COMPLETE DELIVERY PACKAGE")
	require.Contains(t, out, "📅 Delivery Date: 2026-10-17")
	require.Contains(t, out, "💻 Source code files: 37+")
	require.Contains(t, out, "🎯 Estimated completion: January 19, 2026")
	require.Contains(t, out, "• State Management: Zustand")
	require.Contains(t, out, "• Ai Integration: Multi-model (GPT-4, Claude, Gemini)")
	require.NotContains(t, out, "Total Files")
	require.Contains(t, out, "🗄️ Database: SQLite, PostgreSQL, MySQL")
	require.Contains(t, out, "• For Writers: 50% faster content creation with AI assistance")
	require.Contains(t, out, "4. 📊 Follow the timeline.json for project planning")
	require.Contains(t, out, "The Kortex Writing Hub is now COMPLETE and ready for production.")
}

func TestDeliveryService_DefaultClock(t *testing.T) {
	service := NewDeliveryService(newTestRepository(t), nil)

	before := time.Now().Format(models.DateLayout)
	summary, err := service.BuildSummary()
	require.NoError(t, err)
	after := time.Now().Format(models.DateLayout)

	require.Contains(t, []string{before, after}, summary.DeliveryDate)
}

func TestDeliveryService_IdempotentForSameDay(t *testing.T) {
	captureOutput(t)
	repo := newTestRepository(t)
	service := NewDeliveryService(repo, fixedNow)

	_, err := service.Generate()
	require.NoError(t, err)
	first, err := os.ReadFile(repo.Path(models.DeliverySummaryFile))
	require.NoError(t, err)

	_, err = service.Generate()
	require.NoError(t, err)
	second, err := os.ReadFile(repo.Path(models.DeliverySummaryFile))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestLayoutService(t *testing.T) {
	buf := captureOutput(t)
	repo := newTestRepository(t)
	service := NewLayoutService(repo)

	structure := service.Structure()
	service.DisplayStructure(structure)

	out := buf.String()
	require.Contains(t, out, "📁 writing-hub-complete/\n")
	require.Contains(t, out, "      📁 components/\n")
	require.Contains(t, out, "📄 ConstellationMap.tsx\n")
	require.Contains(t, out, "28 leaf entries, 90 files")

	artifact, err := service.Save(structure)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(repo.Dir(), models.PackageStructureFile), artifact.Path)
}

func TestLayoutService_BundleContents(t *testing.T) {
	buf := captureOutput(t)
	service := NewLayoutService(newTestRepository(t))

	service.DisplayStructure(service.BundleContents())

	out := buf.String()
	require.Contains(t, out, "📁 kortex-writing-hub-complete.zip/\n")
	require.Contains(t, out, "  📁 frontend/\n")
	require.Contains(t, out, "📄 Dockerfile: Container definition\n")
	require.Contains(t, out, "37 leaf entries, 37 files")
}

func TestBundleService_Create(t *testing.T) {
	buf := captureOutput(t)
	repo := newTestRepository(t)

	_, err := NewTimelineService(repo).Generate()
	require.NoError(t, err)
	_, err = NewBackendService(repo).Generate()
	require.NoError(t, err)
	_, err = NewDeliveryService(repo, fixedNow).Generate()
	require.NoError(t, err)

	service := NewBundleService(&config.BundleConfig{Name: "delivery.zip"}, repo)
	result, err := service.Create(DefaultBundleFiles())
	require.NoError(t, err)
	require.Equal(t, models.GeneratedFiles, result.Included)
	require.Empty(t, result.Skipped)
	require.Greater(t, result.Size, int64(0))

	reader, err := zip.OpenReader(result.Path)
	require.NoError(t, err)
	defer reader.Close()

	require.Len(t, reader.File, len(models.GeneratedFiles))
	for i, f := range reader.File {
		require.Equal(t, models.GeneratedFiles[i], f.Name)
	}

	require.Equal(t, []string{"phases", "milestones", "total_duration_weeks", "estimated_completion"}, result.Sections[models.TimelineFile])

	service.DisplayResult(result)
	out := buf.String()
	require.Contains(t, out, "7 files included, 0 skipped")
	require.Contains(t, out, "• timeline.json: phases, milestones, total_duration_weeks, estimated_completion")
}

func TestBundleService_SkipsMissing(t *testing.T) {
	buf := captureOutput(t)
	repo := newTestRepository(t)

	_, err := NewTimelineService(repo).Generate()
	require.NoError(t, err)

	service := NewBundleService(&config.BundleConfig{Name: "delivery.zip"}, repo)
	result, err := service.Create([]string{models.TimelineFile, models.DatabaseSchemaFile})
	require.NoError(t, err)
	require.Equal(t, []string{models.TimelineFile}, result.Included)
	require.Equal(t, []string{models.DatabaseSchemaFile}, result.Skipped)
	require.Contains(t, buf.String(), "Skipping database-schema.json: not generated yet")
}

func TestBundleService_RejectsUnsafeNames(t *testing.T) {
	captureOutput(t)
	repo := newTestRepository(t)

	_, err := NewTimelineService(repo).Generate()
	require.NoError(t, err)

	bundleConfig := &config.BundleConfig{Name: "delivery.zip"}
	service := NewBundleService(bundleConfig, repo)

	tests := []struct {
		name    string
		files   []string
		wantErr string
	}{
		{
			name:    "archive itself",
			files:   []string{models.TimelineFile, bundleConfig.Name},
			wantErr: "cannot contain itself",
		},
		{
			name:    "parent traversal",
			files:   []string{models.TimelineFile, "../../../../etc/hostname"},
			wantErr: "inside the output directory",
		},
		{
			name:    "absolute path",
			files:   []string{"/etc/hostname"},
			wantErr: "inside the output directory",
		},
		{
			name:    "empty name",
			files:   []string{""},
			wantErr: "inside the output directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Create(tt.files)
			require.ErrorContains(t, err, tt.wantErr)
			require.Nil(t, result)
			require.False(t, repo.Exists(bundleConfig.Name))
		})
	}
}

func TestBundleService_RejectsInvalidDocument(t *testing.T) {
	captureOutput(t)
	repo := newTestRepository(t)
	require.NoError(t, os.WriteFile(repo.Path(models.TimelineFile), []byte("not json"), 0644))

	service := NewBundleService(&config.BundleConfig{Name: "delivery.zip"}, repo)
	_, err := service.Create([]string{models.TimelineFile})
	require.ErrorContains(t, err, "refusing to pack timeline.json")
}
