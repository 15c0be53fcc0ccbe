package repositories

import (
	"fmt"

	"kortex-pack/internal/config"
	"kortex-pack/internal/helpers"
	"kortex-pack/internal/models"

	"go.uber.org/zap"
)

// ArtifactRepository reads and writes generated documents in the output directory
type ArtifactRepository struct {
	config *config.OutputConfig
	logger *zap.Logger
}

// NewArtifactRepository creates a new artifact repository
func NewArtifactRepository(outputConfig *config.OutputConfig, logger *zap.Logger) *ArtifactRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArtifactRepository{
		config: outputConfig,
		logger: logger,
	}
}

// Dir returns the output directory
func (r *ArtifactRepository) Dir() string {
	return r.config.Dir
}

// Path returns the full path of the named artifact
func (r *ArtifactRepository) Path(name string) string {
	return helpers.GetOutputPath(r.config.Dir, name)
}

// Exists reports whether the named artifact has been written
func (r *ArtifactRepository) Exists(name string) bool {
	return helpers.FileExists(r.Path(name))
}

// Save writes doc as indented JSON, overwriting any existing file
func (r *ArtifactRepository) Save(name string, doc interface{}) (*models.Artifact, error) {
	if err := helpers.EnsureDir(r.config.Dir); err != nil {
		return nil, err
	}

	path := r.Path(name)
	size, err := helpers.SaveJSON(doc, path, r.config.Indent)
	if err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", name, err)
	}

	r.logger.Debug("artifact written",
		zap.String("name", name),
		zap.String("path", path),
		zap.Int64("bytes", size),
	)

	return &models.Artifact{Name: name, Path: path, Size: size}, nil
}

// Load reads the named artifact into target
func (r *ArtifactRepository) Load(name string, target interface{}) error {
	path := r.Path(name)
	if err := helpers.LoadJSON(path, target); err != nil {
		return fmt.Errorf("failed to load %s: %w", name, err)
	}

	r.logger.Debug("artifact loaded", zap.String("name", name), zap.String("path", path))
	return nil
}
