package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"kortex-pack/internal/config"
	"kortex-pack/internal/helpers"
	"kortex-pack/internal/models"
	"kortex-pack/internal/repositories"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zip"
)

// BundleService packs generated artifacts into the delivery archive
type BundleService struct {
	config *config.BundleConfig
	repo   *repositories.ArtifactRepository
}

// BundleResult describes a written archive
type BundleResult struct {
	Path     string
	Size     int64
	Included []string
	Skipped  []string
	Sections map[string][]string
}

// NewBundleService creates a new bundle service
func NewBundleService(bundleConfig *config.BundleConfig, repo *repositories.ArtifactRepository) *BundleService {
	return &BundleService{config: bundleConfig, repo: repo}
}

// Create writes the archive with every named artifact present in the output
// directory. Missing artifacts are skipped with a warning. An existing
// archive is replaced. Names must be local to the output directory and must
// not name the archive itself.
func (s *BundleService) Create(names []string) (*BundleResult, error) {
	if err := s.validateNames(names); err != nil {
		return nil, err
	}

	if err := helpers.EnsureDir(s.repo.Dir()); err != nil {
		return nil, err
	}

	result := &BundleResult{
		Path:     s.repo.Path(s.config.Name),
		Sections: make(map[string][]string),
	}

	out, err := os.Create(result.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for i, name := range names {
		helpers.PrintProgress(i+1, len(names), fmt.Sprintf("Adding %s", name))

		if !s.repo.Exists(name) {
			helpers.PrintWarning("Skipping %s: not generated yet", name)
			result.Skipped = append(result.Skipped, name)
			continue
		}

		var doc models.Tree
		if err := s.repo.Load(name, &doc); err != nil {
			zw.Close()
			return nil, fmt.Errorf("refusing to pack %s: %w", name, err)
		}

		if err := addFile(zw, s.repo.Path(name), name); err != nil {
			zw.Close()
			return nil, fmt.Errorf("failed to add %s: %w", name, err)
		}
		result.Included = append(result.Included, name)
		result.Sections[name] = doc.Keys()
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	info, err := out.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}
	result.Size = info.Size()

	return result, nil
}

func (s *BundleService) validateNames(names []string) error {
	for _, name := range names {
		if !filepath.IsLocal(name) {
			return fmt.Errorf("invalid bundle entry %q: must be a path inside the output directory", name)
		}
		if filepath.Clean(name) == filepath.Clean(s.config.Name) {
			return fmt.Errorf("invalid bundle entry %q: the archive cannot contain itself", name)
		}
	}
	return nil
}

func addFile(zw *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.ToSlash(name)
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = io.Copy(w, f)
	return err
}

// DisplayResult prints the bundle report
func (s *BundleService) DisplayResult(result *BundleResult) {
	helpers.PrintSuccess("Bundle written to %s (%s)", result.Path, humanize.Bytes(uint64(result.Size)))
	helpers.PrintInfo("%d files included, %d skipped", len(result.Included), len(result.Skipped))
	for _, name := range result.Included {
		helpers.PrintBullet("%s: %s", name, strings.Join(result.Sections[name], ", "))
	}
}

// DefaultBundleFiles lists the artifacts packed by default
func DefaultBundleFiles() []string {
	files := make([]string, len(models.GeneratedFiles))
	copy(files, models.GeneratedFiles)
	return files
}
