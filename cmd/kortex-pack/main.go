package main

import (
	"fmt"
	"os"

	"kortex-pack/internal/config"
	"kortex-pack/internal/helpers"
	"kortex-pack/internal/models"
	"kortex-pack/internal/repositories"
	"kortex-pack/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	outputDir  string
	verbose    bool
	noColor    bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "kortex-pack",
		Short: "Kortex Pack - development package generator for the Kortex Writing Hub",
		Long: `Kortex Pack writes the planning and configuration documents of the
Kortex Writing Hub (timeline, package manifests, backend API, server
configuration, database schema and delivery summary) as JSON files and
prints a status report for each step.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "kortex.yaml", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "", "Directory the documents are written to")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every file operation")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "timeline",
		Short: "Write timeline.json and package.json",
		Args:  cobra.NoArgs,
		RunE:  runTimeline,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "backend",
		Short: "Write the backend API, package, server config and database schema documents",
		Args:  cobra.NoArgs,
		RunE:  runBackend,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "delivery",
		Short: "Write delivery-summary.json and print the delivery report",
		Args:  cobra.NoArgs,
		RunE:  runDelivery,
	})

	var layoutCmd = &cobra.Command{
		Use:   "layout",
		Short: "Print the planned development package layout",
		Args:  cobra.NoArgs,
		RunE:  runLayout,
	}
	layoutCmd.Flags().Bool("write", false, "Also write package-structure.json")
	layoutCmd.Flags().Bool("bundle", false, "Show the delivery archive contents instead")
	rootCmd.AddCommand(layoutCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "bundle [files...]",
		Short: "Pack generated documents into the delivery zip archive",
		Long:  "Pack the named documents (all generated documents by default) into the delivery archive",
		RunE:  runBundle,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run timeline, backend and delivery in order",
		Args:  cobra.NoArgs,
		RunE:  runAll,
	})

	if err := rootCmd.Execute(); err != nil {
		helpers.PrintError("Error: %v", err)
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and builds the artifact repository
func setup(cmd *cobra.Command) (*config.Config, *repositories.ArtifactRepository, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("output-dir") {
		cfg.Output.Dir = outputDir
	}
	if verbose {
		cfg.Report.Verbose = true
	}
	if noColor {
		cfg.Report.Color = false
	}
	helpers.SetColorEnabled(cfg.Report.Color)

	logger, err := helpers.NewLogger(cfg.Report.Verbose)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.Debug("configuration loaded",
		zap.String("config", configFile),
		zap.String("output_dir", cfg.Output.Dir),
		zap.Int("indent", cfg.Output.Indent),
	)

	return cfg, repositories.NewArtifactRepository(&cfg.Output, logger), logger, nil
}

func runTimeline(cmd *cobra.Command, args []string) error {
	_, repo, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	return generateTimeline(repo)
}

func runBackend(cmd *cobra.Command, args []string) error {
	_, repo, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	return generateBackend(repo)
}

func runDelivery(cmd *cobra.Command, args []string) error {
	_, repo, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	return generateDelivery(repo)
}

func runAll(cmd *cobra.Command, args []string) error {
	_, repo, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	steps := []struct {
		name string
		run  func(*repositories.ArtifactRepository) error
	}{
		{"Timeline and package manifest", generateTimeline},
		{"Backend configuration", generateBackend},
		{"Delivery summary", generateDelivery},
	}

	for i, step := range steps {
		helpers.PrintProgress(i+1, len(steps), step.name)
		if err := step.run(repo); err != nil {
			return err
		}
		helpers.PrintBlank()
	}

	return nil
}

func runLayout(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")
	showBundle, _ := cmd.Flags().GetBool("bundle")

	_, repo, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	layoutService := services.NewLayoutService(repo)

	structure := layoutService.Structure()
	if showBundle {
		structure = layoutService.BundleContents()
	}
	layoutService.DisplayStructure(structure)

	if !write {
		return nil
	}

	artifact, err := layoutService.Save(structure)
	if err != nil {
		return err
	}
	helpers.PrintSuccess("Saved layout to: %s", artifact.Path)
	return nil
}

func runBundle(cmd *cobra.Command, args []string) error {
	cfg, repo, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	files := args
	if len(files) == 0 {
		files = services.DefaultBundleFiles()
	}

	helpers.PrintTitle("Packing %d documents into %s", len(files), cfg.Bundle.Name)

	bundleService := services.NewBundleService(&cfg.Bundle, repo)
	result, err := bundleService.Create(files)
	if err != nil {
		return fmt.Errorf("failed to create bundle: %w", err)
	}

	bundleService.DisplayResult(result)
	return nil
}

func generateTimeline(repo *repositories.ArtifactRepository) error {
	timelineService := services.NewTimelineService(repo)
	result, err := timelineService.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate timeline: %w", err)
	}

	timelineService.DisplayResult(result)
	return nil
}

func generateBackend(repo *repositories.ArtifactRepository) error {
	backendService := services.NewBackendService(repo)
	result, err := backendService.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate backend documents: %w", err)
	}

	backendService.DisplayResult(result)
	return nil
}

func generateDelivery(repo *repositories.ArtifactRepository) error {
	deliveryService := services.NewDeliveryService(repo, nil)
	result, err := deliveryService.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate delivery summary: %w", err)
	}

	deliveryService.DisplaySummary(result.Summary)
	helpers.PrintBlank()
	helpers.PrintLine("📁", "Final file: %s created", models.DeliverySummaryFile)
	return nil
}
