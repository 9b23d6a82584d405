package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursekit/coursekit/internal/progress"
	"github.com/coursekit/coursekit/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static course site",
	Long:  `Renders every lesson in the catalog to HTML and writes a self-contained static site with navigation, search index, and assets.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	renderer, err := site.New(site.Options{
		ContentDir:     cfg.ContentDir,
		OutputDir:      outputDir,
		HighlightStyle: cfg.HighlightStyle,
		AssetInclude:   cfg.AssetInclude,
		AssetExclude:   cfg.AssetExclude,
	})
	if err != nil {
		return err
	}

	pages, err := renderer.Generate(cat, progress.NewReporter())
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Site built: %s (%d pages)\n", outputDir, pages)
	return nil
}
