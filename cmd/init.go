package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coursekit/coursekit/internal/catalog"
	"github.com/coursekit/coursekit/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a coursekit project interactively",
	Long: `Walks through project setup: writes a configuration file and, if the
content directory has no catalog yet, scaffolds a small starter course.`,
	RunE: runInit,
}

var initYes bool

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "accept defaults without prompting")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error

	if initYes {
		cfg = config.DefaultConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}
	} else {
		cfg, err = config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
	}
	fmt.Printf("Wrote %s\n", cfgFile)

	catalogPath := filepath.Join(cfg.ContentDir, catalog.CatalogFile)
	if _, err := os.Stat(catalogPath); err == nil {
		fmt.Printf("Keeping existing %s\n", catalogPath)
		return nil
	}

	if err := catalog.Scaffold(cfg.ContentDir); err != nil {
		return fmt.Errorf("scaffolding starter course: %w", err)
	}
	fmt.Printf("Scaffolded starter course in %s\n", cfg.ContentDir)
	fmt.Println("Run 'coursekit serve' to preview it.")
	return nil
}
