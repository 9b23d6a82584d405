package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// the given path, and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to coursekit! Let's set up your course site.")
	fmt.Println()

	defaults := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Course title",
		Default: "My Course",
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("course title: %w", err)
	}

	contentPrompt := promptui.Prompt{
		Label:   "Content directory",
		Default: defaults.ContentDir,
	}
	contentDir, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	portPrompt := promptui.Prompt{
		Label:   "Dev server port",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	stylePrompt := promptui.Select{
		Label: "Code highlight style",
		Items: HighlightStyles,
	}
	_, style, err := stylePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("highlight style: %w", err)
	}

	reloadPrompt := promptui.Select{
		Label: "Reload browsers automatically when content changes",
		Items: []string{"yes", "no"},
	}
	reloadIdx, _, err := reloadPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("live reload: %w", err)
	}

	cfg := &Config{
		Title:          title,
		ContentDir:     contentDir,
		OutputDir:      outputDir,
		Port:           port,
		HighlightStyle: style,
		LiveReload:     reloadIdx == 0,
		AssetInclude:   defaults.AssetInclude,
		AssetExclude:   defaults.AssetExclude,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
