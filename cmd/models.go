package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spigell/cv-summary/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List Gemini models available to the configured API key",
	Run: func(_ *cobra.Command, _ []string) {
		listModels()
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func listModels() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	generator, err := newGenerator(ctx, config, logger)
	if err != nil {
		logger.Fatal(
			"building the gemini generator",
			zap.Error(err),
			zap.String("hint", "set GOOGLE_GEMINI_API_KEY or GEMINI_API_KEY (a .env file works too), or the 'gemini.api-key-file' key in the configuration file"),
		)
	}

	models, err := generator.ListModels(ctx)
	if err != nil {
		logger.Fatal("listing models", zap.Error(err))
	}

	fmt.Printf("Found %d models:\n\n", len(models))

	var generating []string
	for _, model := range models {
		actions := strings.Join(model.Actions, ", ")
		if actions == "" {
			actions = "(no actions listed)"
		}

		fmt.Printf("- %s\n", model.Name)
		fmt.Printf("    actions: %s\n", actions)
		if model.InputTokenLimit > 0 || model.OutputTokenLimit > 0 {
			fmt.Printf("    input_tokens: %d  output_tokens: %d\n", model.InputTokenLimit, model.OutputTokenLimit)
		}

		if model.SupportsGenerate() {
			generating = append(generating, model.Name)
		}
	}

	fmt.Println()

	if len(generating) == 0 {
		fmt.Println("No models advertising generateContent support were returned.")
		return
	}

	color.New(color.Bold).Println("Models supporting generateContent:")
	for _, name := range generating {
		color.Green("  %s", name)
	}
}
