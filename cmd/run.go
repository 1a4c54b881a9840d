package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spigell/cv-summary/internal/gemini"
	"github.com/spigell/cv-summary/internal/logger"
	"github.com/spigell/cv-summary/internal/secrets"
	"github.com/spigell/cv-summary/internal/summary"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"

	defaultCVFile     = "Input_CV.tex"
	defaultOutputFile = "Output_CV.tex"
)

// apiKeyEnvVars are checked in order; both naming conventions are supported.
var apiKeyEnvVars = []string{"GOOGLE_GEMINI_API_KEY", "GEMINI_API_KEY"}

var runCmd = &cobra.Command{
	Use:   "run <job-posting-file>",
	Short: "Generate a tailored professional summary and splice it into the CV",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("embellishment", "e", int(summary.DefaultEmbellishment),
		"embellishment level (0-10): 0 sticks strictly to the CV, 10 allows full creativity")
	runCmd.Flags().String("cv", defaultCVFile, "path to the input LaTeX CV")
	runCmd.Flags().String("output", defaultOutputFile, "path for the updated LaTeX CV")
	runCmd.Flags().BoolP("yes", "y", false, "overwrite the output file without confirmation")

	viper.BindPFlag("embellishment", runCmd.Flags().Lookup("embellishment"))
	viper.BindPFlag("cv-file", runCmd.Flags().Lookup("cv"))
	viper.BindPFlag("output-file", runCmd.Flags().Lookup("output"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command, jobPostingFile string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the cv-summary",
		zap.String("version", version),
		zap.Int("embellishment", config.Embellishment),
	)

	level := summary.EmbellishmentLevel(config.Embellishment)
	if err := level.Validate(); err != nil {
		logger.Fatal("validating the embellishment level", zap.Error(err))
	}

	posting, err := readJobPosting(jobPostingFile)
	if err != nil {
		logger.Fatal("reading the job posting", zap.Error(err), zap.String("filename", jobPostingFile))
	}

	logger.Info("read the job posting", zap.String("filename", jobPostingFile))

	cvFile := config.CVFile
	if cvFile == "" {
		cvFile = defaultCVFile
	}

	cv, err := os.ReadFile(cvFile)
	if err != nil {
		logger.Fatal("reading the CV", zap.Error(err), zap.String("filename", cvFile))
	}

	logger.Info("read the CV", zap.String("filename", cvFile))

	generator, err := newGenerator(ctx, config, logger)
	if err != nil {
		logger.Fatal(
			"building the gemini generator",
			zap.Error(err),
			zap.String("hint", "set GOOGLE_GEMINI_API_KEY or GEMINI_API_KEY (a .env file works too), or the 'gemini.api-key-file' key in the configuration file"),
		)
	}

	pipeline := summary.New(generator, summaryConfig(config), logger)

	result, err := pipeline.Run(ctx, summary.Inputs{
		JobPosting: posting,
		CV:         string(cv),
		Level:      level,
	})
	if err != nil {
		logger.Fatal("running the summary pipeline", zap.Error(err))
	}

	outputFile := config.OutputFile
	if outputFile == "" {
		outputFile = defaultOutputFile
	}

	if !confirmOverwrite(cmd, outputFile, logger) {
		logger.Info("exiting", zap.String("reason", "overwrite declined"))
		return
	}

	if err := os.WriteFile(outputFile, []byte(result.UpdatedCV), 0o644); err != nil {
		logger.Fatal("saving the updated CV", zap.Error(err), zap.String("filename", outputFile))
	}

	logger.Info("saved the updated CV", zap.String("filename", outputFile))

	printReport(result, outputFile)
}

func readJobPosting(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}

	posting := strings.TrimSpace(string(data))
	if posting == "" {
		return "", errors.New("job posting file is empty")
	}

	return posting, nil
}

func newGenerator(ctx context.Context, config *Config, logger *zap.Logger) (*gemini.Generator, error) {
	var keyFile, keyValue, model string
	if config.Gemini != nil {
		keyFile = config.Gemini.APIKeyFile
		keyValue = config.Gemini.APIKey
		model = config.Gemini.Model
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: keyValue,
		File:  keyFile,
		Env:   apiKeyEnvVars,
	})
	if err != nil {
		return nil, err
	}

	return gemini.NewGenerator(ctx, apiKey, model, logger)
}

func summaryConfig(config *Config) *summary.Config {
	cfg := &summary.Config{
		ClosingPhrase: summary.DefaultClosingPhrase,
	}

	if config.Summary != nil {
		cfg.Section = config.Summary.Section
		cfg.MaxWords = config.Summary.MaxWords
		if config.Summary.ClosingPhrase != "" {
			cfg.ClosingPhrase = config.Summary.ClosingPhrase
		}
	}

	if config.Gemini != nil {
		cfg.MaxLogLength = config.Gemini.MaxLogLength
	}

	return cfg
}

func confirmOverwrite(cmd *cobra.Command, filename string, logger *zap.Logger) bool {
	if cmd.Flag("yes").Value.String() == "true" {
		return true
	}

	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return true
	}

	prompt := promptui.Select{
		Label: fmt.Sprintf("%s already exists. Overwrite?", filename),
		Items: []string{PromptYes, PromptNo},
	}

	_, answer, err := prompt.Run()
	if err != nil {
		logger.Fatal("reading the overwrite confirmation", zap.Error(err))
	}

	return answer == PromptYes
}

func printReport(result *summary.Result, outputFile string) {
	color.New(color.Bold).Printf("Professional summary generation complete\n")
	fmt.Printf("output file: %s\n", outputFile)
	fmt.Printf("summary (%d words):\n", result.Words)
	color.Cyan("%s\n", result.Summary)
}
