package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spigell/cv-summary/internal/latex"
	"github.com/spigell/cv-summary/internal/utils"

	"go.uber.org/zap"
)

const (
	// DefaultSection is the CV section whose body gets replaced.
	DefaultSection = "PROFESSIONAL SUMMARY"
	// DefaultMaxWords caps the generated summary, closing phrase included.
	DefaultMaxWords = 90
	// DefaultClosingPhrase ends every generated summary.
	DefaultClosingPhrase = "Ready to deliver results from day one."

	defaultMaxLogLength = 200
)

// ErrEmptyJobPosting is returned when the job posting contains no text.
var ErrEmptyJobPosting = errors.New("job posting is empty")

// contentGenerator is the narrow view of the model client the pipeline needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Config tunes the post-processing applied to the generated summary.
type Config struct {
	// Section is the name of the CV section to replace.
	Section string
	// MaxWords is the word cap for the final summary, phrase included.
	MaxWords int
	// ClosingPhrase is appended (or preserved) at the end of the summary.
	ClosingPhrase string
	// MaxLogLength bounds prompt and response previews in debug logs.
	MaxLogLength int
}

// Inputs carries the per-run source material.
type Inputs struct {
	JobPosting string
	CV         string
	Level      EmbellishmentLevel
}

// Result is the outcome of a full pipeline run.
type Result struct {
	// Requirements is the opaque requirement extraction returned by the model.
	Requirements string
	// Summary is the final sanitized, capped summary spliced into the CV.
	Summary string
	// Words is the word count of Summary.
	Words int
	// UpdatedCV is the full CV document with the section body replaced.
	UpdatedCV string
}

// Pipeline runs the two model calls sequentially and applies the
// post-processing chain: quote stripping, LaTeX sanitizing, word-limit and
// closing-phrase enforcement, section splicing.
type Pipeline struct {
	generator contentGenerator
	logger    *zap.Logger
	config    *Config
}

// New creates a pipeline with defaults filled in for any zero config field.
func New(generator contentGenerator, config *Config, logger *zap.Logger) *Pipeline {
	if config == nil {
		config = &Config{}
	}
	if config.Section == "" {
		config.Section = DefaultSection
	}
	if config.MaxWords <= 0 {
		config.MaxWords = DefaultMaxWords
	}
	if config.MaxLogLength <= 0 {
		config.MaxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pipeline{
		generator: generator,
		logger:    logger,
		config:    config,
	}
}

// Run executes the whole pipeline for the provided inputs. Any failure,
// including an empty model response, aborts the run with an error; there is
// no partial-result mode.
func (p *Pipeline) Run(ctx context.Context, in Inputs) (*Result, error) {
	posting := strings.TrimSpace(in.JobPosting)
	if posting == "" {
		return nil, ErrEmptyJobPosting
	}

	if err := in.Level.Validate(); err != nil {
		return nil, err
	}

	requirements, err := p.generate(ctx, "extract job requirements", ExtractionPrompt(posting))
	if err != nil {
		return nil, err
	}

	p.logger.Info("extracted job requirements", zap.Int("length", len(requirements)))

	draft, err := p.generate(ctx, "generate professional summary", SummaryPrompt(in.CV, requirements, in.Level, p.config.MaxWords))
	if err != nil {
		return nil, err
	}

	// Models occasionally wrap the summary in quotes despite instructions.
	draft = strings.Trim(draft, `"'`)

	final := EnforceClosing(latex.Sanitize(draft), p.config.ClosingPhrase, p.config.MaxWords)

	p.logger.Info("generated professional summary",
		zap.Int("words", WordCount(final)),
		zap.Int("max_words", p.config.MaxWords),
	)

	updated, err := latex.ReplaceSection(in.CV, p.config.Section, final)
	if err != nil {
		if errors.Is(err, latex.ErrSectionNotFound) {
			return nil, fmt.Errorf("%w (sections present: %s)", err, strings.Join(latex.SectionNames(in.CV), ", "))
		}
		return nil, err
	}

	return &Result{
		Requirements: requirements,
		Summary:      final,
		Words:        WordCount(final),
		UpdatedCV:    updated,
	}, nil
}

func (p *Pipeline) generate(ctx context.Context, step, prompt string) (string, error) {
	p.logger.Debug("model request",
		zap.String("step", step),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, p.config.MaxLogLength)),
	)

	raw, err := p.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", step, err)
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return "", fmt.Errorf("%s: model returned empty response", step)
	}

	p.logger.Debug("model response",
		zap.String("step", step),
		zap.Int("response_length", utf8.RuneCountInString(text)),
		zap.String("response_preview", utils.TruncateForLog(text, p.config.MaxLogLength)),
	)

	return text, nil
}
