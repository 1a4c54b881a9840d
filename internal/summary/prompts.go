// Package summary composes the prompts, runs the two model calls and
// post-processes the generated professional summary.
package summary

import (
	"fmt"
	"strings"
)

// EmbellishmentLevel controls how much the generated summary may extrapolate
// beyond literal CV facts: 0 keeps strictly to the CV, 10 allows full
// creative elaboration, intermediate values interpolate with explicit
// percentage weights.
type EmbellishmentLevel int

const (
	// MinEmbellishment uses CV content only.
	MinEmbellishment EmbellishmentLevel = 0
	// MaxEmbellishment allows full creative elaboration.
	MaxEmbellishment EmbellishmentLevel = 10
	// DefaultEmbellishment balances both.
	DefaultEmbellishment EmbellishmentLevel = 5
)

// Validate reports whether the level is within the supported range.
func (l EmbellishmentLevel) Validate() error {
	if l < MinEmbellishment || l > MaxEmbellishment {
		return fmt.Errorf("embellishment level must be between %d and %d, got %d", MinEmbellishment, MaxEmbellishment, l)
	}

	return nil
}

// CVWeight returns the percentage of CV-derived content for the level.
func (l EmbellishmentLevel) CVWeight() int {
	return int(MaxEmbellishment-l) * 10
}

// CreativeWeight returns the percentage of creative enhancement for the level.
func (l EmbellishmentLevel) CreativeWeight() int {
	return int(l) * 10
}

const extractionPromptTemplate = `Analyze this job posting and extract the most important information for a professional summary:

Job Posting:
%s

Please extract and return ONLY:
1. Key technical skills and technologies mentioned
2. Important action words and verbs used
3. Core responsibilities and requirements
4. Industry-specific terms

Format your response as:
TECHNICAL SKILLS: [list key technical skills]
ACTION WORDS: [list important action words/verbs]
KEY REQUIREMENTS: [list core responsibilities/requirements]
INDUSTRY TERMS: [list industry-specific terms]

Keep each section concise and focused on the most important elements.`

// constraintBlock is appended to every summary prompt variant.
const constraintBlock = `Requirements:
- Maximum %d words
- Professional tone
- Focus on technical skills and achievements
- Use action words from the job posting
- Highlight relevant experience
- End with a strong closing statement

Return ONLY the professional summary text, no additional formatting or explanations.`

const cvOnlyPromptTemplate = `Write a professional summary based ONLY on the information provided in this CV.
Do not add any information not explicitly mentioned in the CV.

CV Content:
%s

Job Context (for reference only):
%s`

const creativePromptTemplate = `Write a compelling professional summary for this candidate.
Use the job requirements to guide the focus, but feel free to enhance and elaborate.
Make it sound professional and impressive.

Job Requirements:
%s

CV Context (for reference):
%s`

const balancedPromptTemplate = `Write a professional summary that balances accuracy with impact.
Use %d%% CV-based information and %d%% creative enhancement.

CV Content:
%s

Job Requirements:
%s

Focus on the most relevant skills and experiences that match the job requirements.`

// ExtractionPrompt builds the prompt asking the model to pull key skills,
// action words, requirements and industry terms out of the raw job posting.
// The model's answer is passed through as opaque text.
func ExtractionPrompt(jobPosting string) string {
	return fmt.Sprintf(extractionPromptTemplate, jobPosting)
}

// SummaryPrompt builds the summary-generation prompt. The template is keyed
// by the embellishment level and every variant ends with the same fixed
// constraint block.
func SummaryPrompt(cv, requirements string, level EmbellishmentLevel, maxWords int) string {
	var base string

	switch level {
	case MinEmbellishment:
		base = fmt.Sprintf(cvOnlyPromptTemplate, cv, requirements)
	case MaxEmbellishment:
		base = fmt.Sprintf(creativePromptTemplate, requirements, cv)
	default:
		base = fmt.Sprintf(balancedPromptTemplate, level.CVWeight(), level.CreativeWeight(), cv, requirements)
	}

	return strings.Join([]string{base, fmt.Sprintf(constraintBlock, maxWords)}, "\n\n")
}
