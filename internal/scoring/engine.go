package scoring

import (
	"context"
	"math"

	"go.uber.org/zap"
)

type ModelChoice string

const (
	// ModelFast skips the deep-comparison bonus.
	ModelFast ModelChoice = "fast"
	// ModelDeep grants a flat 10-point bonus when the unscaled semantic
	// sub-score exceeds 70.
	ModelDeep ModelChoice = "deep"
)

type Verdict string

const (
	VerdictHigh   Verdict = "High"
	VerdictMedium Verdict = "Medium"
	VerdictLow    Verdict = "Low"
)

// Verdict thresholds on the rounded final score. Fixed, not configurable.
const (
	highThreshold   = 75
	mediumThreshold = 50
)

// deepBonusSemanticGate is compared against the raw semantic sub-score,
// before strictness scaling.
const deepBonusSemanticGate = 70

// feedbackTextCap bounds the resume and job description excerpts sent to
// the advisory generator.
const feedbackTextCap = 2000

// FeedbackUnavailable is returned in place of advisory feedback whenever
// the generator fails or produces no content.
const FeedbackUnavailable = "No feedback generated due to quota/error."

// FeedbackGenerator produces free-form improvement suggestions for a resume
// against a job description, or fails.
type FeedbackGenerator interface {
	GenerateFeedback(ctx context.Context, resumeText, jdText string) (string, error)
}

type Input struct {
	ResumeText string
	JDText     string
	Keywords   []string
	Strictness int
	Model      ModelChoice
}

type Result struct {
	Score    float64
	Verdict  Verdict
	Feedback string
}

// Engine composes the three matchers into one evaluation. Keyword and
// similarity scoring are pure; the semantic matcher and feedback generator
// talk to external providers and degrade gracefully, so a well-formed call
// always yields a usable Result.
type Engine struct {
	semantic  *SemanticMatcher
	generator FeedbackGenerator
	logger    *zap.Logger
}

func NewEngine(embedder Embedder, generator FeedbackGenerator, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		semantic:  NewSemanticMatcher(embedder, logger),
		generator: generator,
		logger:    logger,
	}
}

func (e *Engine) Evaluate(ctx context.Context, in Input) Result {
	hard := KeywordScore(in.ResumeText, in.Keywords)
	fuzz := SimilarityScore(in.ResumeText, in.JDText)
	semantic := e.semantic.Score(ctx, in.ResumeText, in.JDText)

	score := combine(hard, fuzz, semantic, in.Strictness, in.Model)
	verdict := verdictFor(score)

	e.logger.Debug("resume scored",
		zap.Float64("keyword", hard),
		zap.Float64("similarity", fuzz),
		zap.Float64("semantic", semantic),
		zap.Float64("score", score),
		zap.String("verdict", string(verdict)),
	)

	return Result{
		Score:    score,
		Verdict:  verdict,
		Feedback: e.feedback(ctx, in.ResumeText, in.JDText),
	}
}

// combine implements the aggregation rules: mean of the three sub-scores,
// linear strictness attenuation, then the deep-model bonus gated on the
// unscaled semantic value and clamped at 100. The keyword and similarity
// sub-scores are capped at 50 while semantic ranges to 100, yet all three
// share the same divisor; that asymmetry is inherited on purpose.
func combine(hard, fuzz, semantic float64, strictness int, model ModelChoice) float64 {
	base := (hard + fuzz + semantic) / 3

	score := base * float64(strictness) / 100

	if model == ModelDeep && semantic > deepBonusSemanticGate {
		score = math.Min(100, score+10)
	}

	return math.Round(score*100) / 100
}

func verdictFor(score float64) Verdict {
	switch {
	case score >= highThreshold:
		return VerdictHigh
	case score >= mediumThreshold:
		return VerdictMedium
	default:
		return VerdictLow
	}
}

func (e *Engine) feedback(ctx context.Context, resumeText, jdText string) string {
	if e.generator == nil {
		return FeedbackUnavailable
	}

	text, err := e.generator.GenerateFeedback(ctx, truncate(resumeText, feedbackTextCap), truncate(jdText, feedbackTextCap))
	if err != nil {
		e.logger.Warn("feedback generation failed", zap.Error(err))
		return FeedbackUnavailable
	}
	if text == "" {
		return FeedbackUnavailable
	}

	return text
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
