// Package pipeline orchestrates the end-to-end conversion: plain-text
// extraction, braille encoding, embosser transcoding with compliance
// validation, and content analysis. The transcode/validate and analyze
// branches share only the read-only encoder output, so they run
// concurrently.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/wudi/braillekit/analyzer"
	"github.com/wudi/braillekit/braille"
	"github.com/wudi/braillekit/compliance"
	"github.com/wudi/braillekit/embosser"
	"github.com/wudi/braillekit/encoder"
	"github.com/wudi/braillekit/observability"
	"github.com/wudi/braillekit/plaintext"
)

// Pipeline wires the four conversion stages together. A Pipeline is
// immutable after construction and safe for concurrent use: every stage is
// a pure function of its arguments.
type Pipeline struct {
	cfg    braille.Config
	enc    encoder.Encoder
	trans  embosser.Transcoder
	val    compliance.Validator
	an     analyzer.Analyzer
	logger observability.Logger
	tracer observability.Tracer
	format plaintext.Format
	stats  bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger directs stage logging to l.
func WithLogger(l observability.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithTracer wraps Convert in a tracing span.
func WithTracer(t observability.Tracer) Option {
	return func(p *Pipeline) { p.tracer = t }
}

// WithSourceFormat sets the transcript markup converted to plain text
// before encoding. Default is Plain (no conversion).
func WithSourceFormat(f plaintext.Format) Option {
	return func(p *Pipeline) { p.format = f }
}

// WithAnalysis toggles the analytics branch. Default is on.
func WithAnalysis(enabled bool) Option {
	return func(p *Pipeline) { p.stats = enabled }
}

// NewDefault constructs a pipeline with the standard components for cfg.
func NewDefault(cfg braille.Config, opts ...Option) *Pipeline {
	cfg = cfg.Normalized()
	p := &Pipeline{
		cfg:    cfg,
		enc:    encoder.New(cfg),
		trans:  embosser.New(cfg),
		val:    compliance.NewValidator(cfg),
		an:     analyzer.New(),
		logger: observability.NopLogger{},
		tracer: observability.NopTracer(),
		format: plaintext.Plain,
		stats:  true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result carries every artifact of one conversion.
type Result struct {
	// Braille is the Unicode braille rendering, a display/.txt artifact.
	Braille string

	// Document is the paginated form Braille was rendered from.
	Document *braille.Document

	// Embosser is the ASCII ready-format rendering, a .brf artifact.
	Embosser string

	// Validation is nil when ValidateOutput is off.
	Validation *compliance.Report

	// Analysis is nil when the analytics branch is off.
	Analysis *analyzer.Report
}

// Convert runs source through extraction, encoding, transcoding,
// validation and analysis. Transcoding failures are fatal: partial
// ready-format output is unsafe to emboss.
func (p *Pipeline) Convert(ctx context.Context, source string) (*Result, error) {
	ctx, span := p.tracer.StartSpan(ctx, "braille.convert")
	defer span.Finish()

	text, err := plaintext.Extract(plaintext.Normalize(source), p.format)
	if err != nil {
		span.SetError(err)
		return nil, fmt.Errorf("plain text extraction failed: %w", err)
	}

	doc, err := p.enc.Encode(ctx, text)
	if err != nil {
		span.SetError(err)
		return nil, fmt.Errorf("encoding failed: %w", err)
	}
	result := &Result{Document: doc, Braille: doc.Text()}
	span.SetTag(observability.MetricPageCount, doc.PageCount())
	span.SetTag(observability.MetricCellCount, doc.CellCount())
	p.logger.Debug("document encoded",
		observability.Int("pages", doc.PageCount()),
		observability.Int("lines", doc.LineCount()),
		observability.Int("cells", doc.CellCount()))

	var (
		wg       sync.WaitGroup
		transErr error
		valErr   error
		anErr    error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		result.Embosser, transErr = p.trans.Transcode(ctx, doc)
		if transErr != nil || !p.cfg.ValidateOutput {
			return
		}
		result.Validation, valErr = p.val.Validate(ctx, result.Embosser)
	}()
	if p.stats {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result.Analysis, anErr = p.an.Analyze(ctx, result.Braille, text)
		}()
	}
	wg.Wait()

	if transErr != nil {
		span.SetError(transErr)
		p.logger.Error("transcoding failed", observability.Error("err", transErr))
		return nil, fmt.Errorf("transcoding failed: %w", transErr)
	}
	if valErr != nil {
		span.SetError(valErr)
		return nil, fmt.Errorf("validation failed to run: %w", valErr)
	}
	if anErr != nil {
		span.SetError(anErr)
		return nil, fmt.Errorf("analysis failed to run: %w", anErr)
	}

	if result.Validation != nil {
		violations := len(result.Validation.Errors) + len(result.Validation.Warnings)
		span.SetTag(observability.MetricViolationCount, violations)
		if !result.Validation.Valid {
			// an expected, recoverable outcome, not a fault
			p.logger.Warn("output failed compliance validation",
				observability.Int("errors", len(result.Validation.Errors)),
				observability.Int("warnings", len(result.Validation.Warnings)))
		}
	}
	return result, nil
}
