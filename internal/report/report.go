// Package report renders fingerprinting and comparison results as text,
// JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatter turns a result into printable bytes.
type Formatter interface {
	Format(result any) ([]byte, error)
}

// NewFormatter returns the formatter for a --output value.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "", "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "yaml":
		return &YAMLFormatter{}, nil
	}
	return nil, fmt.Errorf("report: unknown output format %q", format)
}

// JSONFormatter renders results as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(result any) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("report: encoding JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// YAMLFormatter renders results as YAML.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(result any) ([]byte, error) {
	data, err := yaml.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("report: encoding YAML: %w", err)
	}
	return data, nil
}

// TextFormatter renders results in the traditional line-based form.
type TextFormatter struct{}

type textRenderable interface {
	renderText() string
}

func (f *TextFormatter) Format(result any) ([]byte, error) {
	r, ok := result.(textRenderable)
	if !ok {
		return nil, fmt.Errorf("report: %T has no text form", result)
	}
	return []byte(r.renderText()), nil
}

// CalcResult is the outcome of fingerprinting one file.
type CalcResult struct {
	File        string   `json:"file" yaml:"file"`
	Duration    float64  `json:"duration" yaml:"duration"`
	Fingerprint string   `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Raw         []uint32 `json:"raw_fingerprint,omitempty" yaml:"raw_fingerprint,omitempty"`
}

func (r *CalcResult) renderText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DURATION=%.2f\n", r.Duration)
	if r.Raw != nil {
		words := make([]string, len(r.Raw))
		for i, w := range r.Raw {
			words[i] = fmt.Sprintf("%d", w)
		}
		fmt.Fprintf(&b, "FINGERPRINT=%s\n", strings.Join(words, ","))
	} else {
		fmt.Fprintf(&b, "FINGERPRINT=%s\n", r.Fingerprint)
	}
	return b.String()
}

// MatchedSegment is one matched stretch of two compared files.
type MatchedSegment struct {
	StartA   float64 `json:"start_a" yaml:"start_a"`
	EndA     float64 `json:"end_a" yaml:"end_a"`
	StartB   float64 `json:"start_b" yaml:"start_b"`
	EndB     float64 `json:"end_b" yaml:"end_b"`
	Duration float64 `json:"duration" yaml:"duration"`
	Score    float64 `json:"score" yaml:"score"`
}

// CompareResult is the outcome of comparing two files.
type CompareResult struct {
	FileA    string           `json:"file_a" yaml:"file_a"`
	FileB    string           `json:"file_b" yaml:"file_b"`
	Segments []MatchedSegment `json:"segments" yaml:"segments"`
}

func (r *CompareResult) renderText() string {
	if len(r.Segments) == 0 {
		return "no matching segments\n"
	}
	var b strings.Builder
	for _, seg := range r.Segments {
		fmt.Fprintf(&b, "%s -- %s | %s -- %s -> %.3f\n",
			FormatDuration(seg.StartA), FormatDuration(seg.EndA),
			FormatDuration(seg.StartB), FormatDuration(seg.EndB),
			seg.Score)
	}
	return b.String()
}

// FormatDuration renders seconds as h:mm:ss.cc.
func FormatDuration(seconds float64) string {
	centis := int64(math.Round(seconds * 100))
	totalSecs := centis / 100
	hours := totalSecs / 3600
	rem := totalSecs % 3600

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, rem/60, rem%60, centis%100)
}
