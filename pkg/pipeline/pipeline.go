// Package pipeline runs the scene → layout → render pipeline for adjustable.
//
// The CLI and the HTTP server share one [Runner] so that caching, hooks and
// logging behave the same regardless of the entry point.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, hit, err := runner.Layout(ctx, s)
//	if err != nil {
//	    return err
//	}
//	out, err := runner.Render(ctx, res, pipeline.FormatText)
//
// Layouts are cached under the SHA-256 of the scene's canonical JSON, so any
// change to the viewport, items or adjustment settings computes afresh.
package pipeline

import (
	"github.com/matzehuels/adjustable/pkg/errors"
)

// Format constants for rendered outputs.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatText

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}
