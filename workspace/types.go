package workspace

import (
	"errors"

	"github.com/katalvlaran/limes/method"
	"go.uber.org/zap"
)

// Sentinel errors for workspace construction and queries. ErrRedundantName
// and ErrEmptyMethod are the method package sentinels, so errors.Is matches
// either spelling.
var (
	// ErrRedundantName indicates two samples of one method collapse to the
	// same canonical name.
	ErrRedundantName = method.ErrRedundantName

	// ErrEmptyMethod indicates no sample is left after common filtering.
	ErrEmptyMethod = method.ErrEmptyMethod

	// ErrNoMethods indicates New received no method or a nil method.
	ErrNoMethods = errors.New("workspace: no methods")

	// ErrForeignMethod indicates a method that does not belong to the workspace.
	ErrForeignMethod = errors.New("workspace: method not in workspace")
)

// Option configures workspace construction.
type Option func(*Options)

// Options holds the construction parameters of a Workspace.
type Options struct {
	// Strict keeps sample names verbatim when true; when false names are
	// case- and punctuation-normalized before matching.
	Strict bool

	// Common keeps only samples present in every method.
	Common bool

	// Logger receives construction diagnostics. Never nil.
	Logger *zap.Logger
}

// DefaultOptions returns strict matching, all samples kept, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Strict: true,
		Common: false,
		Logger: zap.NewNop(),
	}
}

// WithStrict selects verbatim (true) or normalized (false) sample matching.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

// WithCommon restricts the workspace to samples shared by all methods.
func WithCommon(common bool) Option {
	return func(o *Options) { o.Common = common }
}

// WithLogger sets the logger used for construction diagnostics. A nil logger
// is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
