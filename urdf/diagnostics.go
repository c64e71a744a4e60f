package urdf

import (
	"fmt"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// DiagnosticCode classifies a non-fatal anomaly found while parsing or
// evaluating a model.
type DiagnosticCode string

const (
	// DiagUnresolvedAsset is raised when a visual's mesh file cannot be
	// located on disk; the visual is kept but skipped during assembly.
	DiagUnresolvedAsset = DiagnosticCode("unresolved_asset")
	// DiagDisconnectedSubtree is raised when a joint references a link that
	// is not in the model; the joint and its subtree are skipped.
	DiagDisconnectedSubtree = DiagnosticCode("disconnected_subtree")
	// DiagAmbiguousRoot is raised when more than one link qualifies as root.
	DiagAmbiguousRoot = DiagnosticCode("ambiguous_root")
	// DiagNoRoot is raised when no link qualifies as root.
	DiagNoRoot = DiagnosticCode("no_root")
)

// Diagnostic is a non-fatal, structured warning. One bad input never blocks
// the rest of the tree from rendering, so anomalies are collected on results
// rather than returned as errors.
type Diagnostic struct {
	Code    DiagnosticCode
	Subject string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s (%s): %s", d.Code, d.Subject, d.Message)
}

// Diagnostics is an ordered collection of warnings.
type Diagnostics []Diagnostic

// Add appends a diagnostic.
func (ds *Diagnostics) Add(code DiagnosticCode, subject, format string, args ...interface{}) {
	*ds = append(*ds, Diagnostic{Code: code, Subject: subject, Message: fmt.Sprintf(format, args...)})
}

// Combined folds every diagnostic into a single error, or nil when empty, for
// callers that want a summary instead of a list.
func (ds Diagnostics) Combined() error {
	var err error
	for _, d := range ds {
		err = multierr.Append(err, errors.New(d.String()))
	}
	return err
}

// Log emits every diagnostic at warn level.
func (ds Diagnostics) Log(logger golog.Logger) {
	for _, d := range ds {
		logger.Warnw("model diagnostic", "code", string(d.Code), "subject", d.Subject, "message", d.Message)
	}
}
