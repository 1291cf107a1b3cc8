// Package tagsoup is a tolerant HTML parser. It accepts the kind of
// markup that exists in the wild (unclosed elements, stray end tags,
// missing quotes, bare ampersands, mislabeled encodings) and produces
// a well-nested SAX event stream from it, repairing the structure the
// way browsers do rather than rejecting it.
//
// The pipeline has three stages. The scanner turns decoded characters
// into tokens, resolving character references with browser-compatible
// longest-match semantics. The tag balancer turns tokens into a
// balanced event stream, synthesizing the end tags the input forgot
// and discarding the ones that match nothing. Whatever implements
// sax.Handler sits at the end: the bundled TreeBuilder, a filter
// chain, or user code.
package tagsoup

import "github.com/sirupsen/logrus"

const Version = "0.1.0"

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package. It
// receives the diagnostics of parses that run without a
// DiagnosticHandler.
func SetLogger(l logrus.FieldLogger) { fLogger = l }
