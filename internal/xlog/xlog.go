// Package xlog centralizes trace-key selection for ixml's packages.
//
// Every package that wants to log defines its own small
//
//	func tracer() tracing.Trace { return tracing.Select("ixml.xxx") }
//
// exactly the way github.com/npillmayer/gorgo's packages each define a
// local tracer() around github.com/npillmayer/schuko/tracing.Select
// (cmd/ixml goes through Select below, which is the same call). Init is the
// one place which knows every key of the namespace ("ixml.*").
package xlog

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Select returns the trace sink for a given dotted key, e.g. "ixml.earley".
func Select(key string) tracing.Trace {
	return tracing.Select(key)
}

// Init installs a default logging adapter and trace level for the whole
// module. CLI entry points call this once at startup; library code never
// calls it, so embedding this module in another program does not clobber
// that program's own logging setup.
func Init(level tracing.TraceLevel) {
	if gtrace.SyntaxTracer == nil {
		gtrace.SyntaxTracer = gologadapter.New()
	}
	tracing.Select("ixml.grammar").SetTraceLevel(level)
	tracing.Select("ixml.earley").SetTraceLevel(level)
	tracing.Select("ixml.tree").SetTraceLevel(level)
	tracing.Select("ixml.ixml").SetTraceLevel(level)
	tracing.Select("ixml.cmd").SetTraceLevel(level)
	tracing.Select("ixml.catalog").SetTraceLevel(level)
	tracing.Select("ixml.config").SetTraceLevel(level)
}
