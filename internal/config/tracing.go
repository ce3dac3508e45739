package config

import (
	"fmt"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// TraceKeys lists the tracers of the library packages.
var TraceKeys = []string{"es.transform", "es.shapes", "es.raster", "es.util"}

// SetupTracing routes all library tracers to the Go logger at level, one of
// Debug, Info or Error.
func SetupTracing(level string) error {
	switch level {
	case "Debug", "Info", "Error":
	default:
		return fmt.Errorf("%w: trace level %q", ErrInvalid, level)
	}

	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range TraceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	return nil
}
