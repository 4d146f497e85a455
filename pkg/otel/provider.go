package otel

import (
	"os"
	"strings"
)

const instrumentationName = "github.com/adrianliechti/wingman-speak"

var (
	EnableDebug     = false
	EnableTelemetry = false
)

func init() {
	EnableDebug = os.Getenv("DEBUG") != ""
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

type Observable interface {
	otelSetup()
}

// useGRPC reports whether the OTLP exporter for signal (traces, metrics,
// logs) is configured for grpc instead of http/protobuf.
func useGRPC(signal string) bool {
	if strings.EqualFold(os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL"), "grpc") {
		return true
	}

	return strings.EqualFold(os.Getenv("OTEL_EXPORTER_OTLP_"+strings.ToUpper(signal)+"_PROTOCOL"), "grpc")
}
