package sqldb

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("careerpath/internal/db/sqldb")
