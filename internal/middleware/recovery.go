package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/sorcerer/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PanicRecovery turns a handler panic into a 500, marks the request span as
// failed and counts it.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				panicErr := fmt.Errorf("panic serving [%s] route [%s]: %v", req.URL.Path, routeName(req), rec)
				log.WithField("stack", string(debug.Stack())).Error(panicErr)

				span := trace.SpanFromContext(req.Context())
				span.RecordError(panicErr)
				span.SetStatus(codes.Error, "handler panic")

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(respWriter, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}
