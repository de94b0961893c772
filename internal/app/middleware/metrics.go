package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// NewMetricMiddleware records per-route latency and request counts.
func NewMetricMiddleware(meter metric.Meter) gin.HandlerFunc {

	durationHistogram, _ := meter.Int64Histogram(
		"http.server.latency",
		metric.WithUnit("ms"),
		metric.WithDescription("The latency of HTTP requests."),
	)

	requestCounter, _ := meter.Int64Counter(
		"http.server.requests_total",
		metric.WithDescription("The total number of HTTP requests."),
	)

	errorCounter, _ := meter.Int64Counter(
		"http.server.error_requests_total",
		metric.WithDescription("The total number of failed HTTP requests."),
	)

	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime).Milliseconds()
		statusCode := c.Writer.Status()

		attributes := []attribute.KeyValue{
			semconv.HTTPRouteKey.String(c.FullPath()),
			semconv.HTTPRequestMethodKey.String(c.Request.Method),
			semconv.HTTPResponseStatusCodeKey.Int(statusCode),
		}

		durationHistogram.Record(c.Request.Context(), duration, metric.WithAttributes(attributes...))
		requestCounter.Add(c.Request.Context(), 1, metric.WithAttributes(attributes...))
		if statusCode >= 400 {
			errorCounter.Add(c.Request.Context(), 1, metric.WithAttributes(attributes...))
		}
	}
}
