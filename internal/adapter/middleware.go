package adapter

import (
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-orders-admin/internal/logger"
	"github.com/MKhiriev/go-orders-admin/internal/utils"
)

// TraceIDHeader correlates a client log line with the server's access log.
const TraceIDHeader = "X-Trace-ID"

// withTraceID gives every outgoing request a trace id unless the caller set one.
func withTraceID(client *utils.HTTPClient) {
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(TraceIDHeader) == "" {
			r.SetHeader(TraceIDHeader, uuid.NewString())
		}
		return nil
	})
}

// withLogging logs one line per finished exchange. Headers are never logged:
// they carry the bearer token and the refresh cookie.
func withLogging(client *utils.HTTPClient, log *logger.Logger) {
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("trace_id", resp.Request.Header.Get(TraceIDHeader)).
			Str("method", resp.Request.Method).
			Str("uri", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Int64("size", resp.Size()).
			Send()
		return nil
	})

	client.OnError(func(r *resty.Request, err error) {
		log.Debug().
			Err(err).
			Str("trace_id", r.Header.Get(TraceIDHeader)).
			Str("method", r.Method).
			Str("uri", r.URL).
			Msg("request failed")
	})
}
