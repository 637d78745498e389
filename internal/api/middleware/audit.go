package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// auditBodyCap bounds how much of a response body ends up in the log.
const auditBodyCap = 16384

type auditWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *auditWriter) Write(b []byte) (int, error) {
	if w.body.Len() < auditBodyCap {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *auditWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// AuditMiddleware logs every request and its response. Auth request bodies
// carry credentials and are never logged.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		body := "[redacted]"
		if !strings.HasPrefix(c.Request.URL.Path, "/api/auth/") {
			var raw []byte
			if c.Request.Body != nil {
				raw, _ = io.ReadAll(c.Request.Body)
				c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))
			}
			body = string(raw)
		}

		query := c.Request.URL.RawQuery
		if decoded, err := url.QueryUnescape(query); err == nil {
			query = decoded
		}

		log.InfoContext(ctx, "request received",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", query),
			log.String("body", body),
		)

		w := &auditWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		start := time.Now()

		c.Next()

		log.InfoContext(ctx, "request completed",
			log.Int("status", c.Writer.Status()),
			log.Duration("elapsed", time.Since(start)),
			log.String("response", w.body.String()),
		)
	}
}
