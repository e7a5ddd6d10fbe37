package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	NotFoundBody      = "Not found"
	InternalErrorBody = "An error occurred"
)

// ErrorBodies replaces the body of every 404 and 500 response with a short
// plain-text message. Other responses pass through untouched.
func ErrorBodies() gin.HandlerFunc {
	return func(c *gin.Context) {
		original := c.Writer
		buf := &bufferedWriter{
			ResponseWriter: original,
			status:         original.Status(),
		}
		c.Writer = buf

		c.Next()

		c.Writer = original

		switch buf.status {
		case http.StatusNotFound:
			writePlain(original, http.StatusNotFound, NotFoundBody)
		case http.StatusInternalServerError:
			writePlain(original, http.StatusInternalServerError, InternalErrorBody)
		default:
			buf.flush()
		}
	}
}

func writePlain(w gin.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Del("Content-Length")
	w.WriteHeader(status)
	_, _ = w.WriteString(body)
}

// bufferedWriter holds status and body until the handler chain returns.
type bufferedWriter struct {
	gin.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (w *bufferedWriter) WriteHeader(code int) {
	if code > 0 {
		w.status = code
	}
	w.wroteHeader = true
}

func (w *bufferedWriter) WriteHeaderNow() {
	w.wroteHeader = true
}

func (w *bufferedWriter) Write(data []byte) (int, error) {
	w.wroteHeader = true
	return w.body.Write(data)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	w.wroteHeader = true
	return w.body.WriteString(s)
}

func (w *bufferedWriter) Status() int {
	return w.status
}

func (w *bufferedWriter) Size() int {
	if !w.wroteHeader {
		return -1
	}
	return w.body.Len()
}

func (w *bufferedWriter) Written() bool {
	return w.wroteHeader
}

func (w *bufferedWriter) flush() {
	w.ResponseWriter.WriteHeader(w.status)
	if w.body.Len() == 0 {
		w.ResponseWriter.WriteHeaderNow()
		return
	}
	_, _ = w.ResponseWriter.Write(w.body.Bytes())
}
