// Package responsewriter records the status and size of HTTP responses for the
// logging, tracing and metrics middleware.
package responsewriter

import (
	"net/http"
)

// Recorder wraps an http.ResponseWriter and remembers what was sent through it.
type Recorder struct {
	http.ResponseWriter
	status  int
	bytes   int
	written bool
}

// Wrap returns a Recorder for w. When w already is a Recorder it is returned as
// is, so stacked middleware observe the same response.
func Wrap(w http.ResponseWriter) *Recorder {
	if rec, ok := w.(*Recorder); ok {
		return rec
	}
	return &Recorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status code and drops later ones.
func (r *Recorder) WriteHeader(status int) {
	if r.written {
		return
	}
	r.status = status
	r.written = true
	r.ResponseWriter.WriteHeader(status)
}

// Write sends an implicit 200 before the first body bytes.
func (r *Recorder) Write(b []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// StatusCode returns the status sent, or 200 when nothing was sent yet.
func (r *Recorder) StatusCode() int { return r.status }

// BytesWritten returns the number of body bytes written.
func (r *Recorder) BytesWritten() int { return r.bytes }

// Written reports whether the header has been sent.
func (r *Recorder) Written() bool { return r.written }

// Unwrap exposes the underlying writer to http.ResponseController.
func (r *Recorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }
