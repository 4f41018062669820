package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip inflates gzip request bodies, so the validation gate always sees
// plain JSON or XML, and compresses responses for clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			body, err := inflate(req.Body)
			if err != nil {
				writeError(w, req, http.StatusBadRequest, "Invalid gzip data")
				return
			}
			req.Body = body
			req.Header.Del("Content-Encoding")
			req.ContentLength = -1
		}

		if req.Method == http.MethodHead || !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.Close()

		next.ServeHTTP(gw, req)
	})
}

func inflate(body io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		gzipReaderPool.Put(zr)
		return nil, err
	}

	return &gzipBody{Reader: zr, source: body}, nil
}

// gzipBody returns its reader to the pool once the request body is closed.
type gzipBody struct {
	*gzip.Reader
	source io.Closer
}

func (b *gzipBody) Close() error {
	if b.Reader == nil {
		return nil
	}
	_ = b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
	b.Reader = nil
	return b.source.Close()
}

// gzipResponseWriter starts compressing on the first body byte. Responses
// without a body (204, 304, empty 200) pass through untouched.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	status      int
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	if !w.wroteHeader {
		w.start()
	}
	return w.zw.Write(data)
}

func (w *gzipResponseWriter) start() {
	w.wroteHeader = true
	if w.status == 0 {
		w.status = http.StatusOK
	}

	h := w.Header()
	h.Set("Content-Encoding", "gzip")
	h.Del("Content-Length")
	h.Add("Vary", "Accept-Encoding")
	w.ResponseWriter.WriteHeader(w.status)

	w.zw = gzipWriterPool.Get().(*gzip.Writer)
	w.zw.Reset(w.ResponseWriter)
}

// Close flushes the compressed stream, or the bare status when nothing was
// written.
func (w *gzipResponseWriter) Close() error {
	if !w.wroteHeader {
		w.wroteHeader = true
		if w.status != 0 {
			w.ResponseWriter.WriteHeader(w.status)
		}
		return nil
	}

	err := w.zw.Close()
	gzipWriterPool.Put(w.zw)
	w.zw = nil
	return err
}

func (w *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
