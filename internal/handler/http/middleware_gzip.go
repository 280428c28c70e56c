// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZipRequest transparently decompresses request bodies sent with
// "Content-Encoding: gzip". Response compression is left to
// middleware.Compress.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		contentEncoding := req.Header.Get("Content-Encoding")
		if !strings.Contains(contentEncoding, "gzip") || req.Body == nil || req.Body == http.NoBody {
			next.ServeHTTP(w, req)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(req.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			writeError(w, req, ErrInvalidJSON)
			return
		}

		req.Body = &wrappedReadCloser{
			Reader: gzipReader,
			OnClose: func() {
				gzipReader.Close()
				gzipReaderPool.Put(gzipReader)
			},
		}
		req.Header.Del("Content-Encoding")
		req.Header.Del("Content-Length")
		req.ContentLength = -1

		next.ServeHTTP(w, req)
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
		w.OnClose = nil
	}
	return nil
}
