package httpserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/gqlblog/internal/logging"
	"github.com/dmitrijs2005/gqlblog/internal/server/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// sessionMiddleware attaches a lazily loaded session to the request context.
// Requests without a valid cookie get an anonymous session that is only
// persisted when something writes to it. The cookie reflecting the final
// session state goes out with the response headers.
func sessionMiddleware(store session.Store, cookies *session.CookieCodec, ttl time.Duration, logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.New(store, ttl, cookies.SessionID(r))
			ctx := session.NewContext(r.Context(), sess)
			cw := &cookieWriter{ResponseWriter: w}
			cw.flush = func() {
				if err := cookies.Write(w, sess); err != nil {
					logger.Error(ctx, "failed to write session cookie", "error", err)
				}
			}
			next.ServeHTTP(cw, r.WithContext(ctx))
			cw.writeCookie()
		})
	}
}

// cookieWriter runs flush once, right before the status line.
type cookieWriter struct {
	http.ResponseWriter
	once  sync.Once
	flush func()
}

func (w *cookieWriter) writeCookie() {
	w.once.Do(w.flush)
}

func (w *cookieWriter) WriteHeader(code int) {
	w.writeCookie()
	w.ResponseWriter.WriteHeader(code)
}

func (w *cookieWriter) Write(b []byte) (int, error) {
	w.writeCookie()
	return w.ResponseWriter.Write(b)
}

func requestLogger(logger logging.Logger, obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			r = r.WithContext(logging.WithAttrs(r.Context(), "request_id", middleware.GetReqID(r.Context())))

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			route := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			if obs != nil {
				obs.ObserveRequest(route, r.Method, ww.Status(), elapsed)
			}
			logger.Info(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"route", route,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", elapsed,
			)
		})
	}
}
