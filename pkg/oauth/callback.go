package oauth

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// DefaultCallbackTimeout bounds the wait for the browser redirect.
const DefaultCallbackTimeout = 5 * time.Minute

type callbackResult struct {
	code string
	err  error
}

// callbackListener is a single-shot HTTP listener for the provider
// redirect. It resolves exactly once, to a code or an error, and is torn
// down unconditionally after Await returns.
type callbackListener struct {
	server  *http.Server
	results chan callbackResult
	once    sync.Once
}

// listenCallback binds the loopback callback endpoint and starts serving.
// Binding happens before the browser is pointed at the provider, so the
// redirect can never race the listener coming up.
func listenCallback(port int, expectedState string) (*callbackListener, error) {
	// The literal IP, not "localhost": the registered redirect URI must
	// match byte for byte and some providers reject hostname aliases.
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to bind callback listener: %w", err)
	}

	l := &callbackListener{
		results: make(chan callbackResult, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if errCode := q.Get("error"); errCode != "" {
			renderDeniedPage(w, errCode, q.Get("error_description"))
			l.deliver(callbackResult{err: &DeniedError{Code: errCode, Description: q.Get("error_description")}})
			return
		}

		code := q.Get("code")
		if code == "" {
			// Browser noise (prefetch, favicon probes). Keep listening.
			http.NotFound(w, r)
			return
		}

		// State is validated before the code is trusted.
		if q.Get("state") != expectedState {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			l.deliver(callbackResult{err: ErrCsrfMismatch})
			return
		}

		renderSuccessPage(w)
		l.deliver(callbackResult{code: code})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	l.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if err := l.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			l.deliver(callbackResult{err: fmt.Errorf("callback server error: %w", err)})
		}
	}()

	return l, nil
}

func (l *callbackListener) deliver(r callbackResult) {
	l.once.Do(func() { l.results <- r })
}

// Await blocks until the single redirect arrives, the context is
// cancelled, or the timeout fires. The server is shut down on every path.
func (l *callbackListener) Await(ctx context.Context, timeout time.Duration) (string, error) {
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		l.server.Shutdown(shutdownCtx)
	}()

	select {
	case r := <-l.results:
		return r.code, r.err
	case <-ctx.Done():
		return "", fmt.Errorf("authentication cancelled: %w", ctx.Err())
	case <-time.After(timeout):
		return "", ErrAuthTimeout
	}
}
