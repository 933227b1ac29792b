// Package api implements the RESTful lookup API server.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"path"

	"github.com/regdom/regdom-go/api/domains"
	"github.com/regdom/regdom-go/api/internal/restapi"
	"github.com/regdom/regdom-go/jsoncfg"
	"github.com/regdom/regdom-go/tldtree"
	"go.uber.org/zap"
)

// Config stores the configuration for the RESTful API.
type Config struct {
	// Enabled controls whether the API server is enabled.
	Enabled bool `json:"enabled"`

	// DebugPprof enables pprof endpoints for debugging and profiling.
	DebugPprof bool `json:"debugPprof"`

	// Normalize enables hostname normalization before lookups.
	// When enabled, hostnames are lowercased and internationalized
	// names are converted to punycode.
	Normalize bool `json:"normalize"`

	// SecretPath adds a secret path prefix to API and pprof endpoints.
	// If empty, no secret path is added.
	SecretPath string `json:"secretPath"`

	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	// If zero, there is no timeout.
	ReadHeaderTimeout jsoncfg.Duration `json:"readHeaderTimeout"`

	// Listeners is the list of server listeners.
	Listeners []ListenerConfig `json:"listeners"`
}

// ListenerConfig is the configuration for a server listener.
type ListenerConfig struct {
	// Network is the network type.
	Network string `json:"network"`

	// Address is the address to listen on.
	Address string `json:"address"`
}

// NewServer returns a new API server that answers lookups from the given tree.
func (c *Config) NewServer(logger *zap.Logger, tree *tldtree.Tree) (*Server, error) {
	if len(c.Listeners) == 0 {
		return nil, errors.New("no listeners specified")
	}

	mux := http.NewServeMux()

	basePath := "/"
	if c.SecretPath != "" {
		basePath = joinPatternPath(basePath, c.SecretPath)
	}

	if c.DebugPprof {
		register := func(path string, handler http.HandlerFunc) {
			pattern := "GET " + joinPatternPath(basePath, path)
			mux.Handle(pattern, logPprofRequests(logger, handler))
		}

		register("/debug/pprof/", pprof.Index)
		register("/debug/pprof/cmdline", pprof.Cmdline)
		register("/debug/pprof/profile", pprof.Profile)
		register("/debug/pprof/symbol", pprof.Symbol)
		register("/debug/pprof/trace", pprof.Trace)
	}

	// /api/regdom/v1
	apiV1Path := joinPatternPath(basePath, "/api/regdom/v1")
	h := domains.NewHandler(tree, c.Normalize)
	h.RegisterHandlers(func(method, path string, handler restapi.HandlerFunc) {
		pattern := method + " " + joinPatternPath(apiV1Path, path)
		mux.Handle(pattern, logAPIRequests(logger, handler))
	})

	mux.Handle("GET "+joinPatternPath(basePath, "/healthz"), logAPIRequests(logger, handleHealthz))

	errorLog, err := zap.NewStdLogAt(logger, zap.ErrorLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create error logger: %w", err)
	}

	return &Server{
		logger:    logger,
		listeners: c.Listeners,
		server: http.Server{
			Handler:           mux,
			ErrorLog:          errorLog,
			ReadHeaderTimeout: c.ReadHeaderTimeout.Value(),
		},
	}, nil
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) (int, error) {
	return restapi.EncodeResponse(w, http.StatusOK, nil)
}

// joinPatternPath joins path elements into a pattern path.
func joinPatternPath(elem ...string) string {
	p := path.Join(elem...)
	if p == "" {
		return ""
	}
	// Add back the trailing slash removed by [path.Join].
	if last := elem[len(elem)-1]; last != "" && last[len(last)-1] == '/' {
		if p[len(p)-1] != '/' {
			return p + "/"
		}
	}
	return p
}

// logPprofRequests is a middleware that logs pprof requests.
func logPprofRequests(logger *zap.Logger, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h(w, r)
		logger.Info("Handled pprof request",
			zap.String("proto", r.Proto),
			zap.String("method", r.Method),
			zap.String("requestURI", r.RequestURI),
			zap.String("host", r.Host),
			zap.String("remoteAddr", r.RemoteAddr),
		)
	})
}

// logAPIRequests is a middleware that logs API requests.
func logAPIRequests(logger *zap.Logger, h restapi.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, err := h(w, r)
		logger.Info("Handled API request",
			zap.String("proto", r.Proto),
			zap.String("method", r.Method),
			zap.String("requestURI", r.RequestURI),
			zap.String("host", r.Host),
			zap.String("remoteAddr", r.RemoteAddr),
			zap.Int("status", status),
			zap.Error(err),
		)
	})
}

// Server is the RESTful API server.
type Server struct {
	logger    *zap.Logger
	listeners []ListenerConfig
	server    http.Server
}

// ZapField implements [regdom.Service.ZapField].
func (s *Server) ZapField() zap.Field {
	return zap.String("service", "API server")
}

// Start starts the API server.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	for _, lnc := range s.listeners {
		ln, err := lc.Listen(ctx, lnc.Network, lnc.Address)
		if err != nil {
			return err
		}

		go func() {
			if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
				s.logger.Error("Failed to serve API", zap.Error(err))
			}
		}()

		s.logger.Info("Started API server listener", zap.Stringer("listenAddress", ln.Addr()))
	}
	return nil
}

// Stop stops the API server.
func (s *Server) Stop() error {
	return s.server.Close()
}
