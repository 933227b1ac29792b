// Package domains implements the registered domain lookup API v1.
package domains

import (
	"fmt"
	"net/http"

	"github.com/regdom/regdom-go"
	"github.com/regdom/regdom-go/api/internal/restapi"
	"github.com/regdom/regdom-go/hostname"
	"github.com/regdom/regdom-go/tldtree"
)

// StandardError is the standard error response.
type StandardError struct {
	Message string `json:"error"`
}

// ServerInfo contains information about the API server.
type ServerInfo struct {
	Name       string `json:"server"`
	APIVersion string `json:"apiVersion"`
	Version    string `json:"version"`
}

var serverInfo = ServerInfo{
	Name:       "regdom-go",
	APIVersion: "v1",
	Version:    regdom.Version,
}

// DomainInfo is the result of a registered domain lookup.
type DomainInfo struct {
	// Hostname is the hostname the lookup was performed on,
	// after normalization if normalization is enabled.
	Hostname string `json:"hostname"`

	// RegisteredDomain is the registered domain of the hostname.
	// It is empty if the hostname has no registered domain.
	RegisteredDomain string `json:"registeredDomain,omitzero"`

	// Registrable indicates whether a registered domain was found.
	Registrable bool `json:"registrable"`
}

// Handler handles registered domain lookup API requests.
type Handler struct {
	tree      *tldtree.Tree
	normalize bool
}

// NewHandler returns a new handler that answers lookups from the given tree.
func NewHandler(tree *tldtree.Tree, normalize bool) *Handler {
	return &Handler{
		tree:      tree,
		normalize: normalize,
	}
}

// RegisterHandlers sets up handlers for the lookup endpoints.
func (h *Handler) RegisterHandlers(register func(method string, path string, handler restapi.HandlerFunc)) {
	register(http.MethodGet, "/server", handleGetServerInfo)
	register(http.MethodGet, "/domains/{hostname}", h.handleGetDomain)
	register(http.MethodPost, "/domains", h.handleBatchLookup)
}

func handleGetServerInfo(w http.ResponseWriter, _ *http.Request) (int, error) {
	return restapi.EncodeResponse(w, http.StatusOK, &serverInfo)
}

func (h *Handler) handleGetDomain(w http.ResponseWriter, r *http.Request) (int, error) {
	name := r.PathValue("hostname")
	strict := r.URL.Query().Get("strict") == "true"

	info, err := h.lookup(name, strict)
	if err != nil {
		_, _ = restapi.EncodeResponse(w, http.StatusBadRequest, &StandardError{Message: err.Error()})
		return http.StatusBadRequest, err
	}
	return restapi.EncodeResponse(w, http.StatusOK, &info)
}

// BatchLookupRequest is the request body for a batch lookup.
type BatchLookupRequest struct {
	// Hostnames is the list of hostnames to look up.
	Hostnames []string `json:"hostnames"`

	// Strict disables the fallback for hostnames under unknown TLDs.
	Strict bool `json:"strict"`
}

func (h *Handler) handleBatchLookup(w http.ResponseWriter, r *http.Request) (int, error) {
	var req BatchLookupRequest
	if err := restapi.DecodeRequest(r, &req); err != nil {
		err = fmt.Errorf("failed to decode request: %w", err)
		_, _ = restapi.EncodeResponse(w, http.StatusBadRequest, &StandardError{Message: err.Error()})
		return http.StatusBadRequest, err
	}

	infos := make([]DomainInfo, len(req.Hostnames))
	for i, name := range req.Hostnames {
		info, err := h.lookup(name, req.Strict)
		if err != nil {
			err = fmt.Errorf("hostname %q: %w", name, err)
			_, _ = restapi.EncodeResponse(w, http.StatusBadRequest, &StandardError{Message: err.Error()})
			return http.StatusBadRequest, err
		}
		infos[i] = info
	}
	return restapi.EncodeResponse(w, http.StatusOK, infos)
}

func (h *Handler) lookup(name string, strict bool) (DomainInfo, error) {
	if h.normalize {
		var err error
		name, err = hostname.Normalize(name)
		if err != nil {
			return DomainInfo{}, err
		}
	}

	var (
		domain string
		ok     bool
	)
	if strict {
		domain, ok = h.tree.RegisteredDomainStrict(name)
	} else {
		domain, ok = h.tree.RegisteredDomain(name)
	}

	return DomainInfo{
		Hostname:         name,
		RegisteredDomain: domain,
		Registrable:      ok,
	}, nil
}
