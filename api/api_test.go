package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/regdom/regdom-go/api/domains"
	"github.com/regdom/regdom-go/tldtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJoinPatternPath(t *testing.T) {
	for _, c := range []struct {
		elem []string
		want string
	}{
		{[]string{}, ""},
		{[]string{""}, ""},
		{[]string{"a"}, "a"},
		{[]string{"/"}, "/"},
		{[]string{"/a"}, "/a"},
		{[]string{"a/"}, "a/"},
		{[]string{"/a/"}, "/a/"},
		{[]string{"", "b"}, "b"},
		{[]string{"", "/b"}, "/b"},
		{[]string{"", "b/"}, "b/"},
		{[]string{"", "/b/"}, "/b/"},
		{[]string{"a", "b"}, "a/b"},
		{[]string{"a", "/b"}, "a/b"},
		{[]string{"a", "b/"}, "a/b/"},
		{[]string{"a", "/b/"}, "a/b/"},
		{[]string{"/", "b"}, "/b"},
		{[]string{"/", "/b"}, "/b"},
		{[]string{"/", "b/"}, "/b/"},
		{[]string{"/", "/b/"}, "/b/"},
		{[]string{"/a", "b"}, "/a/b"},
		{[]string{"/a", "/b"}, "/a/b"},
		{[]string{"/a", "b/"}, "/a/b/"},
		{[]string{"/a", "/b/"}, "/a/b/"},
		{[]string{"a/", "b"}, "a/b"},
		{[]string{"a/", "/b"}, "a/b"},
		{[]string{"a/", "b/"}, "a/b/"},
		{[]string{"a/", "/b/"}, "a/b/"},
		{[]string{"/a/", "b"}, "/a/b"},
		{[]string{"/a/", "/b"}, "/a/b"},
		{[]string{"/a/", "b/"}, "/a/b/"},
		{[]string{"/a/", "/b/"}, "/a/b/"},
	} {
		if got := joinPatternPath(c.elem...); got != c.want {
			t.Errorf("joinPatternPath(%#v) = %q; want %q", c.elem, got, c.want)
		}
	}
}

func newTestServer(t *testing.T, normalize bool) *Server {
	t.Helper()
	tree, err := tldtree.Parse("(3:com,uk(2:co,ac),ck(1:*(1:www!)))")
	require.NoError(t, err)
	c := Config{
		Enabled:   true,
		Normalize: normalize,
		Listeners: []ListenerConfig{
			{
				Network: "tcp",
				Address: "[::1]:0",
			},
		},
	}
	s, err := c.NewServer(zap.NewNop(), tree)
	require.NoError(t, err)
	return s
}

func serveRequest(s *Server, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(w, r)
	return w
}

func TestServerNoListeners(t *testing.T) {
	var c Config
	_, err := c.NewServer(zap.NewNop(), &tldtree.Tree{})
	require.Error(t, err)
}

func TestServerInfo(t *testing.T) {
	s := newTestServer(t, false)
	w := serveRequest(s, httptest.NewRequest(http.MethodGet, "/api/regdom/v1/server", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var info domains.ServerInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "regdom-go", info.Name)
	assert.Equal(t, "v1", info.APIVersion)
	assert.NotEmpty(t, info.Version)
}

func TestGetDomain(t *testing.T) {
	s := newTestServer(t, false)

	for _, c := range []struct {
		name        string
		target      string
		wantDomain  string
		registrable bool
	}{
		{"Exact", "/api/regdom/v1/domains/www.example.com", "example.com", true},
		{"SecondLevel", "/api/regdom/v1/domains/www.example.co.uk", "example.co.uk", true},
		{"Exception", "/api/regdom/v1/domains/example.www.ck", "www.ck", true},
		{"Fallback", "/api/regdom/v1/domains/www.example.test", "example.test", true},
		{"StrictFallback", "/api/regdom/v1/domains/www.example.test?strict=true", "", false},
		{"Absent", "/api/regdom/v1/domains/com", "", false},
	} {
		t.Run(c.name, func(t *testing.T) {
			w := serveRequest(s, httptest.NewRequest(http.MethodGet, c.target, nil))
			require.Equal(t, http.StatusOK, w.Code)

			var info domains.DomainInfo
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
			assert.Equal(t, c.wantDomain, info.RegisteredDomain)
			assert.Equal(t, c.registrable, info.Registrable)
		})
	}
}

func TestGetDomainNormalize(t *testing.T) {
	s := newTestServer(t, true)

	w := serveRequest(s, httptest.NewRequest(http.MethodGet, "/api/regdom/v1/domains/WWW.Example.COM.", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var info domains.DomainInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "www.example.com", info.Hostname)
	assert.Equal(t, "example.com", info.RegisteredDomain)
	assert.True(t, info.Registrable)
}

func TestGetDomainNormalizeError(t *testing.T) {
	s := newTestServer(t, true)

	w := serveRequest(s, httptest.NewRequest(http.MethodGet, "/api/regdom/v1/domains/%20", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var se domains.StandardError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &se))
	assert.NotEmpty(t, se.Message)
}

func TestBatchLookup(t *testing.T) {
	s := newTestServer(t, false)

	body := strings.NewReader(`{"hostnames":["www.example.com","example.www.ck","com"]}`)
	r := httptest.NewRequest(http.MethodPost, "/api/regdom/v1/domains", body)
	w := serveRequest(s, r)
	require.Equal(t, http.StatusOK, w.Code)

	var infos []domains.DomainInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, "example.com", infos[0].RegisteredDomain)
	assert.Equal(t, "www.ck", infos[1].RegisteredDomain)
	assert.False(t, infos[2].Registrable)
}

func TestBatchLookupBadRequest(t *testing.T) {
	s := newTestServer(t, false)

	r := httptest.NewRequest(http.MethodPost, "/api/regdom/v1/domains", strings.NewReader("not json"))
	w := serveRequest(s, r)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, false)
	w := serveRequest(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
