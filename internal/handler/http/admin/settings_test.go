package admin_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitpro/internal/handler/http/admin"
	"recruitpro/internal/handler/http/auth"
	"recruitpro/internal/settings"
)

/* ───────── stub ───────── */

type memoryStore struct {
	mu      sync.Mutex
	values  map[string]string
	saveErr error
}

func (m *memoryStore) All(context.Context) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func (m *memoryStore) Save(_ context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.values == nil {
		m.values = map[string]string{}
	}
	for k, v := range values {
		m.values[k] = v
	}
	return nil
}

/* ───────── helpers ───────── */

const secret = "admin-settings-test-secret-0123456789"

func newServer(t *testing.T, store *memoryStore) (http.Handler, string) {
	t.Helper()

	a := &auth.Admin{Email: "admin@example.com", Password: "pw", Secret: []byte(secret), TTL: time.Hour}
	token, err := a.Issue(a.Email)
	require.NoError(t, err)

	mux := http.NewServeMux()
	admin.Register(mux, &settings.Service{Repo: store}, auth.Authz(a.Secret), nil)
	return mux, token
}

func do(t *testing.T, h http.Handler, method, body, token string) (*httptest.ResponseRecorder, admin.SettingsResponse) {
	t.Helper()

	req := httptest.NewRequest(method, "/admin/settings", strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp admin.SettingsResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

/* ───────── tests ───────── */

func TestGetSettings(t *testing.T) {
	h, token := newServer(t, &memoryStore{values: map[string]string{settings.KeyJobsPerPage: "20"}})

	rec, resp := do(t, h, http.MethodGet, "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "20", resp.Settings[settings.KeyJobsPerPage])
	assert.Equal(t, "numbers", resp.Settings[settings.KeyStyle])
	assert.Len(t, resp.Fields, len(settings.Schema))

	first := resp.Fields[0]
	assert.Equal(t, settings.KeyStyle, first.Key)
	assert.Equal(t, "choice", first.Kind)
	assert.Equal(t, []string{"numbers", "load_more", "infinite_scroll"}, first.Choices)
	assert.Nil(t, first.Min)
}

func TestPutSettings_Sanitizes(t *testing.T) {
	store := &memoryStore{}
	h, token := newServer(t, store)

	body := `{
		"pagination_style": "INFINITE_SCROLL",
		"pagination_mobile_style": "carousel",
		"jobs_per_page": 500,
		"pagination_mid_size": "0",
		"pagination_load_more": "yes",
		"pagination_prev_text": "<b>Back</b>",
		"theme_color": "#ff0000"
	}`
	rec, resp := do(t, h, http.MethodPut, body, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	want := map[string]string{
		settings.KeyStyle:       "infinite_scroll",
		settings.KeyMobileStyle: "default",
		settings.KeyJobsPerPage: "50",
		settings.KeyMidSize:     "1",
		settings.KeyLoadMore:    "true",
		settings.KeyPrevText:    "Back",
	}
	if diff := cmp.Diff(want, store.values); diff != "" {
		t.Errorf("stored values mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"theme_color"}, resp.Ignored)
	assert.Equal(t, "50", resp.Settings[settings.KeyJobsPerPage])
	assert.Empty(t, resp.Fields)
}

func TestPutSettings_BadBody(t *testing.T) {
	h, token := newServer(t, &memoryStore{})

	for _, body := range []string{"", "[1,2]", "null", `{"jobs_per_page":`} {
		rec, _ := do(t, h, http.MethodPut, body, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Contains(t, rec.Body.String(), "invalid input: request body must be a JSON object", "body %q", body)
	}
}

func TestPutSettings_StoreError(t *testing.T) {
	h, token := newServer(t, &memoryStore{saveErr: errors.New("disk I/O error at /var/lib/db")})

	rec, _ := do(t, h, http.MethodPut, `{"jobs_per_page": 5}`, token)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "/var/lib/db")
}

func TestSettings_RequireAdmin(t *testing.T) {
	h, _ := newServer(t, &memoryStore{})

	for _, method := range []string{http.MethodGet, http.MethodPut} {
		rec, _ := do(t, h, method, `{}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, method)
	}
}
