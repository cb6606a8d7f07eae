package xcookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	return w.Result().Cookies()
}

func TestAddDefaults(t *testing.T) {
	mgr := New()
	w := httptest.NewRecorder()

	mgr.Add(w, "session", "abc123")

	cookies := setCookies(w)
	require.Len(t, cookies, 1)
	c := cookies[0]

	assert.Equal(t, "session", c.Name)
	assert.Equal(t, "abc123", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Empty(t, c.Domain)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, 0, c.MaxAge, "默认不写 Max-Age")
}

func TestAddWithOptions(t *testing.T) {
	mgr := New(
		WithPath("/app"),
		WithDomain("example.org"),
		WithSecure(false),
		WithHTTPOnly(false),
		WithMaxAge(3600),
		WithSameSite(http.SameSiteStrictMode),
	)
	w := httptest.NewRecorder()

	mgr.Add(w, "pref", "dark")

	cookies := setCookies(w)
	require.Len(t, cookies, 1)
	c := cookies[0]

	assert.Equal(t, "/app", c.Path)
	assert.Equal(t, "example.org", c.Domain)
	assert.False(t, c.Secure)
	assert.False(t, c.HttpOnly)
	assert.Equal(t, 3600, c.MaxAge)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}

func TestUnset(t *testing.T) {
	mgr := New(WithPath("/app"), WithMaxAge(3600))
	w := httptest.NewRecorder()

	mgr.Unset(w, "session")

	cookies := setCookies(w)
	require.Len(t, cookies, 1)
	c := cookies[0]

	assert.Equal(t, "session", c.Name)
	assert.Empty(t, c.Value)
	assert.Less(t, c.MaxAge, 0)
	// 属性与 Add 一致才能命中同一个 Cookie
	assert.Equal(t, "/app", c.Path)
	assert.True(t, c.Secure)
}

func TestGet(t *testing.T) {
	mgr := New()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: "abc123"})

	value, ok := mgr.Get(r, "session")
	require.True(t, ok)
	assert.Equal(t, "abc123", value)

	_, ok = mgr.Get(r, "missing")
	assert.False(t, ok)
}
