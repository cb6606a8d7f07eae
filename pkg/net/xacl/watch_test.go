package xacl

import (
	"net/netip"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatch_InitialLoad(t *testing.T) {
	path := writeTempConfig(t, "acl.yaml", sampleYAML)

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Stop()

	assert.Equal(t, path, w.Path())
	assert.True(t, w.Current().Allowed(netip.MustParseAddr("10.1.2.3")))
	assert.False(t, w.Current().Allowed(netip.MustParseAddr("10.13.0.1")))
}

func TestWatch_InitialLoadFails(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Watch("/nonexistent/dir/acl.yaml")
		assert.ErrorIs(t, err, ErrLoadFailed)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Watch("")
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("bad extension", func(t *testing.T) {
		_, err := Watch("acl.ini")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestWatch_ReloadOnChange(t *testing.T) {
	path := writeTempConfig(t, "acl.yaml", "allow:\n  - 10.0.0.0/8\n")

	reloaded := make(chan *List, 4)
	w, err := Watch(path,
		WithDebounce(20*time.Millisecond),
		WithOnReload(func(list *List, err error) {
			if err == nil {
				reloaded <- list
			}
		}),
	)
	require.NoError(t, err)
	defer w.Stop()

	require.True(t, w.Current().Allowed(netip.MustParseAddr("10.1.2.3")))
	require.False(t, w.Current().Allowed(netip.MustParseAddr("192.168.0.1")))

	require.NoError(t, os.WriteFile(path, []byte("allow:\n  - 192.168.0.0/16\n"), 0o600))

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	assert.True(t, w.Current().Allowed(netip.MustParseAddr("192.168.0.1")))
	assert.False(t, w.Current().Allowed(netip.MustParseAddr("10.1.2.3")))
}

func TestWatch_KeepsPreviousListOnBadReload(t *testing.T) {
	path := writeTempConfig(t, "acl.yaml", "allow:\n  - 10.0.0.0/8\n")

	failures := make(chan error, 4)
	w, err := Watch(path,
		WithDebounce(20*time.Millisecond),
		WithRetry(1, time.Millisecond),
		WithOnReload(func(list *List, err error) {
			if err != nil {
				failures <- err
			}
		}),
	)
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("allow:\n  - not-a-cidr\n"), 0o600))

	select {
	case err := <-failures:
		assert.ErrorIs(t, err, ErrLoadFailed)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for failed reload")
	}

	// 旧列表仍然生效
	assert.True(t, w.Current().Allowed(netip.MustParseAddr("10.1.2.3")))
	assert.False(t, w.Current().Allowed(netip.MustParseAddr("192.168.0.1")))
}

func TestWatch_StopIdempotent(t *testing.T) {
	path := writeTempConfig(t, "acl.yaml", sampleYAML)

	w, err := Watch(path)
	require.NoError(t, err)

	w.Stop()
	w.Stop()
}
