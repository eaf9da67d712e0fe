package gitlab

import (
	"context"
	"net/http"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHooks(t *testing.T) {
	t.Parallel()

	t.Run("add and list", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/hooks", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[{"id": 2, "url": "https://audit.example.com/hook"}]`))
			case http.MethodPost:
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "https://audit.example.com/hook", r.PostForm.Get("url"))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id": 2, "url": "https://audit.example.com/hook"}`))
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		})

		ctx := context.Background()

		hook, err := client.AddSystemHook(ctx, "https://audit.example.com/hook")
		require.NoError(t, err)
		assert.Equal(t, 2, hook.ID)

		hooks, err := client.ListSystemHooks(ctx, ListOptions{})
		require.NoError(t, err)
		require.Len(t, hooks, 1)
	})

	t.Run("test fires the hook", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/hooks/2", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"event_name": "project_create"}`))
			case http.MethodDelete:
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`null`))
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		})

		ctx := context.Background()

		require.NoError(t, client.TestSystemHook(ctx, 2))
		require.NoError(t, client.DeleteSystemHook(ctx, 2))
	})

	t.Run("missing hook is not found", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/hooks/9", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		err := client.TestSystemHook(context.Background(), 9)

		require.Error(t, err)

		var platformErr errors.PlatformError
		require.True(t, errors.As(err, &platformErr))
		assert.Equal(t, ErrCodeNotFound, platformErr.Code())
	})

	t.Run("empty url is rejected locally", func(t *testing.T) {
		t.Parallel()

		_, client := setup(t)

		_, err := client.AddSystemHook(context.Background(), "")

		require.Error(t, err)

		var platformErr errors.PlatformError
		require.True(t, errors.As(err, &platformErr))
		assert.Equal(t, errors.CodeInvalidInput, platformErr.Code())
	})
}
