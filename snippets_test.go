package gitlab

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippets(t *testing.T) {
	t.Parallel()

	t.Run("create with lifetime", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/snippets", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "scratch", r.PostForm.Get("title"))
			assert.Equal(t, "main.go", r.PostForm.Get("file_name"))
			assert.Equal(t, "package main\n", r.PostForm.Get("code"))
			assert.Equal(t, "2026-12-31", r.PostForm.Get("lifetime"))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": 8, "title": "scratch", "file_name": "main.go"}`))
		})

		snippet, err := client.CreateSnippet(context.Background(), 42, "scratch", "main.go", "package main\n", &CreateSnippetOptions{
			Lifetime: "2026-12-31",
		})

		require.NoError(t, err)
		assert.Equal(t, 8, snippet.ID)
	})

	t.Run("list, get, raw content, delete", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/snippets", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id": 8, "title": "scratch"}]`))
		})
		mux.HandleFunc("/api/v3/projects/42/snippets/8", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id": 8, "title": "scratch", "file_name": "main.go"}`))
			case http.MethodDelete:
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`null`))
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		})
		mux.HandleFunc("/api/v3/projects/42/snippets/8/raw", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("package main\n"))
		})

		ctx := context.Background()

		snippets, err := client.ListSnippets(ctx, 42, ListOptions{})
		require.NoError(t, err)
		require.Len(t, snippets, 1)

		snippet, err := client.GetSnippet(ctx, 42, 8)
		require.NoError(t, err)
		assert.Equal(t, "main.go", snippet.FileName)

		content, err := client.SnippetContent(ctx, 42, 8)
		require.NoError(t, err)
		assert.Equal(t, "package main\n", content)

		require.NoError(t, client.DeleteSnippet(ctx, 42, 8))
	})
}

func TestSnippetNotes(t *testing.T) {
	t.Parallel()

	mux, client := setup(t)
	mux.HandleFunc("/api/v3/projects/42/snippets/8/notes", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id": 13, "body": "handy"}]`))
		case http.MethodPost:
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "handy", r.PostForm.Get("body"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": 13, "body": "handy"}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/v3/projects/42/snippets/8/notes/13", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 13, "body": "handy"}`))
	})

	ctx := context.Background()

	note, err := client.CreateSnippetNote(ctx, 42, 8, "handy")
	require.NoError(t, err)
	assert.Equal(t, 13, note.ID)

	notes, err := client.ListSnippetNotes(ctx, 42, 8, ListOptions{})
	require.NoError(t, err)
	require.Len(t, notes, 1)

	note, err = client.GetSnippetNote(ctx, 42, 8, 13)
	require.NoError(t, err)
	assert.Equal(t, "handy", note.Body)
}
