package gitlab

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/tags", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"name": "v1.0.0", "message": "first release"}]`))
		})

		tags, err := client.ListTags(context.Background(), 42, ListOptions{})

		require.NoError(t, err)
		require.Len(t, tags, 1)
		assert.Equal(t, "v1.0.0", tags[0].Name)
	})

	t.Run("create annotated tag sends the message", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/tags", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "v1.0.0", r.PostForm.Get("tag_name"))
			assert.Equal(t, "master", r.PostForm.Get("ref"))
			assert.Equal(t, "first release", r.PostForm.Get("message"))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"name": "v1.0.0", "message": "first release"}`))
		})

		tag, err := client.CreateTag(context.Background(), 42, "v1.0.0", "master", "first release")

		require.NoError(t, err)
		assert.Equal(t, "v1.0.0", tag.Name)
	})

	t.Run("create lightweight tag omits the message", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/tags", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.False(t, r.PostForm.Has("message"))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"name": "v1.0.0"}`))
		})

		_, err := client.CreateTag(context.Background(), 42, "v1.0.0", "master", "")

		require.NoError(t, err)
	})
}

func TestCommits(t *testing.T) {
	t.Parallel()

	t.Run("list with ref name", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/commits", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "feature", r.URL.Query().Get("ref_name"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id": "abc123", "short_id": "abc", "title": "wip"}]`))
		})

		commits, err := client.ListCommits(context.Background(), 42, ListCommitsOptions{RefName: "feature"})

		require.NoError(t, err)
		require.Len(t, commits, 1)
		assert.Equal(t, "abc123", commits[0].ID)
	})

	t.Run("get single commit", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/commits/abc123", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "abc123", "title": "wip", "author_name": "John Doe"}`))
		})

		commit, err := client.GetCommit(context.Background(), 42, "abc123")

		require.NoError(t, err)
		assert.Equal(t, "John Doe", commit.AuthorName)
	})

	t.Run("get commit diff", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/commits/abc123/diff", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"new_path": "main.go", "old_path": "main.go", "diff": "@@ -1 +1 @@"}]`))
		})

		diffs, err := client.GetCommitDiff(context.Background(), 42, "abc123")

		require.NoError(t, err)
		require.Len(t, diffs, 1)
		assert.Equal(t, "main.go", diffs[0].NewPath)
	})
}

func TestListTree(t *testing.T) {
	t.Parallel()

	mux, client := setup(t)
	mux.HandleFunc("/api/v3/projects/42/repository/tree", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "cmd", q.Get("path"))
		assert.Equal(t, "master", q.Get("ref_name"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "deadbeef", "name": "main.go", "type": "blob", "mode": "100644"}]`))
	})

	entries, err := client.ListTree(context.Background(), 42, TreeOptions{Path: "cmd", RefName: "master"})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "blob", entries[0].Type)
}

func TestRawContent(t *testing.T) {
	t.Parallel()

	t.Run("raw file by ref and path", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/blobs/master", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "README.md", r.URL.Query().Get("filepath"))
			_, _ = w.Write([]byte("# Widget\n"))
		})

		content, err := client.RawFile(context.Background(), 42, "master", "README.md")

		require.NoError(t, err)
		assert.Equal(t, "# Widget\n", content)
	})

	t.Run("raw blob by sha", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/raw_blobs/deadbeef", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("package main\n"))
		})

		content, err := client.RawBlob(context.Background(), 42, "deadbeef")

		require.NoError(t, err)
		assert.Equal(t, "package main\n", content)
	})
}

func TestListContributors(t *testing.T) {
	t.Parallel()

	mux, client := setup(t)
	mux.HandleFunc("/api/v3/projects/42/repository/contributors", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name": "John Doe", "email": "jdoe@example.com", "commits": 117}]`))
	})

	contributors, err := client.ListContributors(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, contributors, 1)
	assert.Equal(t, 117, contributors[0].Commits)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	mux, client := setup(t)
	mux.HandleFunc("/api/v3/projects/42/repository/compare", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "master", q.Get("from"))
		assert.Equal(t, "feature", q.Get("to"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"commit": {"id": "abc123"},
			"commits": [{"id": "abc123"}],
			"diffs": [{"new_path": "main.go"}]
		}`))
	})

	comparison, err := client.Compare(context.Background(), 42, "master", "feature")

	require.NoError(t, err)
	require.Len(t, comparison.Commits, 1)
	require.Len(t, comparison.Diffs, 1)
}

// No t.Parallel here: the content-disposition subtest uses t.Chdir, which
// the testing package forbids under a parallel ancestor.
func TestDownloadArchive(t *testing.T) {
	archive := []byte{0x1f, 0x8b, 0x08, 0x00, 0x00}

	t.Run("stream to writer", func(t *testing.T) {
		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/archive", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(archive)
		})

		var buf bytes.Buffer
		err := client.DownloadArchive(context.Background(), 42, &buf)

		require.NoError(t, err)
		assert.Equal(t, archive, buf.Bytes())
	})

	t.Run("explicit path", func(t *testing.T) {
		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/archive", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Disposition", `attachment; filename="widget.tar.gz"`)
			_, _ = w.Write(archive)
		})

		target := filepath.Join(t.TempDir(), "out.tar.gz")
		path, err := client.DownloadArchiveFile(context.Background(), 42, target)

		require.NoError(t, err)
		assert.Equal(t, target, path)

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, archive, written)
	})

	t.Run("filename derived from content disposition", func(t *testing.T) {
		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/archive", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Disposition", `attachment; filename="widget.tar.gz"`)
			_, _ = w.Write(archive)
		})

		t.Chdir(t.TempDir())

		path, err := client.DownloadArchiveFile(context.Background(), 42, "")

		require.NoError(t, err)
		assert.Equal(t, "widget.tar.gz", path)

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, archive, written)
	})

	t.Run("missing archive is not found", func(t *testing.T) {
		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/archive", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		var buf bytes.Buffer
		err := client.DownloadArchive(context.Background(), 42, &buf)

		require.Error(t, err)

		var platformErr errors.PlatformError
		require.True(t, errors.As(err, &platformErr))
		assert.Equal(t, ErrCodeNotFound, platformErr.Code())
	})
}

func TestFiles(t *testing.T) {
	t.Parallel()

	t.Run("get returns encoded content", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/files", func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "README.md", q.Get("file_path"))
			assert.Equal(t, "master", q.Get("ref"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"file_name": "README.md",
				"file_path": "README.md",
				"encoding": "base64",
				"content": "IyBXaWRnZXQK"
			}`))
		})

		file, err := client.GetFile(context.Background(), 42, "README.md", "master")

		require.NoError(t, err)
		assert.Equal(t, "base64", file.Encoding)
		assert.Equal(t, "IyBXaWRnZXQK", file.Content)
	})

	t.Run("create commits the new file", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/files", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "README.md", r.PostForm.Get("file_path"))
			assert.Equal(t, "master", r.PostForm.Get("branch_name"))
			assert.Equal(t, "# Widget\n", r.PostForm.Get("content"))
			assert.Equal(t, "add readme", r.PostForm.Get("commit_message"))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"file_path": "README.md", "branch_name": "master"}`))
		})

		err := client.CreateFile(context.Background(), 42, "README.md", "master", "# Widget\n", "add readme")

		require.NoError(t, err)
	})

	t.Run("update commits the replacement", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/files", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "update readme", r.PostForm.Get("commit_message"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"file_path": "README.md", "branch_name": "master"}`))
		})

		err := client.UpdateFile(context.Background(), 42, "README.md", "master", "# Widget v2\n", "update readme")

		require.NoError(t, err)
	})

	t.Run("delete sends the commit in the request body", func(t *testing.T) {
		t.Parallel()

		mux, client := setup(t)
		mux.HandleFunc("/api/v3/projects/42/repository/files", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)

			// ParseForm skips the body on DELETE requests.
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			form, err := url.ParseQuery(string(body))
			require.NoError(t, err)
			assert.Equal(t, "README.md", form.Get("file_path"))
			assert.Equal(t, "drop readme", form.Get("commit_message"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"file_path": "README.md", "branch_name": "master"}`))
		})

		err := client.DeleteFile(context.Background(), 42, "README.md", "master", "drop readme")

		require.NoError(t, err)
	})
}
