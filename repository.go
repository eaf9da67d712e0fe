package gitlab

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"

	"github.com/jmgilman/go/errors"
)

// ListTags returns a page of the project's tags.
func (c *Client) ListTags(ctx context.Context, projectID int, opts ListOptions) ([]Tag, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var tags []Tag
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/repository/tags", projectID), q, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag creates a tag pointing at ref. A non-empty message creates an
// annotated tag; an empty one a lightweight tag.
func (c *Client) CreateTag(ctx context.Context, projectID int, tagName, ref, message string) (*Tag, error) {
	if tagName == "" {
		return nil, newInvalidInputError("tag_name", "cannot be empty")
	}
	if ref == "" {
		return nil, newInvalidInputError("ref", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("tag_name", tagName)
	form.Set("ref", ref)
	if message != "" {
		form.Set("message", message)
	}

	var tag Tag
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/repository/tags", projectID), form, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListCommits returns a page of the commit log, newest first. RefName selects
// the branch or tag; the default branch is used when it is empty.
func (c *Client) ListCommits(ctx context.Context, projectID int, opts ListCommitsOptions) ([]Commit, error) {
	opts.ListOptions = opts.ListOptions.withDefaults()
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}

	var commits []Commit
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/repository/commits", projectID), q, &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

// GetCommit returns a single commit by SHA.
func (c *Client) GetCommit(ctx context.Context, projectID int, sha string) (*Commit, error) {
	if sha == "" {
		return nil, newInvalidInputError("sha", "cannot be empty")
	}

	var commit Commit
	path := fmt.Sprintf("/projects/%d/repository/commits/%s", projectID, url.PathEscape(sha))
	if err := c.get(ctx, path, nil, &commit); err != nil {
		return nil, err
	}
	return &commit, nil
}

// GetCommitDiff returns the changes introduced by a commit.
func (c *Client) GetCommitDiff(ctx context.Context, projectID int, sha string) ([]Diff, error) {
	if sha == "" {
		return nil, newInvalidInputError("sha", "cannot be empty")
	}

	var diffs []Diff
	path := fmt.Sprintf("/projects/%d/repository/commits/%s/diff", projectID, url.PathEscape(sha))
	if err := c.get(ctx, path, nil, &diffs); err != nil {
		return nil, err
	}
	return diffs, nil
}

// ListTree lists the repository files and directories at the given path and
// ref. Both default to the repository root and default branch.
func (c *Client) ListTree(ctx context.Context, projectID int, opts TreeOptions) ([]TreeEntry, error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}

	var entries []TreeEntry
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/repository/tree", projectID), q, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// RawFile returns the raw content of the file at filePath as of the given
// commit SHA or branch name.
func (c *Client) RawFile(ctx context.Context, projectID int, sha, filePath string) (string, error) {
	if sha == "" {
		return "", newInvalidInputError("sha", "cannot be empty")
	}
	if filePath == "" {
		return "", newInvalidInputError("filepath", "cannot be empty")
	}

	q := url.Values{}
	q.Set("filepath", filePath)

	path := fmt.Sprintf("/projects/%d/repository/blobs/%s", projectID, url.PathEscape(sha))
	data, _, err := c.doRaw(ctx, http.MethodGet, path, q, nil, http.StatusOK)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RawBlob returns the raw content of a blob by its SHA.
func (c *Client) RawBlob(ctx context.Context, projectID int, sha string) (string, error) {
	if sha == "" {
		return "", newInvalidInputError("sha", "cannot be empty")
	}

	path := fmt.Sprintf("/projects/%d/repository/raw_blobs/%s", projectID, url.PathEscape(sha))
	data, _, err := c.doRaw(ctx, http.MethodGet, path, nil, nil, http.StatusOK)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ListContributors returns the repository contributors with their commit
// statistics.
func (c *Client) ListContributors(ctx context.Context, projectID int) ([]Contributor, error) {
	var contributors []Contributor
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/repository/contributors", projectID), nil, &contributors); err != nil {
		return nil, err
	}
	return contributors, nil
}

// Compare returns the commits and diffs between two branches, tags, or
// commit SHAs.
func (c *Client) Compare(ctx context.Context, projectID int, from, to string) (*Comparison, error) {
	if from == "" {
		return nil, newInvalidInputError("from", "cannot be empty")
	}
	if to == "" {
		return nil, newInvalidInputError("to", "cannot be empty")
	}

	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)

	var comparison Comparison
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/repository/compare", projectID), q, &comparison); err != nil {
		return nil, err
	}
	return &comparison, nil
}

// DownloadArchive streams the repository archive into w.
func (c *Client) DownloadArchive(ctx context.Context, projectID int, w io.Writer) error {
	body, _, err := c.doStream(ctx, fmt.Sprintf("/projects/%d/repository/archive", projectID), nil)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	if _, err := io.Copy(w, body); err != nil {
		return errors.Wrap(err, errors.CodeNetwork, "failed to read archive")
	}
	return nil
}

// DownloadArchiveFile streams the repository archive to a local file and
// returns the path it was written to. When path is empty, the filename the
// server advertises in its Content-Disposition header is used, in the
// current directory.
func (c *Client) DownloadArchiveFile(ctx context.Context, projectID int, path string) (string, error) {
	body, header, err := c.doStream(ctx, fmt.Sprintf("/projects/%d/repository/archive", projectID), nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = body.Close() }()

	if path == "" {
		_, params, err := mime.ParseMediaType(header.Get("Content-Disposition"))
		if err != nil {
			return "", errors.Wrap(err, errors.CodeInternal, "failed to parse archive content disposition")
		}
		if params["filename"] == "" {
			return "", errors.New(errors.CodeInternal, "archive response carries no filename")
		}
		path = params["filename"]
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to write archive")
	}

	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		return "", errors.Wrap(err, errors.CodeNetwork, "failed to read archive")
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to write archive")
	}
	return path, nil
}

// GetFile returns a single repository file, with its content Base64 encoded,
// at the given branch, tag, or commit SHA.
func (c *Client) GetFile(ctx context.Context, projectID int, filePath, ref string) (*File, error) {
	if filePath == "" {
		return nil, newInvalidInputError("file_path", "cannot be empty")
	}
	if ref == "" {
		return nil, newInvalidInputError("ref", "cannot be empty")
	}

	q := url.Values{}
	q.Set("file_path", filePath)
	q.Set("ref", ref)

	var file File
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/repository/files", projectID), q, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// CreateFile creates a new file on the given branch in a single commit.
func (c *Client) CreateFile(ctx context.Context, projectID int, filePath, branch, content, commitMessage string) error {
	form, err := fileForm(filePath, branch, content, commitMessage)
	if err != nil {
		return err
	}
	return c.post(ctx, fmt.Sprintf("/projects/%d/repository/files", projectID), form, nil)
}

// UpdateFile replaces the content of an existing file on the given branch in
// a single commit.
func (c *Client) UpdateFile(ctx context.Context, projectID int, filePath, branch, content, commitMessage string) error {
	form, err := fileForm(filePath, branch, content, commitMessage)
	if err != nil {
		return err
	}
	return c.put(ctx, fmt.Sprintf("/projects/%d/repository/files", projectID), form, nil)
}

// DeleteFile removes a file from the given branch in a single commit.
func (c *Client) DeleteFile(ctx context.Context, projectID int, filePath, branch, commitMessage string) error {
	if filePath == "" {
		return newInvalidInputError("file_path", "cannot be empty")
	}
	if branch == "" {
		return newInvalidInputError("branch_name", "cannot be empty")
	}
	if commitMessage == "" {
		return newInvalidInputError("commit_message", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return err
	}
	form.Set("file_path", filePath)
	form.Set("branch_name", branch)
	form.Set("commit_message", commitMessage)

	return c.delete(ctx, fmt.Sprintf("/projects/%d/repository/files", projectID), form)
}

func fileForm(filePath, branch, content, commitMessage string) (url.Values, error) {
	if filePath == "" {
		return nil, newInvalidInputError("file_path", "cannot be empty")
	}
	if branch == "" {
		return nil, newInvalidInputError("branch_name", "cannot be empty")
	}
	if commitMessage == "" {
		return nil, newInvalidInputError("commit_message", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("file_path", filePath)
	form.Set("branch_name", branch)
	form.Set("content", content)
	form.Set("commit_message", commitMessage)
	return form, nil
}
