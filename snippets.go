package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// ListSnippets returns a page of the project's snippets.
func (c *Client) ListSnippets(ctx context.Context, projectID int, opts ListOptions) ([]Snippet, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var snippets []Snippet
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/snippets", projectID), q, &snippets); err != nil {
		return nil, err
	}
	return snippets, nil
}

// GetSnippet returns a single project snippet by id.
func (c *Client) GetSnippet(ctx context.Context, projectID, snippetID int) (*Snippet, error) {
	var snippet Snippet
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/snippets/%d", projectID, snippetID), nil, &snippet); err != nil {
		return nil, err
	}
	return &snippet, nil
}

// CreateSnippet creates a snippet on the project.
func (c *Client) CreateSnippet(ctx context.Context, projectID int, title, fileName, code string, opts *CreateSnippetOptions) (*Snippet, error) {
	if title == "" {
		return nil, newInvalidInputError("title", "cannot be empty")
	}
	if fileName == "" {
		return nil, newInvalidInputError("file_name", "cannot be empty")
	}
	if code == "" {
		return nil, newInvalidInputError("code", "cannot be empty")
	}

	form, err := formValues(opts)
	if err != nil {
		return nil, err
	}
	form.Set("title", title)
	form.Set("file_name", fileName)
	form.Set("code", code)

	var snippet Snippet
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/snippets", projectID), form, &snippet); err != nil {
		return nil, err
	}
	return &snippet, nil
}

// SnippetContent returns the raw content of a snippet.
func (c *Client) SnippetContent(ctx context.Context, projectID, snippetID int) (string, error) {
	path := fmt.Sprintf("/projects/%d/snippets/%d/raw", projectID, snippetID)
	data, _, err := c.doRaw(ctx, http.MethodGet, path, nil, nil, http.StatusOK)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DeleteSnippet removes a snippet from the project.
func (c *Client) DeleteSnippet(ctx context.Context, projectID, snippetID int) error {
	return c.delete(ctx, fmt.Sprintf("/projects/%d/snippets/%d", projectID, snippetID), nil)
}

// ListSnippetNotes returns a page of a snippet's comments.
func (c *Client) ListSnippetNotes(ctx context.Context, projectID, snippetID int, opts ListOptions) ([]Note, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var notes []Note
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/snippets/%d/notes", projectID, snippetID), q, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetSnippetNote returns a single snippet comment by id.
func (c *Client) GetSnippetNote(ctx context.Context, projectID, snippetID, noteID int) (*Note, error) {
	var note Note
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/snippets/%d/notes/%d", projectID, snippetID, noteID), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// CreateSnippetNote adds a comment to a snippet.
func (c *Client) CreateSnippetNote(ctx context.Context, projectID, snippetID int, body string) (*Note, error) {
	if body == "" {
		return nil, newInvalidInputError("body", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("body", body)

	var note Note
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/snippets/%d/notes", projectID, snippetID), form, &note); err != nil {
		return nil, err
	}
	return &note, nil
}
