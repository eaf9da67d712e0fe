package gitlab

import (
	"context"
	"fmt"
)

// ListMergeRequests returns a page of the project's merge requests,
// optionally filtered by state.
func (c *Client) ListMergeRequests(ctx context.Context, projectID int, opts ListMergeRequestsOptions) ([]MergeRequest, error) {
	opts.ListOptions = opts.ListOptions.withDefaults()
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}

	var requests []MergeRequest
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/merge_requests", projectID), q, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// GetMergeRequest returns a single merge request by id.
func (c *Client) GetMergeRequest(ctx context.Context, projectID, mergeRequestID int) (*MergeRequest, error) {
	var request MergeRequest
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/merge_request/%d", projectID, mergeRequestID), nil, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// ListMergeRequestComments returns a page of a merge request's comments made
// through the comments endpoint.
func (c *Client) ListMergeRequestComments(ctx context.Context, projectID, mergeRequestID int, opts ListOptions) ([]Note, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var notes []Note
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/merge_request/%d/comments", projectID, mergeRequestID), q, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateMergeRequest opens a merge request from sourceBranch into
// targetBranch. A cross-project merge request is created when opts names a
// target project.
func (c *Client) CreateMergeRequest(ctx context.Context, projectID int, sourceBranch, targetBranch, title string, opts *CreateMergeRequestOptions) (*MergeRequest, error) {
	if sourceBranch == "" {
		return nil, newInvalidInputError("source_branch", "cannot be empty")
	}
	if targetBranch == "" {
		return nil, newInvalidInputError("target_branch", "cannot be empty")
	}
	if title == "" {
		return nil, newInvalidInputError("title", "cannot be empty")
	}

	form, err := formValues(opts)
	if err != nil {
		return nil, err
	}
	form.Set("source_branch", sourceBranch)
	form.Set("target_branch", targetBranch)
	form.Set("title", title)

	var request MergeRequest
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/merge_requests", projectID), form, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// UpdateMergeRequest updates an existing merge request. Only the fields set
// in opts are sent; a nil opts sends an empty update.
func (c *Client) UpdateMergeRequest(ctx context.Context, projectID, mergeRequestID int, opts *UpdateMergeRequestOptions) (*MergeRequest, error) {
	form, err := formValues(opts)
	if err != nil {
		return nil, err
	}

	var request MergeRequest
	if err := c.put(ctx, fmt.Sprintf("/projects/%d/merge_request/%d", projectID, mergeRequestID), form, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// AcceptMergeRequest merges an open merge request, with an optional merge
// commit message.
func (c *Client) AcceptMergeRequest(ctx context.Context, projectID, mergeRequestID int, mergeCommitMessage string) (*MergeRequest, error) {
	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	if mergeCommitMessage != "" {
		form.Set("merge_commit_message", mergeCommitMessage)
	}

	var request MergeRequest
	if err := c.put(ctx, fmt.Sprintf("/projects/%d/merge_request/%d/merge", projectID, mergeRequestID), form, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// CommentMergeRequest adds a comment to a merge request through the comments
// endpoint.
func (c *Client) CommentMergeRequest(ctx context.Context, projectID, mergeRequestID int, note string) (*Note, error) {
	if note == "" {
		return nil, newInvalidInputError("note", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("note", note)

	var created Note
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/merge_request/%d/comments", projectID, mergeRequestID), form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListMergeRequestNotes returns a page of a merge request's notes.
func (c *Client) ListMergeRequestNotes(ctx context.Context, projectID, mergeRequestID int, opts ListOptions) ([]Note, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var notes []Note
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/merge_requests/%d/notes", projectID, mergeRequestID), q, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetMergeRequestNote returns a single merge request note by id.
func (c *Client) GetMergeRequestNote(ctx context.Context, projectID, mergeRequestID, noteID int) (*Note, error) {
	var note Note
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/merge_requests/%d/notes/%d", projectID, mergeRequestID, noteID), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// CreateMergeRequestNote adds a note to a merge request.
func (c *Client) CreateMergeRequestNote(ctx context.Context, projectID, mergeRequestID int, body string) (*Note, error) {
	if body == "" {
		return nil, newInvalidInputError("body", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("body", body)

	var note Note
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/merge_requests/%d/notes", projectID, mergeRequestID), form, &note); err != nil {
		return nil, err
	}
	return &note, nil
}
