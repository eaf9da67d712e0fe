package gitlab

import (
	"context"
	"fmt"
)

// ListIssues returns a page of issues created by the current user, across
// all projects.
func (c *Client) ListIssues(ctx context.Context, opts ListOptions) ([]Issue, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var issues []Issue
	if err := c.get(ctx, "/issues", q, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// ListProjectIssues returns a page of the project's issues.
func (c *Client) ListProjectIssues(ctx context.Context, projectID int, opts ListOptions) ([]Issue, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var issues []Issue
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/issues", projectID), q, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// GetProjectIssue returns a single project issue by id.
func (c *Client) GetProjectIssue(ctx context.Context, projectID, issueID int) (*Issue, error) {
	var issue Issue
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/issues/%d", projectID, issueID), nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// CreateIssue opens a new issue on the project.
func (c *Client) CreateIssue(ctx context.Context, projectID int, title string, opts *CreateIssueOptions) (*Issue, error) {
	if title == "" {
		return nil, newInvalidInputError("title", "cannot be empty")
	}

	form, err := formValues(opts)
	if err != nil {
		return nil, err
	}
	form.Set("title", title)

	var issue Issue
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/issues", projectID), form, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// EditIssue updates an existing issue. Only the fields set in opts are sent;
// a nil opts sends an empty update, which the remote API interprets as
// clearing every editable field.
func (c *Client) EditIssue(ctx context.Context, projectID, issueID int, opts *EditIssueOptions) (*Issue, error) {
	form, err := formValues(opts)
	if err != nil {
		return nil, err
	}

	var issue Issue
	if err := c.put(ctx, fmt.Sprintf("/projects/%d/issues/%d", projectID, issueID), form, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// ListMilestones returns a page of the project's milestones.
func (c *Client) ListMilestones(ctx context.Context, projectID int, opts ListOptions) ([]Milestone, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var milestones []Milestone
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/milestones", projectID), q, &milestones); err != nil {
		return nil, err
	}
	return milestones, nil
}

// GetMilestone returns a single project milestone by id.
func (c *Client) GetMilestone(ctx context.Context, projectID, milestoneID int) (*Milestone, error) {
	var milestone Milestone
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/milestones/%d", projectID, milestoneID), nil, &milestone); err != nil {
		return nil, err
	}
	return &milestone, nil
}

// CreateMilestone creates a milestone on the project.
func (c *Client) CreateMilestone(ctx context.Context, projectID int, title string, opts *CreateMilestoneOptions) (*Milestone, error) {
	if title == "" {
		return nil, newInvalidInputError("title", "cannot be empty")
	}

	form, err := formValues(opts)
	if err != nil {
		return nil, err
	}
	form.Set("title", title)

	var milestone Milestone
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/milestones", projectID), form, &milestone); err != nil {
		return nil, err
	}
	return &milestone, nil
}

// EditMilestone updates an existing milestone. Only the fields set in opts
// are sent; a nil opts sends an empty update.
func (c *Client) EditMilestone(ctx context.Context, projectID, milestoneID int, opts *EditMilestoneOptions) (*Milestone, error) {
	form, err := formValues(opts)
	if err != nil {
		return nil, err
	}

	var milestone Milestone
	if err := c.put(ctx, fmt.Sprintf("/projects/%d/milestones/%d", projectID, milestoneID), form, &milestone); err != nil {
		return nil, err
	}
	return &milestone, nil
}

// ListIssueNotes returns a page of an issue's comments.
func (c *Client) ListIssueNotes(ctx context.Context, projectID, issueID int, opts ListOptions) ([]Note, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var notes []Note
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/issues/%d/notes", projectID, issueID), q, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetIssueNote returns a single issue comment by id.
func (c *Client) GetIssueNote(ctx context.Context, projectID, issueID, noteID int) (*Note, error) {
	var note Note
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/issues/%d/notes/%d", projectID, issueID, noteID), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// CreateIssueNote adds a comment to an issue.
func (c *Client) CreateIssueNote(ctx context.Context, projectID, issueID int, body string) (*Note, error) {
	if body == "" {
		return nil, newInvalidInputError("body", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("body", body)

	var note Note
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/issues/%d/notes", projectID, issueID), form, &note); err != nil {
		return nil, err
	}
	return &note, nil
}
