package gitlab

import (
	"context"
	"fmt"
)

// ListLabels returns the project's labels.
func (c *Client) ListLabels(ctx context.Context, projectID int) ([]Label, error) {
	var labels []Label
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/labels", projectID), nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// CreateLabel creates a label on the project. The color must be a
// "#RRGGBB" value.
func (c *Client) CreateLabel(ctx context.Context, projectID int, name, color string) (*Label, error) {
	if name == "" {
		return nil, newInvalidInputError("name", "cannot be empty")
	}
	if color == "" {
		return nil, newInvalidInputError("color", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("name", name)
	form.Set("color", color)

	var label Label
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/labels", projectID), form, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// EditLabel renames a label, changes its color, or both. Labels are
// addressed by name; at least one of the option fields must be set.
func (c *Client) EditLabel(ctx context.Context, projectID int, name string, opts EditLabelOptions) (*Label, error) {
	if name == "" {
		return nil, newInvalidInputError("name", "cannot be empty")
	}
	if opts.NewName == "" && opts.Color == "" {
		return nil, newInvalidInputError("options", "either new_name or color must be set")
	}

	form, err := formValues(opts)
	if err != nil {
		return nil, err
	}
	form.Set("name", name)

	var label Label
	if err := c.put(ctx, fmt.Sprintf("/projects/%d/labels", projectID), form, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// DeleteLabel removes a label from the project by name.
func (c *Client) DeleteLabel(ctx context.Context, projectID int, name string) error {
	if name == "" {
		return newInvalidInputError("name", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return err
	}
	form.Set("name", name)

	return c.delete(ctx, fmt.Sprintf("/projects/%d/labels", projectID), form)
}
