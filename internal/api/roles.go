package api

import (
	"context"
	"fmt"
	"net/url"
)

// RoleFilters narrows the role list.
type RoleFilters struct {
	Name string
}

func (f RoleFilters) values() url.Values {
	v := url.Values{}
	if f.Name != "" {
		v.Set("name", f.Name)
	}
	return v
}

// RoleInput is the create/update payload for a role. PermissionIDs
// replaces the role's permission set wholesale.
type RoleInput struct {
	Name          string `json:"name"`
	PermissionIDs []int  `json:"permission_ids"`
}

// ListRoles fetches one page of roles.
func (c *Client) ListRoles(ctx context.Context, q ListQuery, f RoleFilters) (*Page[Role], error) {
	q.Filters = mergeValues(q.Filters, f.values())
	return getPage[Role](ctx, c, "/roles", q)
}

// GetRole fetches a single role with its permissions.
func (c *Client) GetRole(ctx context.Context, id int) (*Role, error) {
	var role Role
	if err := c.get(ctx, fmt.Sprintf("/roles/%d", id), nil, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// CreateRole creates a role.
func (c *Client) CreateRole(ctx context.Context, in RoleInput) (*Role, error) {
	var role Role
	if err := c.post(ctx, "/roles", in, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// UpdateRole updates a role.
func (c *Client) UpdateRole(ctx context.Context, id int, in RoleInput) (*Role, error) {
	var role Role
	if err := c.put(ctx, fmt.Sprintf("/roles/%d", id), in, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// DeleteRole deletes a role.
func (c *Client) DeleteRole(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/roles/%d", id))
}

// ListPermissions fetches one page of the permission catalog. The
// catalog is read-only; permissions are defined server-side.
func (c *Client) ListPermissions(ctx context.Context, q ListQuery) (*Page[Permission], error) {
	return getPage[Permission](ctx, c, "/permissions", q)
}
