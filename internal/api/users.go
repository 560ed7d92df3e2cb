package api

import (
	"context"
	"fmt"
	"net/url"
)

// UserFilters narrows the user list.
type UserFilters struct {
	Name  string
	Email string
	Role  string
}

func (f UserFilters) values() url.Values {
	v := url.Values{}
	if f.Name != "" {
		v.Set("name", f.Name)
	}
	if f.Email != "" {
		v.Set("email", f.Email)
	}
	if f.Role != "" {
		v.Set("role", f.Role)
	}
	return v
}

// UserInput is the create/update payload for a user. Password is
// ignored on update when empty. RoleIDs replaces the user's roles.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	RoleIDs  []int  `json:"role_ids"`
}

// ListUsers fetches one page of users.
func (c *Client) ListUsers(ctx context.Context, q ListQuery, f UserFilters) (*Page[User], error) {
	q.Filters = mergeValues(q.Filters, f.values())
	return getPage[User](ctx, c, "/users", q)
}

// GetUser fetches a single user with roles.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var user User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user.
func (c *Client) CreateUser(ctx context.Context, in UserInput) (*User, error) {
	var user User
	if err := c.post(ctx, "/users", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates a user.
func (c *Client) UpdateUser(ctx context.Context, id int, in UserInput) (*User, error) {
	var user User
	if err := c.put(ctx, fmt.Sprintf("/users/%d", id), in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes a user.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d", id))
}
