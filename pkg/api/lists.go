package api

import (
	"context"
	"net/url"
)

// CreateListRequest is the body for creating a list.
type CreateListRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private,omitempty"`
}

type listResponse struct {
	Data List `json:"data"`
}

// CreateList creates a new list owned by the authenticated user.
func (c *Client) CreateList(ctx context.Context, req *CreateListRequest) (*List, error) {
	var resp listResponse
	if err := c.post(ctx, "/lists", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// DeleteList removes a list owned by the authenticated user.
func (c *Client) DeleteList(ctx context.Context, listID string) (*Deleted, error) {
	var resp deleteResponse
	if err := c.delete(ctx, "/lists/"+listID, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

type userIDBody struct {
	UserID string `json:"user_id"`
}

// ListMembership is the add/remove member response payload.
type ListMembership struct {
	IsMember bool `json:"is_member"`
}

type membershipResponse struct {
	Data ListMembership `json:"data"`
}

// AddListMember adds a user to a list.
func (c *Client) AddListMember(ctx context.Context, listID, userID string) (*ListMembership, error) {
	var resp membershipResponse
	if err := c.post(ctx, "/lists/"+listID+"/members", &userIDBody{UserID: userID}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// RemoveListMember removes a user from a list.
func (c *Client) RemoveListMember(ctx context.Context, listID, userID string) (*ListMembership, error) {
	var resp membershipResponse
	if err := c.delete(ctx, "/lists/"+listID+"/members/"+userID, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ListsPage is one page of lists.
type ListsPage struct {
	Data []List `json:"data"`
	Meta *Meta  `json:"meta,omitempty"`
}

// OwnedLists returns lists owned by the authenticated user.
func (c *Client) OwnedLists(ctx context.Context, nextToken string) (*ListsPage, error) {
	id, err := c.myID(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{"list.fields": {defaultListFields}}
	if nextToken != "" {
		q.Set("pagination_token", nextToken)
	}

	var resp ListsPage
	if err := c.get(ctx, "/users/"+id+"/owned_lists", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
