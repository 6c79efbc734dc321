package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateGroup creates an expense group. The creator becomes its first
// member.
func (c *Client) CreateGroup(ctx context.Context, in GroupCreate) (*GroupDetail, error) {
	var group GroupDetail
	if err := c.do(ctx, http.MethodPost, "/groups/", nil, in, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// ListGroups returns a page of groups the authenticated user belongs to.
func (c *Client) ListGroups(ctx context.Context, offset, limit int) (*Paginated[GroupListItem], error) {
	var page Paginated[GroupListItem]
	if err := c.do(ctx, http.MethodGet, "/groups/", pageQuery(offset, limit), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetGroup returns group details including members and the caller's debt
// breakdown.
func (c *Client) GetGroup(ctx context.Context, groupID int) (*GroupDetail, error) {
	var group GroupDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/groups/%d/", groupID), nil, nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// UpdateGroup updates a group. Owner only.
func (c *Client) UpdateGroup(ctx context.Context, groupID int, in GroupUpdate) (*GroupDetail, error) {
	var group GroupDetail
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/groups/%d/", groupID), nil, in, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// DeleteGroup deletes a group. Owner only.
func (c *Client) DeleteGroup(ctx context.Context, groupID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/groups/%d/", groupID), nil, nil, nil)
}

// JoinByInviteCode requests membership in the group behind the invite
// code. Repeating a pending request returns the existing one.
func (c *Client) JoinByInviteCode(ctx context.Context, code string) (*JoinRequest, error) {
	in := struct {
		Code string `json:"code"`
	}{Code: code}

	var request JoinRequest
	if err := c.do(ctx, http.MethodPost, "/groups/join/", nil, in, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// ListJoinRequests lists a group's join requests, filtered by status.
// Owner only. A zero-value status lists pending requests.
func (c *Client) ListJoinRequests(ctx context.Context, groupID int, status JoinRequestStatus) ([]JoinRequest, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}

	var requests []JoinRequest
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/groups/%d/join-requests/", groupID), query, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// AcceptJoinRequest accepts a pending join request and adds the requester
// to the group. Owner only.
func (c *Client) AcceptJoinRequest(ctx context.Context, groupID, requestID int) (*JoinRequest, error) {
	path := fmt.Sprintf("/groups/%d/join-requests/%d/accept/", groupID, requestID)
	var request JoinRequest
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// DeclineJoinRequest declines a pending join request. Owner only.
func (c *Client) DeclineJoinRequest(ctx context.Context, groupID, requestID int) (*JoinRequest, error) {
	path := fmt.Sprintf("/groups/%d/join-requests/%d/decline/", groupID, requestID)
	var request JoinRequest
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// ListSettlements returns a page of the group's recorded settlements,
// newest first.
func (c *Client) ListSettlements(ctx context.Context, groupID, offset, limit int) (*Paginated[Settlement], error) {
	var page Paginated[Settlement]
	path := fmt.Sprintf("/groups/%d/settlements/", groupID)
	if err := c.do(ctx, http.MethodGet, path, pageQuery(offset, limit), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateSettlement records a settlement payment between two members.
func (c *Client) CreateSettlement(ctx context.Context, groupID int, in SettlementCreate) (*Settlement, error) {
	var settlement Settlement
	path := fmt.Sprintf("/groups/%d/settlements/", groupID)
	if err := c.do(ctx, http.MethodPost, path, nil, in, &settlement); err != nil {
		return nil, err
	}
	return &settlement, nil
}
