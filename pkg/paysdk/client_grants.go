package paysdk

import (
	"context"
	"net/http"
	"net/url"
)

func grantsPath(parentID string) string {
	return "/v1/parents/" + url.PathEscape(parentID) + "/grants"
}

// GrantAccess allows granteeID to manage the parent's payment methods. Only
// the parent itself or an existing grantee may grant access.
func (c *SDKClient) GrantAccess(ctx context.Context, userID, parentID, granteeID string) error {
	resp, err := c.doJSONRequest(ctx, http.MethodPost, grantsPath(parentID), userID, GrantAccessRequest{UserID: granteeID})
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// ListGrants returns the users allowed to manage the parent's methods.
func (c *SDKClient) ListGrants(ctx context.Context, userID, parentID string) ([]Grant, error) {
	resp, err := c.doJSONRequest(ctx, http.MethodGet, grantsPath(parentID), userID, nil)
	if err != nil {
		return nil, err
	}

	var listResp ListGrantsResponse
	if err := decodeJSON(resp, &listResp, http.StatusOK); err != nil {
		return nil, err
	}

	if listResp.Grants == nil {
		return []Grant{}, nil
	}
	return listResp.Grants, nil
}
