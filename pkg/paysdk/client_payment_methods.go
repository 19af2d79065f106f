package paysdk

import (
	"context"
	"net/http"
	"net/url"
)

func parentPath(parentID string) string {
	return "/v1/parents/" + url.PathEscape(parentID) + "/payment-methods"
}

func methodPath(parentID, methodID string) string {
	return parentPath(parentID) + "/" + url.PathEscape(methodID)
}

// ListPaymentMethods returns the parent's payment methods in the service's order.
// A parent with no methods yields an empty slice.
func (c *SDKClient) ListPaymentMethods(ctx context.Context, parentID string) ([]PaymentMethod, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, parentPath(parentID), nil, nil)
	if err != nil {
		return nil, err
	}

	var listResp ListPaymentMethodsResponse
	if err := decodeJSON(resp, &listResp, http.StatusOK); err != nil {
		return nil, err
	}

	if listResp.PaymentMethods == nil {
		return []PaymentMethod{}, nil
	}
	return listResp.PaymentMethods, nil
}

// SetActivePaymentMethod makes methodID the parent's only active method.
func (c *SDKClient) SetActivePaymentMethod(
	ctx context.Context,
	userID, parentID, methodID string,
) (*PaymentMethod, error) {
	resp, err := c.doJSONRequest(ctx, http.MethodPost, methodPath(parentID, methodID)+"/activate", userID, nil)
	if err != nil {
		return nil, err
	}

	var method PaymentMethod
	if err := decodeJSON(resp, &method, http.StatusOK); err != nil {
		return nil, err
	}

	return &method, nil
}

// AddPaymentMethod creates an inactive method. createdAt is stored verbatim.
func (c *SDKClient) AddPaymentMethod(
	ctx context.Context,
	userID, parentID, label, createdAt string,
) (*PaymentMethod, error) {
	req := AddPaymentMethodRequest{
		Label:     label,
		CreatedAt: createdAt,
	}

	resp, err := c.doJSONRequest(ctx, http.MethodPost, parentPath(parentID), userID, req)
	if err != nil {
		return nil, err
	}

	var method PaymentMethod
	if err := decodeJSON(resp, &method, http.StatusCreated); err != nil {
		return nil, err
	}

	return &method, nil
}

// DeletePaymentMethod removes an inactive method. Deleting the active method
// fails with ErrMethodActive.
func (c *SDKClient) DeletePaymentMethod(ctx context.Context, userID, parentID, methodID string) error {
	resp, err := c.doJSONRequest(ctx, http.MethodDelete, methodPath(parentID, methodID), userID, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
