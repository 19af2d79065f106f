/*
Package paysdk provides a client SDK for the payment methods service.

# Overview

The service is the source of truth for every parent's payment methods. The SDK exposes the four
operations the registry needs plus grant management and health probes:

	client := paysdk.NewSDKClient("http://localhost:8080")

	methods, err := client.ListPaymentMethods(ctx, parentID)

	method, err := client.AddPaymentMethod(ctx, userID, parentID, "Visa ending 4242", "2026-10-19 09:30:00")

	method, err = client.SetActivePaymentMethod(ctx, userID, parentID, method.ID)

	err = client.DeletePaymentMethod(ctx, userID, parentID, otherID)

The acting user is sent in the X-User-ID header. The service does not authenticate it; it decides
whether the user may manage the parent from the parent's grants.

# Errors

Every failure is either a transport error wrapping ErrRemoteUnavailable or an *APIError carrying
the HTTP status and the service's error code. *APIError matches the package sentinels through
errors.Is:

	err := client.DeletePaymentMethod(ctx, userID, parentID, methodID)
	switch {
	case errors.Is(err, paysdk.ErrMethodActive):
		// activate another method first
	case errors.Is(err, paysdk.ErrNotFound):
		// already gone
	case errors.Is(err, paysdk.ErrRemoteUnavailable):
		// retry later
	}

Mutations return the service's view of the affected record, but callers that keep a local list
should re-list rather than patch it: activation changes the flag of another record too.
*/
package paysdk
