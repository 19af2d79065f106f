/*
Package registry keeps a local, always-consistent view of each parent's payment methods.

The payment methods service is the source of truth. The registry never patches its view from
a mutation's response: every successful activate, add or delete invalidates the parent's cached
list and re-reads it. Activating one method deactivates the previous one on the server, so the
client only ever observes that transition through a fresh list.

	reg := registry.New(paysdk.NewSDKClient(baseURL), registry.Options{Logger: logger})

	methods, err := reg.List(ctx, parentID)
	_, err = reg.Activate(ctx, userID, parentID, methodID)
	state := reg.State(parentID) // refreshed snapshot, Busy/Stale flags

A list response with more than one active method is rejected as a failed refresh, and on any
failure the last good snapshot stays in place, marked stale. Responses to superseded list
requests are dropped so the newest request always wins.

Workflow and AddForm sit on top of a Registry for a single user and parent: they carry the add
form's input and submission state and build the rows a front-end renders, including whether the
activate and delete controls are offered and enabled.
*/
package registry
