// Package api provides HTTP handlers for the task API.
//
// Handlers orchestrate the request flow: decode and validate the typed
// request body, call the store (through a request-scoped transaction for
// mutations), and map the result or error to a wire response. Protected
// endpoints rely on the auth middleware having resolved the caller first.
package api
