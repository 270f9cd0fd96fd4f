// Package api defines the request and response messages exchanged with the
// MoneyQuest RPC services. Messages are plain structs encoded as JSON.
package api
