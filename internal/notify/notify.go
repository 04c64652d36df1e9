// Package notify delivers fire-and-forget change notifications over
// Postgres LISTEN/NOTIFY. Consumers that miss a notification are expected
// to refresh on their own schedule; no delivery guarantee is made.
package notify

// Channel is the Postgres notification channel for reservation mutations.
// The payload is the id of the changed reservation.
const Channel = "reservation_changes"
