// Package queries contains read-only operations over orders: point status
// lookups, timeline reconstruction and dashboard aggregation. Queries never
// modify state and observe the two order logs strictly at read time.
package queries
