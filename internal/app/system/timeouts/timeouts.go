// Package timeouts centralizes the context deadlines for database I/O.
//
// Every store method wraps its context with one of these tiers, so a wedged
// database surfaces as a contained request error instead of a hung
// connection.
//
// Tiers:
//   - Ping: health-check connectivity probes
//   - Short: single-document reads (hero, navbar, a project by id)
//   - Medium: list reads and simple writes
//   - Long: multi-step writes (id allocation + insert, aggregate retries, bulk reorders)
package timeouts

import "time"

const (
	Ping   = 2 * time.Second
	Short  = 5 * time.Second
	Medium = 10 * time.Second
	Long   = 30 * time.Second
)
