// Package notifier provides the local alert capability used by the sync core.
//
// [Desktop] shows alerts through the operating system's notification
// facility (beeep) and persists the user's permission decision in the client
// database so that a grant survives restarts. Alerts are rate limited; excess
// alerts within a burst are dropped rather than queued.
package notifier
