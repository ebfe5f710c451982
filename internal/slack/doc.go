// Package slack renders contests as a Slack Block Kit message and posts it to an
// incoming webhook.
//
// Rendering is pure: the same contests always produce the same message. Contests
// are grouped by host in a fixed order, and start times are shown in Tokyo time
// with Japanese weekday names.
package slack
