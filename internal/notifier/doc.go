// Package notifier delivers the weekly contest digest.
//
// A Notifier receives the contests selected for the coming week. The Slack
// notifier renders them as a Block Kit message and posts it to an incoming
// webhook; the dry-run notifier writes the same payload to a writer so it can
// be inspected without sending anything.
package notifier
