// Package cli implements the command-line interface for contest-digest.
//
// The cli package provides the Cobra-based CLI. The root command collects the
// coming week's contests and posts the digest to Slack; list prints the
// collected contests (text/JSON, sorted by date/host/name); schedule repeats the
// digest on a cron spec. It coordinates the config, scraper, aggregator and
// notifier packages and pushes run metrics when a Pushgateway is configured.
package cli
