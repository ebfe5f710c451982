// Package scraper fetches upcoming contests from each supported host.
//
// Every host has its own adapter implementing Source. The AtCoder adapter scrapes
// the upcoming-contest table from the AtCoder home page with goquery; the Codeforces
// adapter reads the public contest.list API. Adapters convert their host's times to
// UTC and fail the whole fetch on the first row they cannot understand, because a
// layout change upstream should be noticed rather than silently skipped.
package scraper
