// Package aggregator collects contests from every source and keeps the ones
// starting within the announcement window.
package aggregator
