// Package contest defines the canonical representation of an upcoming programming contest.
//
// Every source adapter converts its own schema into Contest values. A Contest always stores
// its start time in UTC, so contests from different hosts can be compared and filtered
// without knowing where they came from. The package also owns the fixed host ordering and
// the relevance window used to decide which contests are worth announcing.
package contest
