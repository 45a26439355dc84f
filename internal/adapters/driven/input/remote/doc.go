// Package remote downloads puzzle inputs from adventofcode.com.
//
// Requests carry the user's session cookie and are throttled to one every
// five seconds. CachingSource writes each download next to the local inputs
// so a day is fetched at most once.
package remote
