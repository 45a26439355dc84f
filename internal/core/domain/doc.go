// Package domain holds the types shared by every layer: the Report printed
// for a solved day, the RunRecord kept in history, AppSettings and the
// sentinel errors. It imports nothing outside the standard library.
package domain
