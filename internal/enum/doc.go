// Package enum resolves classification fields of the business-data wire
// protocol between their symbolic names and numeric codes.
//
// Every table is declared statically and never mutated after package init, so
// lookups are safe from any goroutine.
package enum
