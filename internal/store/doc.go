// Package store provides the optional SQLite history of generated URLs.
//
// The history exists so a generated link can be found again later; losing a
// write never blocks URL generation. One connection, WAL mode.
package store
