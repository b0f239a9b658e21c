// Package utils contains loose value conversions shared by the HTTP handlers
// and the database stock reader.
package utils
