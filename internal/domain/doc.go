// Package domain holds the core data model of the sentiment pipeline and the
// contracts between its components. It depends on no other internal package so
// every component can share these types without cycles.
package domain
