// Package fleet is the read model of the company registry: companies,
// their vehicles and their drivers.
package fleet
