// Package route models collection routes and their stops.
//
// A Route is scheduled by a company, started and completed by its driver,
// and holds an ordered list of Stop entities. Stop operations (arrive,
// complete, skip) are applied through the Route so that the completed stop
// counter is always derived from the stops themselves.
package route
