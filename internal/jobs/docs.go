// Package jobs runs the scheduled background work of the collection
// service on github.com/robfig/cron/v3.
//
// RequestAssignmentJob picks the oldest pending collection request on each
// tick and hands it to the assignment policy. "Nothing pending" and "no
// eligible vehicle" are normal outcomes and are not logged as errors.
//
//	jobManager := jobs.NewJobManager(assignPendingHandler, cfg.AutoAssignSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer jobManager.StopAll()
package jobs
