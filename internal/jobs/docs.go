// Package jobs provides scheduled background tasks for the fulfillment service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and log through logrus.
//
// # Available Jobs
//
// PendingOrderExpiryJob rejects orders a restaurant has not answered within the
// configured TTL, with the reason "Restaurant did not respond in time".
// Orders accepted, rejected or cancelled while a pass is running are skipped.
//
// # Usage
//
//	expiry := jobs.NewPendingOrderExpiryJob(&handler, jobs.PendingOrderExpiryConfig{
//		Schedule:  "@every 1m",
//		TTL:       30 * time.Minute,
//		BatchSize: 100,
//	}, logger)
//
//	jobManager := jobs.NewJobManager(expiry)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal(err)
//	}
//	defer jobManager.StopAll()
package jobs
