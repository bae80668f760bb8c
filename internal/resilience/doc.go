// Package resilience groups the fault tolerance helpers used around the
// database: a circuit breaker that stops hammering an unavailable database
// from listing requests, and retry with backoff for connecting at startup.
//
//	dcb := circuitbreaker.NewDBCircuitBreaker(db)
//	rows, err := dcb.QueryContext(ctx, "SELECT ...")
//
//	err := retry.WithBackoff(ctx, retry.StartupConfig(), func() error {
//	    return db.PingContext(ctx)
//	})
package resilience
