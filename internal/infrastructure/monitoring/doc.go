/*
Package monitoring provides metrics collection for the OPN server.

Each Metrics value owns a Prometheus registry, so several collectors can
coexist in one process (tests construct one per case).

# Usage

	metrics := monitoring.NewMetrics()

	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "opn", "opn.ln")
	// ... execute tool ...
	timer.Stop("success")
	metrics.RecordToolError("opn", "opn.ln", "domain")
*/
package monitoring
