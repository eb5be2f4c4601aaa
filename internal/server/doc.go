// Package server wires configuration, logging, metrics, the service
// registry and the HTTP routes into a runnable server.
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger (production or development)
//  3. Create metrics and the service registry
//  4. Register the OPN provider
//  5. Setup HTTP routes and middleware
//  6. Serve until the context is cancelled, then shut down gracefully
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv, err := server.NewServer(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer srv.Close()
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	err = srv.Run(ctx)
package server
