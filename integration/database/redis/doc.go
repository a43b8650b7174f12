// Package redis provides Redis client initialization and health checking.
//
// Connect validates the connection URL, creates a go-redis client, and
// verifies connectivity with a ping before returning, retrying transient
// failures with exponential backoff. Configuration comes from environment
// variables through the Config struct:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// Healthcheck returns a probe function for readiness endpoints, mirroring
// the pg package.
package redis
