package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-p listen port
//	-d database DSN
//	-u upload directory for product images
//	-stripe-key payment provider secret key
//	-c/-config json file path with configs
//	-db-min-conns minimum pooled connections
//	-db-max-conns maximum pooled connections
//	-db-acquire-timeout pool acquisition timeout (e.g., "5s")
//	-db-query-timeout single statement timeout (e.g., "10s")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var port int
	var databaseDSN string
	var uploadDir string
	var stripeSecretKey string
	var jsonConfigPath string
	var minConns, maxConns int
	var acquireTimeout time.Duration
	var queryTimeout time.Duration
	var requestTimeout time.Duration

	flag.IntVar(&port, "p", 0, "HTTP listen port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&uploadDir, "u", "", "Upload directory for product images")
	flag.StringVar(&stripeSecretKey, "stripe-key", "", "Stripe secret key")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&minConns, "db-min-conns", 0, "Minimum pooled DB connections")
	flag.IntVar(&maxConns, "db-max-conns", 0, "Maximum pooled DB connections")
	flag.DurationVar(&acquireTimeout, "db-acquire-timeout", 0, "Pool acquisition timeout (e.g., 5s)")
	flag.DurationVar(&queryTimeout, "db-query-timeout", 0, "Statement timeout (e.g., 10s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Payments: Payments{
			StripeSecretKey: stripeSecretKey,
		},
		Storage: Storage{
			DB: DB{
				DSN:            databaseDSN,
				MinConns:       minConns,
				MaxConns:       maxConns,
				AcquireTimeout: acquireTimeout,
				QueryTimeout:   queryTimeout,
			},
			Files: Files{
				UploadDir: uploadDir,
			},
		},
		Server: Server{
			Port:           port,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
