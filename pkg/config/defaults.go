package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "SRevent"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort        = "5000"
	DefaultLogLevel    = "info"
	DefaultEnvironment = Development

	DefaultCORSAllowedOrigins = "http://localhost:3000"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultAuditTopic = "resource-events"
)

const (
	Development = "development"
	Production  = "production"
)
