package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// Ledger backends. The in-memory ledger is the single source of truth by
	// default; the mongo backend persists the same field set.
	BackendMemory = "memory"
	BackendMongo  = "mongo"

	DefaultLedgerBackend = BackendMemory

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "innkeep"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultKafkaBookingTopic = "booking-events"

	DefaultRoomLockTimeout = 5 * time.Second

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPaginationLimit = 100
)
