package nifi

import "time"

const (
	// DefaultBaseURL is the default NiFi REST API endpoint
	DefaultBaseURL = "https://localhost:8443/nifi-api"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries bounds transport-level retries for read operations
	DefaultMaxRetries = 3

	// RootGroupID is the well-known identifier of the root process group
	RootGroupID = "root"

	// DefaultBundleVersion is used for extension-repository documentation lookups
	DefaultBundleVersion = "1.20.0"
)
