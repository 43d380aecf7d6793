// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the catalog service.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuer and permission codenames.
  - Routing: Versioned URL prefixes used to build self links.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "catalog-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "catalog.local"

	// PermChangeConcept grants full visibility of, and write access to, concepts.
	PermChangeConcept = "avocado.change_dataconcept"

	// PermChangeField grants full visibility of, and write access to, fields.
	PermChangeField = "avocado.change_datafield"
)

// # Routing

const (
	// APIPrefix is the versioned mount point of every domain router.
	APIPrefix = "/api/v1"

	// ConceptsPath is the collection route of the concept resource.
	ConceptsPath = APIPrefix + "/concepts"

	// FieldsPath is the collection route of the field resource.
	FieldsPath = APIPrefix + "/fields"
)

// # Search

const (
	// SearchBackendNone disables the free-text query parameter.
	SearchBackendNone = "none"

	// SearchBackendPostgres uses PostgreSQL full-text search.
	SearchBackendPostgres = "postgres"

	// MaxSearchQueryLength bounds the free-text query in characters.
	MaxSearchQueryLength = 200
)

// # HTTP Headers

const (
	HeaderXRequestID      = "X-Request-ID"
	HeaderXRealIP         = "X-Real-IP"
	HeaderXForwardedFor   = "X-Forwarded-For"
	HeaderXForwardedProto = "X-Forwarded-Proto"
	HeaderXForwardedHost  = "X-Forwarded-Host"
	HeaderOrigin          = "Origin"
	HeaderAllow           = "Allow"
)

// ReadOnlyMethods lists the methods accepted by every catalog resource.
const ReadOnlyMethods = "GET, HEAD, OPTIONS"

// # JSON Field Identifiers

const (
	FieldError  = "error"
	FieldCode   = "code"
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixConceptFields = "catalog:concept_fields:"
)
