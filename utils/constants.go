// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis identity cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for identity cache entries.
const AuthCacheTTL = 10 * time.Minute

// StripeCustomerPrefix is the prefix used for cached payment-provider
// customer IDs, keyed by user ID.
const StripeCustomerPrefix = "stripeCustomer:"
