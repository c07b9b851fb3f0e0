// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/item, domain/stage) and
// the pure timeline aggregation engine lives in domain/timeline. This root
// package holds sentinel errors and validation types shared across all
// entities.
package domain
