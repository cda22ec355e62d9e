// Package domain contains the core domain model for fqcnfix.
//
// The domain is filesystem- and CLI-agnostic: it does not depend on YAML parsing,
// os, or cobra. Infra/adapters map into/from these types.
package domain
