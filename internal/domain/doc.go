// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/run). This root package
// holds the sentinel errors and validation types shared by all of them.
package domain
