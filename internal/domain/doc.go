// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds the sentinel errors and the error wrapper types that carry
// programmatic detail (missing id, per-field validation messages).
package domain
