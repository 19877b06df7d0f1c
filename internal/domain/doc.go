// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (symbols, messages, errors) and contracts
// (interfaces) only.
package domain
