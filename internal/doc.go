// Package internal contains the implementation packages behind the quant CLI.
//
// # Package Organization
//
//   - config: Viper-backed configuration with field validation
//   - errors: Structured errors, catalog issue collection and suggestions
//   - logging: Structured logging on log/slog
//   - registry: Runtime unit registry with change events
//   - catalog: YAML unit catalogs and loading them into the registry
//   - watcher: Catalog file monitoring with debouncing
//   - expr: Expression grammar and dimension-checked evaluation
//   - format: Text, JSON and YAML output with locale-aware numbers
//   - version: Build information
//   - testutils: Helpers shared by tests
//
// # Data Flow
//
// The cmd package loads configuration, builds a registry of the built-in
// units from pkg/quantity, loads catalogs into it and hands the registry to
// the evaluator. The watcher reloads catalogs in place; registry events
// report what changed.
package internal
