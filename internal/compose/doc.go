// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package compose resolves an option map into a webpack configuration.
//
// Features contribute fragments per target. Fragments of one target merge
// by priority; rule targets are assembled into module.rules and common
// targets become top-level keys. The result is merged over the base
// template and under the caller's raw configs.
package compose
