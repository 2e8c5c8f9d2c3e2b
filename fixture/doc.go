/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package fixture provisions the DynamoDB tables the compatibility
// checks run against. Tables are created on demand with unique names,
// use on-demand billing, and are deleted when the run finishes.
//
// The package also ships a deterministic pre-filled data set whose
// exact contents the read checks assert against.
package fixture
