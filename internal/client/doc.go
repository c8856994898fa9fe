// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the auth server.
//
// Every invocation runs exactly one sub-command against the server through
// an [adapter.ServerAdapter]. The process keeps no state between runs: the
// access token printed by "login" is passed back with -token or the
// GOPASSAUTH_TOKEN environment variable.
package client
