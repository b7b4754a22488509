// Where to Dine - Reachable Hotspot Restaurant Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wheretodine

// Package supervisor runs long-lived services under a suture supervisor
// tree. The tree has one child layer, api, which hosts the HTTP server.
// Supervisor events are logged through sutureslog and the zerolog slog
// bridge.
package supervisor
