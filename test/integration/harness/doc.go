// Package harness provides utilities for integration testing the hyprstash CLI.
// It handles binary compilation, environment isolation, command execution and
// a fake Hyprland instance answering on a real unix socket.
//
// Environment variables managed:
//   - HYPRSTASH_HOME: Isolated per test (temp directory)
//   - HYPRSTASH_DEBUG: Disabled to reduce noise
//   - HYPRLAND_INSTANCE_SIGNATURE, XDG_RUNTIME_DIR: Point at the fake Hyprland, or at nothing
package harness
