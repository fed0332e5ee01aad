// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

// Package syncer runs the synchronization tasks between the local state
// store and the assessment backend.
//
// Callers describe work as [Intent] values and hand them to
// [Syncer.Dispatch] (or feed a channel into [Syncer.Run]). Each intent
// spawns an independent unit of work; units are never serialized, not
// even for the same intent type, so two rapid answer submissions may
// interleave. This is safe because each unit touches a disjoint slice of
// the store, and because the backend session serializes the one shared
// critical section (credential renewal) internally.
//
// Tasks follow three shapes. Fetch-and-replace tasks call the backend and
// replace a store slice wholesale on success. Optimistic tasks apply a
// local mutation first and never revert it when the confirming round-trip
// fails; the divergence is surfaced as a warning only. Guarded tasks
// check a local precondition (typically the user's role) and short-circuit
// with a warning before any network I/O.
package syncer
