// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

// Package backend wraps the assessment backend's HTTP API for the Praxis
// synchronization layer.
//
// The package provides two core types. [Client] is an unauthenticated
// client holding the backend root URL and HTTP transport. [Session] wraps
// a Client with the credential pair (access token plus refresh token) and
// implements the authenticated-request protocol: every call attaches the
// access token as a bearer header, a 401 on a renewal-eligible endpoint
// triggers exactly one token renewal and one retry, and persistent
// authorization failure degrades to a forced logout (credentials cleared,
// warning shown, navigation back to the login route).
//
// Concurrent 401s share a single in-flight renewal: the first caller
// performs the exchange against POST auth/refresh, later callers wait on
// it and adopt its outcome, and the credential pair is replaced at most
// once per renewal.
//
// On top of Call sit the domain request functions, one per backend
// resource (FetchAssessment, SubmitAnswer, FetchGradingOverviews, ...).
// Each builds a path, method and body from typed inputs and reshapes the
// decoded JSON into the local data model: the server's lowercase "type"
// field becomes the capitalized "category", programming questions get
// defaulted collections, library descriptors are normalized and their
// global bindings evaluated in a sandbox (see package exprval), and
// grading rows carry current = initial + adjustment for both grade and XP.
//
// Mutating endpoints whose failure must leave the user's input intact
// (answer submit, assessment submit, grade submit, unsubmit, sourcecast
// upload) opt out of forced logout and hand the raw non-2xx [Response]
// back to the caller for in-context warnings.
package backend
