// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"os"
	"slices"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"github.com/praxis-foundation/praxis/backend"
)

// Snapshot file layout: an 8-byte magic, a 32-byte BLAKE3 checksum of
// the compressed payload, then the zstd-compressed CBOR payload. The
// checksum catches truncated or tampered files before any decoding
// happens. Credentials are deliberately not part of the snapshot; they
// live only in the session.
const snapshotMagic = "PRAXSNP1"

const snapshotHeaderSize = len(snapshotMagic) + 32

// snapshot is the CBOR shape of the persisted domain state.
type snapshot struct {
	User                *backend.User                       `cbor:"user,omitempty"`
	AssessmentOverviews []backend.AssessmentOverview        `cbor:"assessmentOverviews,omitempty"`
	Assessments         []backend.Assessment                `cbor:"assessments,omitempty"`
	CurrentAssessment   *int64                              `cbor:"currentAssessment,omitempty"`
	GradingOverviews    []backend.GradingOverview           `cbor:"gradingOverviews,omitempty"`
	Gradings            map[int64][]backend.GradingQuestion `cbor:"gradings,omitempty"`
	Notifications       []backend.Notification              `cbor:"notifications,omitempty"`
	SourcecastIndex     []backend.SourcecastEntry           `cbor:"sourcecastIndex,omitempty"`
}

// Save writes the store's domain state to path atomically (write to a
// temporary file, then rename). The state is deep-copied under the
// mutex before encoding, so Save is safe while tasks keep writing.
func (m *Memory) Save(path string) error {
	m.mu.Lock()
	state := snapshot{
		AssessmentOverviews: slices.Clone(m.assessmentOverviews),
		GradingOverviews:    slices.Clone(m.gradingOverviews),
		Gradings:            make(map[int64][]backend.GradingQuestion, len(m.gradings)),
		Notifications:       slices.Clone(m.notifications),
		SourcecastIndex:     slices.Clone(m.sourcecastIndex),
	}
	if m.user != nil {
		user := *m.user
		state.User = &user
	}
	if m.currentAssessment != nil {
		id := *m.currentAssessment
		state.CurrentAssessment = &id
	}
	for id, questions := range m.gradings {
		state.Gradings[id] = slices.Clone(questions)
	}
	for _, assessment := range m.assessments {
		assessment.Questions = slices.Clone(assessment.Questions)
		state.Assessments = append(state.Assessments, assessment)
	}
	m.mu.Unlock()

	payload, err := cbor.Marshal(state)
	if err != nil {
		return fmt.Errorf("store: encoding snapshot: %w", err)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("store: creating compressor: %w", err)
	}
	compressed := encoder.EncodeAll(payload, nil)
	encoder.Close()

	checksum := blake3.Sum256(compressed)

	var file bytes.Buffer
	file.Grow(snapshotHeaderSize + len(compressed))
	file.WriteString(snapshotMagic)
	file.Write(checksum[:])
	file.Write(compressed)

	temporary := path + ".tmp"
	if err := os.WriteFile(temporary, file.Bytes(), 0o600); err != nil {
		return fmt.Errorf("store: writing snapshot: %w", err)
	}
	if err := os.Rename(temporary, path); err != nil {
		os.Remove(temporary)
		return fmt.Errorf("store: replacing snapshot: %w", err)
	}
	return nil
}

// Load replaces the store's domain state with a previously saved
// snapshot.
func (m *Memory) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("store: reading snapshot: %w", err)
	}
	if len(raw) < snapshotHeaderSize || string(raw[:len(snapshotMagic)]) != snapshotMagic {
		return fmt.Errorf("store: %s is not a snapshot file", path)
	}

	stored := raw[len(snapshotMagic):snapshotHeaderSize]
	compressed := raw[snapshotHeaderSize:]
	checksum := blake3.Sum256(compressed)
	if subtle.ConstantTimeCompare(stored, checksum[:]) != 1 {
		return fmt.Errorf("store: snapshot %s failed checksum verification", path)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return fmt.Errorf("store: creating decompressor: %w", err)
	}
	defer decoder.Close()
	payload, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return fmt.Errorf("store: decompressing snapshot: %w", err)
	}

	var state snapshot
	if err := cbor.Unmarshal(payload, &state); err != nil {
		return fmt.Errorf("store: decoding snapshot: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = state.User
	m.assessmentOverviews = state.AssessmentOverviews
	m.assessments = make(map[int64]backend.Assessment, len(state.Assessments))
	for _, assessment := range state.Assessments {
		m.assessments[assessment.ID] = assessment
	}
	m.currentAssessment = state.CurrentAssessment
	m.gradingOverviews = state.GradingOverviews
	m.gradings = state.Gradings
	m.notifications = state.Notifications
	m.sourcecastIndex = state.SourcecastIndex
	if m.gradings == nil {
		m.gradings = make(map[int64][]backend.GradingQuestion)
	}
	return nil
}
