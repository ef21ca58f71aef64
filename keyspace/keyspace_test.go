// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyspace_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradechain/gradebookd/fault"
	"github.com/gradechain/gradebookd/keyspace"
)

// deriving from the same payload twice must give the same key
func TestDeriveSubjectIDIsDeterministic(t *testing.T) {
	payload := []byte(`{"leader":"t1","updatedAt":1000,"createdAt":1000,"students":["s1"],"name":"Math","description":""}`)

	first := keyspace.DeriveSubjectID(payload)
	second := keyspace.DeriveSubjectID(payload)

	assert.Equal(t, first, second, "derivation is not deterministic")
	assert.True(t, strings.HasPrefix(first, "subject."), "wrong key prefix")

	segments := strings.Split(first, ".")
	assert.Equal(t, 2, len(segments), "wrong segment count")
	assert.Equal(t, 64, len(segments[1]), "wrong digest length")
}

func TestDeriveGradeID(t *testing.T) {
	subjectKey := keyspace.DeriveSubjectID([]byte("subject payload"))
	subjectHash, err := keyspace.SubjectHashOf(subjectKey)
	assert.Nil(t, err, "subject hash error")

	gradeKey, err := keyspace.DeriveGradeID(subjectKey, "s1", []byte("grade payload"))
	assert.Nil(t, err, "derive error")

	again, err := keyspace.DeriveGradeID(subjectKey, "s1", []byte("grade payload"))
	assert.Nil(t, err, "derive error")
	assert.Equal(t, gradeKey, again, "derivation is not deterministic")

	segments := strings.Split(gradeKey, ".")
	assert.Equal(t, 4, len(segments), "wrong segment count")
	assert.Equal(t, "grade", segments[0], "wrong type segment")
	assert.Equal(t, subjectHash, segments[1], "wrong subject hash segment")
	assert.Equal(t, "s1", segments[2], "wrong student segment")
}

func TestDeriveGradeIDRejectsBadSubjectKey(t *testing.T) {
	_, err := keyspace.DeriveGradeID("not-a-key", "s1", []byte("x"))
	assert.True(t, fault.IsErrInvalid(err), "expected invalid error, got: %v", err)
}

func TestTypeOf(t *testing.T) {
	recordType, err := keyspace.TypeOf("subject.abc")
	assert.Nil(t, err, "type error")
	assert.Equal(t, "subject", recordType, "wrong type")

	recordType, err = keyspace.TypeOf("grade.h.s.g")
	assert.Nil(t, err, "type error")
	assert.Equal(t, "grade", recordType, "wrong type")

	_, err = keyspace.TypeOf("nodot")
	assert.True(t, fault.IsErrInvalid(err), "expected invalid error, got: %v", err)
}

func TestSubjectHashOf(t *testing.T) {
	hash, err := keyspace.SubjectHashOf("subject.abc")
	assert.Nil(t, err, "hash error")
	assert.Equal(t, "abc", hash, "wrong hash")

	hash, err = keyspace.SubjectHashOf("grade.def.s1.ghi")
	assert.Nil(t, err, "hash error")
	assert.Equal(t, "def", hash, "wrong hash")

	_, err = keyspace.SubjectHashOf("plain")
	assert.True(t, fault.IsErrInvalid(err), "expected invalid error, got: %v", err)
}

func TestOwnerStudentOf(t *testing.T) {
	owner, err := keyspace.OwnerStudentOf("grade.h.s1.g")
	assert.Nil(t, err, "owner error")
	assert.Equal(t, "s1", owner, "wrong owner")

	invalid := []string{
		"grade.h.s1",
		"grade.h.s1.g.extra",
		"grade.h",
		"grade",
	}
	for _, key := range invalid {
		_, err := keyspace.OwnerStudentOf(key)
		assert.True(t, fault.IsErrInvalid(err), "key: %q expected invalid error, got: %v", key, err)
	}
}

func TestRangeEnd(t *testing.T) {
	assert.Equal(t, "subject/", keyspace.RangeEnd("subject."), "wrong bound")
	assert.Equal(t, "grade.h/", keyspace.RangeEnd("grade.h."), "wrong bound")
	assert.Equal(t, "grade.h/", keyspace.RangeEnd("grade.h"), "wrong bound")

	// the bound must sort immediately after every key under the prefix
	prefix := "grade.h."
	end := keyspace.RangeEnd(prefix)
	assert.True(t, prefix < end, "bound does not sort after prefix")
	assert.True(t, prefix+"zzz" < end, "bound does not cover prefixed keys")
	assert.True(t, "grade.i." > end, "bound overlaps the next subject hash")
}

// a corpus of distinct payloads must not collide
func TestDerivationUniqueness(t *testing.T) {
	seen := make(map[string]int)
	for i := 0; i < 1000; i += 1 {
		payload := []byte(fmt.Sprintf(`{"leader":"t1","name":"subject %d"}`, i))
		key := keyspace.DeriveSubjectID(payload)
		if previous, ok := seen[key]; ok {
			t.Fatalf("payload %d collides with payload %d on key %s", i, previous, key)
		}
		seen[key] = i
	}
}

func TestDigestText(t *testing.T) {
	digest := keyspace.NewDigest([]byte("round trip"))

	text, err := digest.MarshalText()
	assert.Nil(t, err, "marshal error")

	var restored keyspace.Digest
	err = restored.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, digest, restored, "digest round trip failed")

	err = restored.UnmarshalText([]byte("abc"))
	assert.NotNil(t, err, "expected length error")
}
