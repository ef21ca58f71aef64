// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Gradechain Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
)

// Revision - one entry of a record's versioned write log
type Revision struct {
	SeqNo   uint64
	Data    []byte
	Deleted bool
}

// version value flag byte
const (
	revisionPut    = 0x00
	revisionDelete = 0x01
)

// version keys are: record key + 0x00 + 8 byte big endian sequence
//
// record keys are dot-segmented ASCII so the 0x00 separator cannot
// collide, and the big endian sequence keeps revisions in write order
const versionSeparator = 0x00

func versionKeyFor(key []byte, seqNo uint64) []byte {
	versionKey := make([]byte, 0, len(key)+9)
	versionKey = append(versionKey, key...)
	versionKey = append(versionKey, versionSeparator)

	sequence := make([]byte, 8)
	binary.BigEndian.PutUint64(sequence, seqNo)
	return append(versionKey, sequence...)
}

// PutRecord - store a record and append a revision to its write log
func PutRecord(key []byte, value []byte) {
	Pool.Records.Put(key, value)
	appendRevision(key, value, revisionPut)
}

// DeleteRecord - tombstone a record, keeping its write log
func DeleteRecord(key []byte) {
	Pool.Records.Delete(key)
	appendRevision(key, nil, revisionDelete)
}

func appendRevision(key []byte, value []byte, flag byte) {
	seqNo, _ := Pool.VersionCounts.GetN(key)

	revision := make([]byte, 0, len(value)+1)
	revision = append(revision, flag)
	revision = append(revision, value...)

	Pool.Versions.Put(versionKeyFor(key, seqNo), revision)
	Pool.VersionCounts.PutN(key, seqNo+1)
}

// RecordHistory - every revision ever written or deleted for a key,
// oldest first
func RecordHistory(key []byte) ([]Revision, error) {
	start := make([]byte, 0, len(key)+1)
	start = append(start, key...)
	start = append(start, versionSeparator)

	end := make([]byte, 0, len(key)+1)
	end = append(end, key...)
	end = append(end, versionSeparator+1)

	history := []Revision{}

	cursor := Pool.Versions.NewFetchCursorRange(start, end)
	err := cursor.Map(func(versionKey []byte, value []byte) error {
		if len(versionKey) < 9 || 0 == len(value) {
			logger.Panicf("storage.RecordHistory truncated revision for: %q", key)
		}
		seqNo := binary.BigEndian.Uint64(versionKey[len(versionKey)-8:])

		data := make([]byte, len(value)-1)
		copy(data, value[1:])

		history = append(history, Revision{
			SeqNo:   seqNo,
			Data:    data,
			Deleted: revisionDelete == value[0],
		})
		return nil
	})
	if nil != err {
		return nil, err
	}
	return history, nil
}
