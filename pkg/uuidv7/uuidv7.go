// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered identifiers.
//
// Request IDs use it so log lines sort by arrival when grepped by ID prefix.
package uuidv7

import "github.com/google/uuid"

// New generates a UUIDv7 string. If the time-ordered generator fails it
// returns a random UUIDv4 instead.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
