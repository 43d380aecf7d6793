// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package commalist parses comma-separated values such as EXTRA_ORIGINS or
// the X-Forwarded-* headers added by each proxy hop.
package commalist

import "strings"

// Split returns the trimmed, non-empty entries of val.
func Split(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		if clean := strings.TrimSpace(v); clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// First returns the first trimmed entry of val, or "" if there is none.
func First(val string) string {
	head, _, _ := strings.Cut(val, ",")
	return strings.TrimSpace(head)
}
