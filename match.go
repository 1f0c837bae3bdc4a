// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

// findLongestMatch walks the chained search index backward from end, looking
// for the longest run in [start, end) that predicts buffer[end:end+maxlen].
// It returns the match's distance back from end (end minus the match's
// buffer position) and its length, and whether the match clears the
// break-even threshold (below which a literal is cheaper).
//
// The chain walk and fast-reject-by-probe-byte shape follow the teacher's
// hash-chain matcher (see sliding_window.go's searchBestMatch in the
// woozymasta/lzo reference): walk candidates newest-first, reject cheaply by
// comparing the byte just past the current best length before doing a full
// scan, and stop early once no further improvement is possible.
func (w *Writer) findLongestMatch(start, end, maxlen int) (pos, length int, ok bool) {
	matchMaxLen := 0
	matchIndex := 0

	for p := int(w.searchIndex[end]); p >= start; p = int(w.searchIndex[p]) {
		if w.buffer[p+matchMaxLen] != w.buffer[end+matchMaxLen] {
			continue
		}

		ml := 0
		for ml = 1; ml < maxlen; ml++ {
			if w.buffer[p+ml] != w.buffer[end+ml] {
				break
			}
		}

		if ml > matchMaxLen {
			matchMaxLen = ml
			matchIndex = p
			if ml == maxlen {
				break
			}
		}
	}

	breakEven := (1 + int(w.windowSz2) + int(w.lookaheadSz2)) / 8
	if matchMaxLen > breakEven {
		return end - matchIndex, matchMaxLen, true
	}
	return 0, 0, false
}
