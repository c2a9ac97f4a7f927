// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "strconv"

// =============================================================================
// SHARED HELPER FUNCTIONS
// =============================================================================

// fmtNumber formats a number with thousand separators.
func fmtNumber(n int) string {
	if n < 0 {
		return "-" + fmtNumber(-n)
	}

	s := strconv.Itoa(n)
	if n < 1000 {
		return s
	}

	result := ""
	count := 0
	for i := len(s) - 1; i >= 0; i-- {
		if count > 0 && count%3 == 0 {
			result = "," + result
		}
		result = string(s[i]) + result
		count++
	}
	return result
}

// fmtPercent formats a ratio as a whole percentage, e.g. 0.87 -> "87%".
// Values outside [0, 1] render literally: 1.2 -> "120%". Upstream confidence
// scores are deliberately not clamped here.
func fmtPercent(ratio float64) string {
	rounded := int(ratio*100 + 0.5)
	if ratio < 0 {
		rounded = int(ratio*100 - 0.5)
	}
	return strconv.Itoa(rounded) + "%"
}
