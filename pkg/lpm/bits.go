/*
 * Copyright (C) 2023 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package lpm

// Normalize left-aligns a prefix value so that only the top length bits
// carry content and everything below is zero. Input may already be
// left-aligned, or right-aligned / compact: if any bit below the top
// length bits is set, the value is treated as right-aligned and shifted
// up. Normalize is idempotent; a normalized value has zero low bits and
// passes through unchanged.
func Normalize(prefix uint32, length int) uint32 {
	if length <= 0 {
		return 0
	}
	if length >= 32 {
		// shifting a uint32 by 32 is not defined; /32 needs no alignment
		return prefix
	}
	low := uint32(1)<<(32-length) - 1
	if prefix&low != 0 {
		prefix <<= uint(32 - length)
	}
	return prefix &^ low
}

// extractBits returns the num bits of v starting at start, MSB-first:
// bit 0 is the most significant bit of the 32-bit value.
func extractBits(v uint32, start, num int) int {
	return int(v >> uint(32-start-num) & (1<<uint(num) - 1))
}
