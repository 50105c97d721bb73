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

import "fmt"

// Entry is one routing table row: the top Length bits of Prefix map to
// NextHop. Prefix is kept left-aligned; bits below Length are zero.
type Entry struct {
	Prefix  uint32
	Length  int
	NextHop uint32
}

func (e Entry) String() string {
	return fmt.Sprintf("0x%08X/%d -> %d", e.Prefix, e.Length, e.NextHop)
}
