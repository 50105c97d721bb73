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

// noChild marks an empty slot in a node's children array.
const noChild = int32(-1)

// node is one stride-sized trie level. Nodes live in the trie's arena
// slice; children hold arena indices rather than pointers, which keeps
// the tree in one allocation run and traversal cache-friendly.
//
// nextHop is only meaningful while hasRoute is true; a next hop of 0 is
// a legitimate value and must not double as "unset". routeLen records
// the prefix length that produced the route. Lookup never reads it; it
// exists so that leaf-pushed writes keep specificity ordering when
// prefixes arrive out of order.
type node struct {
	children []int32
	nextHop  uint32
	routeLen int8
	hasRoute bool
}

// newNode appends a fresh node with 2^stride empty child slots to the
// arena and returns its index.
func (t *Trie) newNode() int32 {
	children := make([]int32, 1<<uint(t.stride))
	for i := range children {
		children[i] = noChild
	}
	t.nodes = append(t.nodes, node{children: children, routeLen: -1})
	return int32(len(t.nodes) - 1)
}

// childAt returns the arena index of child slot idx under parent,
// creating the child when create is set.
func (t *Trie) childAt(parent int32, idx int, create bool) int32 {
	c := t.nodes[parent].children[idx]
	if c == noChild && create {
		c = t.newNode()
		t.nodes[parent].children[idx] = c
	}
	return c
}
