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

// Package lpm implements longest-prefix-match lookup over 32-bit
// addresses: a multibit trie with configurable stride and leaf-pushing
// insertion, plus a linear-scan reference table used as a correctness
// oracle against it.
package lpm

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrInvalidStride rejects trie construction with a stride outside {1,2,4,8}.
	ErrInvalidStride = errors.New("stride must be 1, 2, 4, or 8")
	// ErrInvalidLength rejects insertion of a prefix length outside [0,32].
	ErrInvalidLength = errors.New("prefix length must be between 0 and 32")
)

// Trie is a multibit trie mapping 32-bit addresses to next-hop
// identifiers by longest prefix match. Each level consumes stride bits
// of the address MSB-first. Shorter-than-stride prefix tails are
// leaf-pushed into every child slot they cover, so Lookup never needs a
// prefix length to decide specificity: deeper always means more
// specific.
//
// Build the trie single-threaded, then treat it as read-only; lookups
// do not mutate it, so concurrent readers are safe once insertion is
// done.
type Trie struct {
	nodes  []node
	stride int
}

const rootIdx = int32(0)

// New creates an empty trie. Stride must be 1, 2, 4 or 8.
func New(stride int) (*Trie, error) {
	switch stride {
	case 1, 2, 4, 8:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStride, stride)
	}
	log.Debugf("new multibit trie, stride = %d", stride)
	t := &Trie{stride: stride}
	t.newNode() // root, depth 0
	return t, nil
}

// Stride returns the number of address bits consumed per level.
func (t *Trie) Stride() int {
	return t.stride
}

// Insert adds the top length bits of prefix as a route to nextHop.
// The prefix may be supplied in any alignment; see Normalize.
//
// Equal (prefix, length) pairs are last-inserted-wins: insertion order
// is part of the contract for duplicate-length conflicts.
func (t *Trie) Insert(prefix uint32, length int, nextHop uint32) error {
	if length < 0 || length > 32 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	prefix = Normalize(prefix, length)

	if length == 0 {
		// default route lives at the root; last insert wins
		t.setRoute(rootIdx, nextHop, 0)
		return nil
	}

	cur := rootIdx
	consumed := 0
	for consumed+t.stride <= length {
		idx := extractBits(prefix, consumed, t.stride)
		cur = t.childAt(cur, idx, true)
		consumed += t.stride
	}

	if consumed == length {
		// prefix ends exactly on a stride boundary; any route already
		// here is equal or shorter, so the new one always lands
		t.setRoute(cur, nextHop, length)
		return nil
	}

	// Leaf-pushing: the remaining bits cover 2^(stride-remaining) child
	// slots. The route goes into each of them, never into the current
	// node itself; the current node stands for fewer than length bits
	// and recording here would match addresses outside the prefix.
	remaining := length - consumed
	idx := extractBits(prefix, consumed, t.stride)
	shift := uint(t.stride - remaining)
	base := idx >> shift << shift
	fan := 1 << shift
	for i := 0; i < fan; i++ {
		c := t.childAt(cur, base|i, true)
		n := &t.nodes[c]
		// a previously pushed longer prefix keeps its slot; equal
		// length is overwritten (last wins)
		if !n.hasRoute || length >= int(n.routeLen) {
			n.nextHop = nextHop
			n.routeLen = int8(length)
			n.hasRoute = true
		}
	}
	return nil
}

func (t *Trie) setRoute(idx int32, nextHop uint32, length int) {
	n := &t.nodes[idx]
	n.nextHop = nextHop
	n.routeLen = int8(length)
	n.hasRoute = true
}

// Lookup resolves addr to the next hop of its longest matching prefix.
// The second return value is false when no prefix matches. Lookup never
// fails; it visits at most 32/stride nodes and each visit is a single
// array index.
func (t *Trie) Lookup(addr uint32) (uint32, bool) {
	var best uint32
	found := false
	if t.nodes[rootIdx].hasRoute {
		best = t.nodes[rootIdx].nextHop
		found = true
	}

	cur := rootIdx
	for consumed := 0; consumed < 32; consumed += t.stride {
		idx := extractBits(addr, consumed, t.stride)
		next := t.nodes[cur].children[idx]
		if next == noChild {
			break
		}
		cur = next
		if t.nodes[cur].hasRoute {
			// leaf-pushing keeps depth ordered by specificity, so any
			// route met deeper is an equal-or-longer match
			best = t.nodes[cur].nextHop
			found = true
		}
	}
	return best, found
}

// NodeCount reports the number of allocated trie nodes, root included.
func (t *Trie) NodeCount() int {
	return len(t.nodes)
}

// EstimateMemory reports the approximate trie footprint in bytes:
// per node, 2^stride pointer-sized child slots plus the route value,
// its recorded length and the presence flag, rounded up to 8-byte
// alignment. Diagnostic only.
func (t *Trie) EstimateMemory() uint64 {
	perNode := uint64(1)<<uint(t.stride)*8 + 4 + 1 + 1
	perNode = (perNode + 7) / 8 * 8
	return uint64(len(t.nodes)) * perNode
}

// Dump writes the trie structure to w, one node per line, indented by
// depth, with the child index walked to reach it and any recorded route.
func (t *Trie) Dump(w io.Writer) {
	fmt.Fprintf(w, "trie structure (stride=%d):\n", t.stride)
	if t.nodes[rootIdx].hasRoute {
		fmt.Fprintf(w, "root [next_hop=%d]\n", t.nodes[rootIdx].nextHop)
	} else {
		fmt.Fprintln(w, "root")
	}
	t.dumpNode(w, rootIdx, 1)
}

func (t *Trie) dumpNode(w io.Writer, idx int32, depth int) {
	for i, c := range t.nodes[idx].children {
		if c == noChild {
			continue
		}
		for s := 0; s < depth*2; s++ {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%d", i)
		if t.nodes[c].hasRoute {
			fmt.Fprintf(w, " [next_hop=%d]", t.nodes[c].nextHop)
		}
		fmt.Fprintln(w)
		t.dumpNode(w, c, depth+1)
	}
}
