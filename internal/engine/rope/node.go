package rope

import "strings"

// Tree structure constants
const (
	// MaxChildren is the maximum children per internal node before splitting.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node represents a node in the rope B+ tree.
// Leaf nodes (height == 0) contain text chunks.
// Internal nodes (height > 0) contain child node references.
// Nodes are never mutated after construction.
type Node struct {
	height  uint8
	summary TextSummary

	children []*Node // internal nodes
	chunks   []Chunk // leaf nodes
}

// newLeafNode creates an empty leaf node.
func newLeafNode() *Node {
	return &Node{}
}

// newLeafNodeWithChunks creates a leaf node with the given chunks.
func newLeafNodeWithChunks(chunks []Chunk) *Node {
	n := &Node{chunks: chunks}
	for _, c := range chunks {
		n.summary = n.summary.Add(c.summary)
	}
	return n
}

// newInternalNode creates an internal node with the given children.
func newInternalNode(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}

	n := &Node{
		height:   children[0].height + 1,
		children: children,
	}
	for _, child := range children {
		n.summary = n.summary.Add(child.summary)
	}
	return n
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Chars returns the number of characters in this subtree.
func (n *Node) Chars() int {
	return n.summary.Chars
}

// appendTo appends all text in this subtree to the builder.
func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, chunk := range n.chunks {
			sb.WriteString(chunk.data)
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange appends the characters in [start, end) to the builder.
func (n *Node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}

	if n.IsLeaf() {
		offset := 0
		for _, chunk := range n.chunks {
			chunkEnd := offset + chunk.Chars()
			if chunkEnd > start && offset < end {
				sb.WriteString(chunk.slice(max(start-offset, 0), min(end-offset, chunk.Chars())))
			}
			if chunkEnd >= end {
				return
			}
			offset = chunkEnd
		}
		return
	}

	offset := 0
	for _, child := range n.children {
		childEnd := offset + child.Chars()
		if childEnd > start && offset < end {
			child.appendRange(sb, start-offset, end-offset)
		}
		if childEnd >= end {
			return
		}
		offset = childEnd
	}
}

// insert inserts text at the character offset and returns the nodes that
// replace n. More than one node is returned when n overflowed and had to
// be split; all of them have n's height.
func (n *Node) insert(at int, text string) []*Node {
	if n.IsLeaf() {
		return n.insertLeaf(at, text)
	}

	idx := len(n.children) - 1
	for i, child := range n.children {
		if at <= child.Chars() {
			idx = i
			break
		}
		at -= child.Chars()
	}
	at = min(at, n.children[idx].Chars())

	replaced := n.children[idx].insert(at, text)

	children := make([]*Node, 0, len(n.children)+len(replaced)-1)
	children = append(children, n.children[:idx]...)
	children = append(children, replaced...)
	children = append(children, n.children[idx+1:]...)

	groups := partition(children, MaxChildren)
	nodes := make([]*Node, len(groups))
	for i, g := range groups {
		nodes[i] = newInternalNode(g)
	}
	return nodes
}

// insertLeaf splices text into the chunk containing the offset. Small
// chunks absorb the insertion, which keeps keystroke-sized edits from
// fragmenting the leaf.
func (n *Node) insertLeaf(at int, text string) []*Node {
	chunks := make([]Chunk, 0, len(n.chunks)+1)
	inserted := false

	for _, c := range n.chunks {
		if !inserted && at <= c.Chars() {
			b := c.byteIndex(at)
			chunks = append(chunks, splitIntoChunks(c.data[:b]+text+c.data[b:])...)
			inserted = true
			continue
		}
		if !inserted {
			at -= c.Chars()
		}
		chunks = append(chunks, c)
	}
	if !inserted {
		chunks = append(chunks, splitIntoChunks(text)...)
	}

	groups := partition(chunks, MaxChunksPerLeaf)
	nodes := make([]*Node, len(groups))
	for i, g := range groups {
		nodes[i] = newLeafNodeWithChunks(g)
	}
	return nodes
}

// delete removes the characters in [start, end) and returns the new node,
// or nil if nothing remains. The range may extend past either side of n.
func (n *Node) delete(start, end int) *Node {
	if start <= 0 && end >= n.Chars() {
		return nil
	}

	if n.IsLeaf() {
		chunks := make([]Chunk, 0, len(n.chunks))
		offset := 0
		for _, c := range n.chunks {
			cStart, cEnd := offset, offset+c.Chars()
			offset = cEnd
			if cEnd <= start || cStart >= end {
				chunks = append(chunks, c)
				continue
			}
			lo := max(start-cStart, 0)
			hi := min(end-cStart, c.Chars())
			rest := c.data[:c.byteIndex(lo)] + c.data[c.byteIndex(hi):]
			if rest != "" {
				chunks = append(chunks, NewChunk(rest))
			}
		}
		return newLeafNodeWithChunks(chunks)
	}

	children := make([]*Node, 0, len(n.children))
	offset := 0
	for _, child := range n.children {
		cStart, cEnd := offset, offset+child.Chars()
		offset = cEnd
		if cEnd <= start || cStart >= end {
			children = append(children, child)
			continue
		}
		if kept := child.delete(start-cStart, end-cStart); kept != nil {
			children = append(children, kept)
		}
	}
	if len(children) == 0 {
		return nil
	}
	return newInternalNode(children)
}

// lineOfChar returns the number of newlines before the character offset.
// pos must be less than n.Chars().
func (n *Node) lineOfChar(pos int) int {
	line := 0
	node := n
	for !node.IsLeaf() {
		i := 0
		for ; i < len(node.children)-1; i++ {
			s := node.children[i].summary
			if pos < s.Chars {
				break
			}
			pos -= s.Chars
			line += s.Lines
		}
		node = node.children[i]
	}

	for _, c := range node.chunks {
		if pos < c.Chars() {
			return line + c.newlinesBefore(pos)
		}
		pos -= c.Chars()
		line += c.summary.Lines
	}
	return line
}

// charAfterNewline returns the character offset just past the nth newline
// (1-indexed). nth must be in [1, n.summary.Lines].
func (n *Node) charAfterNewline(nth int) int {
	chars := 0
	node := n
	for !node.IsLeaf() {
		i := 0
		for ; i < len(node.children)-1; i++ {
			s := node.children[i].summary
			if nth <= s.Lines {
				break
			}
			nth -= s.Lines
			chars += s.Chars
		}
		node = node.children[i]
	}

	for _, c := range node.chunks {
		if nth <= c.summary.Lines {
			return chars + c.charAfterNewline(nth)
		}
		nth -= c.summary.Lines
		chars += c.Chars()
	}
	return chars
}

// runeAt returns the character at pos, which must be less than n.Chars().
func (n *Node) runeAt(pos int) rune {
	node := n
	for !node.IsLeaf() {
		i := 0
		for ; i < len(node.children)-1; i++ {
			chars := node.children[i].Chars()
			if pos < chars {
				break
			}
			pos -= chars
		}
		node = node.children[i]
	}

	for _, c := range node.chunks {
		if pos < c.Chars() {
			return c.runeAt(pos)
		}
		pos -= c.Chars()
	}
	return 0
}

// buildNodeFromChildren creates a balanced tree from a list of same-height nodes.
func buildNodeFromChildren(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}
	if len(children) == 1 {
		return children[0]
	}

	groups := partition(children, MaxChildren)
	parents := make([]*Node, len(groups))
	for i, g := range groups {
		parents[i] = newInternalNode(g)
	}
	return buildNodeFromChildren(parents)
}

// partition splits items into the fewest groups of at most size elements,
// keeping group sizes as even as possible.
func partition[T any](items []T, size int) [][]T {
	if len(items) <= size {
		return [][]T{items}
	}
	count := (len(items) + size - 1) / size
	per := (len(items) + count - 1) / count

	groups := make([][]T, 0, count)
	for i := 0; i < len(items); i += per {
		end := min(i+per, len(items))
		group := make([]T, end-i)
		copy(group, items[i:end])
		groups = append(groups, group)
	}
	return groups
}
