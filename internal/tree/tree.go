// Package tree implements the tagged syntax tree produced by the HGVS
// grammar: a homogeneous node with at most two ordered, owned children, a
// numeric payload, and a borrowed source position.
//
// The shape follows the original C parser's Node struct directly
// (original_source/src/hgvs_parser.c): a closed tag enum, a left/right child
// pair, a payload integer (Data), and a source pointer. Go's garbage
// collector means there is no manual free, so Destroy is a recursive walk
// that only clears child pointers, kept so the three-valued matching protocol (matched / unmatched
// / errored) still reads the way the original does: productions build a
// node, and on failure explicitly say so by routing through Unmatched or
// AllocationError rather than returning a bare nil.
package tree

// Tag discriminates a Node's role. The set is closed; see spec §3.
type Tag uint8

const (
	// TagInvalid is the zero value; no production ever returns it.
	TagInvalid Tag = iota

	// Leaves.
	TagUnknown
	TagNumber
	TagSequence
	TagIdentifier
	TagEqual
	TagSlice

	// Positional.
	TagOffset
	TagPoint
	TagUncertainPoint
	TagRange
	TagLength

	// Composites.
	TagReference
	TagDescription
	TagInsert
	TagCompoundInsert

	// Operations.
	TagSubstitution
	TagRepeat
	TagCompoundRepeat
	TagDeletion
	TagDeletionInsertion
	TagInsertion
	TagDuplication
	TagConversion
	TagInversion
	TagVariant
	TagCompoundVariant

	// Diagnostics.
	TagAllocationError
	TagError
	TagErrorContext
)

// Offset payload values, mirroring NODE_POSITIVE_OFFSET/NODE_NEGATIVE_OFFSET.
const (
	OffsetPositive uint64 = 1
	OffsetNegative uint64 = 2
)

// Point payload values, mirroring NODE_DOWNSTREAM/NODE_UPSTREAM.
const (
	PointExact      uint64 = 0
	PointDownstream uint64 = 1
	PointUpstream   uint64 = 2
)

// Insert payload value, mirroring NODE_INVERTED.
const InsertInverted uint64 = 1

// Node is a single tagged tree node. Left and Right are owned by this node:
// conceptually each Node is reachable from exactly one parent (spec
// invariant 1). Pos is a byte offset into the original input that the node
// refers to; for Sequence and Identifier, Len gives the number of bytes
// starting at Pos. Data carries tag-specific payload (a decoded number, an
// element count, an enum selector, or an inversion flag). Msg carries a
// diagnostic message for ErrorContext and AllocationError nodes.
type Node struct {
	Tag         Tag
	Left, Right *Node
	Data        uint64
	Pos         int
	Len         int
	Msg         string
}

// allocationError is the process-wide sentinel returned when recursion
// depth is exhausted (see parser.MaxDepth). It stands in for the original's
// malloc-failure sentinel: a singleton, never a child of another node, never
// "freed". Unlike the C original there is no real allocation to fail; the
// sentinel's role is filled by the recursion-depth guard instead (see
// DESIGN.md, "Open Question: allocation failure in a GC'd language").
var allocationError = &Node{
	Tag: TagAllocationError,
	Msg: "recursion depth limit exceeded",
}

// AllocationError returns the singleton allocation-error sentinel.
func AllocationError() *Node { return allocationError }

// New allocates a fresh node with the given tag and source position. It
// never fails: there is no caller-visible allocation-failure path in Go, so
// unlike create() in the original every call to New succeeds.
func New(tag Tag, pos int) *Node {
	return &Node{Tag: tag, Pos: pos}
}

// IsAllocationError reports whether n is the allocation-error sentinel.
func IsAllocationError(n *Node) bool {
	return n == allocationError
}

// IsError reports whether n is non-nil and represents a failed parse: either
// an Error chain node or the allocation-error sentinel.
func IsError(n *Node) bool {
	return n != nil && (n.Tag == TagError || n.Tag == TagAllocationError)
}

// IsUnmatched reports whether n represents "no match" for a production.
func IsUnmatched(n *Node) bool {
	return n == nil
}

// Unmatched discards node (a partial tree a production gave up on) and
// returns the unmatched sentinel value, nil. It exists so call sites read
// the same way the original's unmatched() helper does: "stop here, there is
// nothing to report, the cursor must be rolled back by the caller".
func Unmatched(node *Node) *Node {
	Destroy(node)
	return nil
}

// AsAllocationError discards node and returns the allocation-error
// sentinel, collapsing whatever partial tree had been built so far.
func AsAllocationError(node *Node) *Node {
	Destroy(node)
	return allocationError
}

// Destroy recursively walks node, clearing child pointers. Go's GC reclaims
// the memory regardless; Destroy exists to preserve the original's
// destroy()-after-use discipline (and the testable property that it is safe
// to call on any tree returned by the parser, including one containing the
// allocation-error sentinel, without double-freeing or freeing the
// sentinel). It tolerates nil and never recurses into the sentinel.
func Destroy(node *Node) {
	if node == nil || IsAllocationError(node) {
		return
	}
	Destroy(node.Left)
	Destroy(node.Right)
	node.Left = nil
	node.Right = nil
}
