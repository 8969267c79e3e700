// Package printer renders a *tree.Node back to text: a tag-dispatch walk
// producing either plain bytes or ANSI-colored tokens. Grounded directly on
// original_source/src/hgvs_parser.c's print() and
// original_source/include/hgvs_interface.h's HGVS_fprintf_* catalogue.
package printer

import (
	"io"
	"strconv"

	"github.com/mutalyzer/hgvsparse/internal/tree"
)

// Print walks node, writing its textual rendering to w in the given format.
// src is the original input buffer that Sequence/Identifier nodes' Pos/Len
// index into. It returns the number of bytes written, mirroring the
// original's size_t-accumulating print().
func Print(w io.Writer, format Format, src string, node *tree.Node) int {
	if node == nil {
		return 0
	}

	switch node.Tag {
	case tree.TagAllocationError:
		return fprintfError(w, format, 0, node.Msg)

	case tree.TagError:
		n := Print(w, format, src, node.Right)
		n += fprintfError(w, format, node.Pos, node.Left.Msg)
		return n

	case tree.TagErrorContext:
		return 0

	case tree.TagUnknown:
		return fprintfUnknown(w, format, '?')

	case tree.TagNumber:
		return fprintfNumber(w, format, strconv.FormatUint(node.Data, 10))

	case tree.TagSequence, tree.TagIdentifier:
		return fprintfString(w, format, src[node.Pos:node.Pos+node.Len])

	case tree.TagReference:
		if node.Right != nil {
			n := Print(w, format, src, node.Left)
			n += fprintfOperator(w, format, '(')
			n += Print(w, format, src, node.Right)
			n += fprintfOperator(w, format, ')')
			return n
		}
		return Print(w, format, src, node.Left)

	case tree.TagDescription:
		if node.Data != 0 {
			n := Print(w, format, src, node.Left)
			n += fprintfOperator(w, format, ':')
			n += fprintfChar(w, format, byte(node.Data))
			n += fprintfOperator(w, format, '.')
			n += Print(w, format, src, node.Right)
			return n
		}
		n := Print(w, format, src, node.Left)
		n += fprintfOperator(w, format, ':')
		n += Print(w, format, src, node.Right)
		return n

	case tree.TagOffset:
		if node.Data == tree.OffsetPositive {
			return fprintfOperator(w, format, '+') + Print(w, format, src, node.Left)
		}
		return fprintfOperator(w, format, '-') + Print(w, format, src, node.Left)

	case tree.TagPoint:
		if node.Data == tree.PointDownstream {
			n := fprintfOperator(w, format, '*')
			n += Print(w, format, src, node.Left)
			n += Print(w, format, src, node.Right)
			return n
		}
		if node.Data == tree.PointUpstream {
			n := fprintfOperator(w, format, '-')
			n += Print(w, format, src, node.Left)
			n += Print(w, format, src, node.Right)
			return n
		}
		return Print(w, format, src, node.Left) + Print(w, format, src, node.Right)

	case tree.TagUncertainPoint:
		n := fprintfOperator(w, format, '(')
		n += Print(w, format, src, node.Left)
		n += fprintfOperator(w, format, '_')
		n += Print(w, format, src, node.Right)
		n += fprintfOperator(w, format, ')')
		return n

	case tree.TagRange:
		n := Print(w, format, src, node.Left)
		n += fprintfOperator(w, format, '_')
		n += Print(w, format, src, node.Right)
		return n

	case tree.TagLength:
		n := fprintfOperator(w, format, '(')
		n += Print(w, format, src, node.Left)
		n += fprintfOperator(w, format, ')')
		return n

	case tree.TagInsert:
		n := Print(w, format, src, node.Left)
		if node.Right != nil {
			n += fprintfOperator(w, format, '[')
			n += Print(w, format, src, node.Right)
			n += fprintfOperator(w, format, ']')
		}
		if node.Data == tree.InsertInverted {
			n += fprintfKeyword(w, format, "inv")
		}
		return n

	case tree.TagCompoundInsert, tree.TagCompoundVariant:
		n := fprintfOperator(w, format, '[')
		n += Print(w, format, src, node.Left)
		for tmp := node.Right; tmp != nil; tmp = tmp.Right {
			n += fprintfOperator(w, format, ';')
			n += Print(w, format, src, tmp.Left)
		}
		n += fprintfOperator(w, format, ']')
		return n

	case tree.TagSubstitution:
		n := Print(w, format, src, node.Left)
		n += fprintfKeyword(w, format, ">")
		n += Print(w, format, src, node.Right)
		return n

	case tree.TagRepeat:
		n := Print(w, format, src, node.Left)
		n += fprintfOperator(w, format, '[')
		n += Print(w, format, src, node.Right)
		n += fprintfOperator(w, format, ']')
		return n

	case tree.TagCompoundRepeat:
		n := 0
		for tmp := node; tmp != nil; tmp = tmp.Right {
			n += Print(w, format, src, tmp.Left)
		}
		return n

	case tree.TagDeletion:
		return fprintfKeyword(w, format, "del") + Print(w, format, src, node.Left)

	case tree.TagDeletionInsertion:
		n := fprintfKeyword(w, format, "del")
		n += Print(w, format, src, node.Left)
		n += fprintfKeyword(w, format, "ins")
		n += Print(w, format, src, node.Right)
		return n

	case tree.TagInsertion:
		return fprintfKeyword(w, format, "ins") + Print(w, format, src, node.Left)

	case tree.TagDuplication:
		return fprintfKeyword(w, format, "dup") + Print(w, format, src, node.Left)

	case tree.TagConversion:
		return fprintfKeyword(w, format, "con") + Print(w, format, src, node.Left)

	case tree.TagInversion:
		return fprintfKeyword(w, format, "inv") + Print(w, format, src, node.Left)

	case tree.TagEqual:
		return fprintfKeyword(w, format, "=") + Print(w, format, src, node.Left)

	case tree.TagSlice:
		return 0

	case tree.TagVariant:
		return Print(w, format, src, node.Left) + Print(w, format, src, node.Right)
	}

	return 0
}

// Verdict writes the final accepted/failed line, colorized per format.
func Verdict(w io.Writer, format Format, failed bool) int {
	if failed {
		return fprintfFailed(w, format)
	}
	return fprintfAccept(w, format)
}
