package schema

/*
dump.go implements a schema-free structural walk of a DER blob,
printing an indented tree of tags and lengths. It exists for the
cmd/derdump tool and does not go through the Schema interface at all:
it reads tag/length pairs with the same tlv.go primitives every schema
node uses, and recurses into the value only when the constructed bit
is set, treating everything else as an opaque leaf. Grounded on the
teacher corpus's own best-effort PDU dump helper in pkt.go.
*/

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented structural tree of data's TLV framing to w.
// It does not validate DER strictness beyond what reading a tag and
// length requires, and does not fail on trailing bytes at the top
// level: multiple concatenated top-level TLVs are dumped in sequence.
func Dump(w io.Writer, data []byte) error {
	cur := newCursor(data, -1)
	for !cur.atEnd() {
		if err := dumpOne(w, cur, 0); err != nil {
			return err
		}
	}
	return nil
}

func dumpOne(w io.Writer, cur *cursor, depth int) error {
	start := cur.pos
	h, err := readHeader(cur)
	if err != nil {
		return fmt.Errorf("at offset %d: %w", start, err)
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s len=%d offset=%d\n", indent, h.Tag.String(), h.Length, start)

	if h.Tag.Constructed {
		return cur.withBound(h.Length, func() error {
			for !cur.atEnd() {
				if err := dumpOne(w, cur, depth+1); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return cur.skip(h.Length)
}
