package taghelpers

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"

	"rzc-go/packages/compiler/util"
)

// hasher accumulates descriptor fields into an xxhash digest. Strings are
// length-prefixed so adjacent fields cannot run together.
type hasher struct {
	digest *xxhash.Digest
	buf    [8]byte
}

func newHasher() *hasher {
	return &hasher{digest: xxhash.New()}
}

func (h *hasher) writeUint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.digest.Write(h.buf[:])
}

func (h *hasher) writeInt(v int) {
	h.writeUint64(uint64(v))
}

func (h *hasher) writeBool(v bool) {
	if v {
		h.writeUint64(1)
	} else {
		h.writeUint64(0)
	}
}

func (h *hasher) writeString(s string) {
	h.writeInt(len(s))
	_, _ = h.digest.WriteString(s)
}

// writeName hashes s folded when the comparison ignores case.
func (h *hasher) writeName(s string, caseSensitive bool) {
	if !caseSensitive {
		s = util.FoldCase(s)
	}
	h.writeString(s)
}

func (h *hasher) writeOptionalName(s *string, caseSensitive bool) {
	h.writeBool(s != nil)
	if s != nil {
		h.writeName(*s, caseSensitive)
	}
}

func (h *hasher) writeMetadata(m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	h.writeInt(len(keys))
	for _, k := range keys {
		h.writeString(k)
		h.writeString(m[k])
	}
}

func (h *hasher) writeDiagnostics(diagnostics []*util.Diagnostic) {
	h.writeInt(len(diagnostics))
	for _, d := range diagnostics {
		h.writeString(d.ID)
		h.writeString(d.Message)
	}
}

func (h *hasher) sum() uint64 {
	return h.digest.Sum64()
}
