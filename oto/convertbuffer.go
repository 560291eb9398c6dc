package oto

import (
	"encoding/binary"
	"math"

	"github.com/lobo-larsen/modal-composer"
)

// FloatBufferToBytes converts a stereo buffer to interleaved 32-bit float
// little-endian bytes, the sample format the output context is opened with.
// The result is appended to dst, reusing its capacity.
func FloatBufferToBytes(buffer modal.AudioBuffer, dst []byte) []byte {
	need := len(buffer) * 8
	if cap(dst)-len(dst) < need {
		n := make([]byte, len(dst), len(dst)+need)
		copy(n, dst)
		dst = n
	}
	for _, s := range buffer {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(s[0]))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(s[1]))
	}
	return dst
}
