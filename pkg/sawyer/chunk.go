// Package sawyer implements the chunk container format used by the
// classic park save files. Each chunk is a one byte encoding tag, a
// little endian uint32 payload length and the encoded payload. A whole
// file checksum (uint32 sum of every preceding byte) is appended after
// the final chunk.
package sawyer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"github.com/hansbonini/parktools/pkg/common"
)

// Encoding identifies how a chunk payload is packed
type Encoding uint8

const (
	EncodingNone Encoding = iota
	EncodingRLE
	EncodingRLECompressed
	EncodingRotate
)

// MaxChunkSize is the largest raw payload a chunk may carry
const MaxChunkSize = 0x600000

// ChunkWriter writes encoded chunks to an underlying stream
type ChunkWriter struct {
	w      io.Writer
	chunks int
}

// NewChunkWriter creates a ChunkWriter targeting w
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{w: w}
}

// WriteChunk encodes data with the given encoding and writes the framed
// chunk (tag, length, payload) to the stream
func (cw *ChunkWriter) WriteChunk(data []byte, encoding Encoding) error {
	if len(data) > MaxChunkSize {
		return common.FormatErrorString(common.ErrChunkTooLarge, "%d bytes, limit %d", len(data), MaxChunkSize)
	}
	encoded, err := Encode(data, encoding)
	if err != nil {
		return err
	}
	header := make([]byte, 5)
	header[0] = byte(encoding)
	binary.LittleEndian.PutUint32(header[1:], uint32(len(encoded)))
	if _, err := cw.w.Write(header); err != nil {
		return err
	}
	if _, err := cw.w.Write(encoded); err != nil {
		return err
	}
	common.LogDebug(common.DebugChunkWritten, cw.chunks, encoding, len(data), len(encoded))
	cw.chunks++
	return nil
}

// Encode packs data with the given encoding
func Encode(data []byte, encoding Encoding) ([]byte, error) {
	switch encoding {
	case EncodingNone:
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	case EncodingRLE:
		return encodeRLE(data), nil
	case EncodingRLECompressed:
		return encodeRLE(encodeRepeat(data)), nil
	case EncodingRotate:
		return encodeRotate(data), nil
	default:
		return nil, fmt.Errorf("unknown chunk encoding %d", encoding)
	}
}

// Decode unpacks a chunk payload encoded with the given encoding
func Decode(data []byte, encoding Encoding) ([]byte, error) {
	switch encoding {
	case EncodingNone:
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	case EncodingRLE:
		return decodeRLE(data)
	case EncodingRLECompressed:
		rle, err := decodeRLE(data)
		if err != nil {
			return nil, err
		}
		return decodeRepeat(rle)
	case EncodingRotate:
		return decodeRotate(data), nil
	default:
		return nil, fmt.Errorf("unknown chunk encoding %d", encoding)
	}
}

// encodeRLE run-length encodes data. A control byte with the sign bit
// set repeats the following byte (1 - int8(control)) times, otherwise
// the next control+1 bytes are literals.
func encodeRLE(src []byte) []byte {
	dst := make([]byte, 0, len(src))
	var literals []byte
	flushLiterals := func() {
		for len(literals) > 0 {
			n := len(literals)
			if n > 125 {
				n = 125
			}
			dst = append(dst, byte(n-1))
			dst = append(dst, literals[:n]...)
			literals = literals[n:]
		}
	}
	for i := 0; i < len(src); {
		run := 1
		for i+run < len(src) && src[i+run] == src[i] && run < 125 {
			run++
		}
		if run >= 3 {
			flushLiterals()
			dst = append(dst, byte(257-run))
			dst = append(dst, src[i])
			i += run
		} else {
			literals = append(literals, src[i:i+run]...)
			i += run
		}
	}
	flushLiterals()
	return dst
}

func decodeRLE(src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src)*2)
	for i := 0; i < len(src); {
		control := int8(src[i])
		i++
		if control < 0 {
			if i >= len(src) {
				return nil, fmt.Errorf("truncated repeat run at offset %d", i-1)
			}
			count := 1 - int(control)
			for j := 0; j < count; j++ {
				dst = append(dst, src[i])
			}
			i++
		} else {
			count := int(control) + 1
			if i+count > len(src) {
				return nil, fmt.Errorf("truncated literal run at offset %d", i-1)
			}
			dst = append(dst, src[i:i+count]...)
			i += count
		}
	}
	return dst, nil
}

// encodeRepeat back-references short runs within the last 32 bytes of
// output. Control byte 0xFF marks a single literal, otherwise the low 3
// bits hold length-1 and the high 5 bits hold offset+32. Matches are
// capped at 7 bytes and at the back reference distance so no control
// byte can collide with the literal marker.
func encodeRepeat(src []byte) []byte {
	dst := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		bestLen := 0
		bestOff := 0
		searchStart := i - 32
		if searchStart < 0 {
			searchStart = 0
		}
		for j := searchStart; j < i; j++ {
			maxLen := i - j
			if maxLen > 7 {
				maxLen = 7
			}
			matchLen := 0
			for matchLen < maxLen && i+matchLen < len(src) && src[j+matchLen] == src[i+matchLen] {
				matchLen++
			}
			if matchLen > bestLen {
				bestLen = matchLen
				bestOff = j - i
			}
		}
		if bestLen >= 3 {
			dst = append(dst, byte(((bestOff+32)<<3)|(bestLen-1)))
			i += bestLen
		} else {
			dst = append(dst, 0xFF, src[i])
			i++
		}
	}
	return dst
}

func decodeRepeat(src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src)*2)
	for i := 0; i < len(src); i++ {
		if src[i] == 0xFF {
			i++
			if i >= len(src) {
				return nil, fmt.Errorf("truncated literal at offset %d", i-1)
			}
			dst = append(dst, src[i])
			continue
		}
		count := int(src[i]&7) + 1
		offset := int(src[i]>>3) - 32
		start := len(dst) + offset
		if start < 0 {
			return nil, fmt.Errorf("back reference before start of output at offset %d", i)
		}
		for j := 0; j < count; j++ {
			dst = append(dst, dst[start+j])
		}
	}
	return dst, nil
}

// encodeRotate obscures each byte with an alternating bit rotation
func encodeRotate(src []byte) []byte {
	dst := make([]byte, len(src))
	shift := 1
	for i, b := range src {
		dst[i] = bits.RotateLeft8(b, shift)
		shift = (shift + 2) & 7
	}
	return dst
}

func decodeRotate(src []byte) []byte {
	dst := make([]byte, len(src))
	shift := 1
	for i, b := range src {
		dst[i] = bits.RotateLeft8(b, -shift)
		shift = (shift + 2) & 7
	}
	return dst
}

// Checksum returns the uint32 sum of every byte in data
func Checksum(data []byte) uint32 {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}
	return sum
}
