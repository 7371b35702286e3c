package sawyer

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"empty":      {},
		"single":     {0x42},
		"short run":  {1, 1, 2, 3, 3, 3, 3, 4},
		"long run":   bytes.Repeat([]byte{0xAA}, 500),
		"mixed":      append(bytes.Repeat([]byte{0}, 200), []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}...),
		"repetitive": bytes.Repeat([]byte{1, 2, 3, 4}, 64),
	}
	encodings := []Encoding{EncodingNone, EncodingRLE, EncodingRLECompressed, EncodingRotate}

	for name, payload := range payloads {
		for _, enc := range encodings {
			t.Run(name, func(t *testing.T) {
				encoded, err := Encode(payload, enc)
				if err != nil {
					t.Fatalf("Encode(%d) failed: %v", enc, err)
				}
				decoded, err := Decode(encoded, enc)
				if err != nil {
					t.Fatalf("Decode(%d) failed: %v", enc, err)
				}
				if !bytes.Equal(decoded, payload) {
					t.Errorf("encoding %d: round trip mismatch, got %d bytes, want %d bytes", enc, len(decoded), len(payload))
				}
			})
		}
	}
}

func TestRLEKnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{
			name:     "literal run",
			input:    []byte{1, 2, 3},
			expected: []byte{2, 1, 2, 3},
		},
		{
			name:     "repeat run",
			input:    []byte{7, 7, 7, 7, 7},
			expected: []byte{252, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeRLE(tt.input)
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("encodeRLE(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDecodeRLETruncated(t *testing.T) {
	if _, err := decodeRLE([]byte{250}); err == nil {
		t.Error("expected error for truncated repeat run")
	}
	if _, err := decodeRLE([]byte{5, 1, 2}); err == nil {
		t.Error("expected error for truncated literal run")
	}
}

func TestRotateChangesBytes(t *testing.T) {
	input := []byte{0x01, 0x02, 0x03, 0x04}
	encoded := encodeRotate(input)
	if bytes.Equal(encoded, input) {
		t.Error("rotate encoding left data unchanged")
	}
	if got := decodeRotate(encoded); !bytes.Equal(got, input) {
		t.Errorf("decodeRotate = %v, want %v", got, input)
	}
}

func TestWriteChunkFraming(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)
	payload := []byte{1, 2, 3, 4, 5}
	if err := cw.WriteChunk(payload, EncodingNone); err != nil {
		t.Fatalf("WriteChunk failed: %v", err)
	}

	out := buf.Bytes()
	if out[0] != byte(EncodingNone) {
		t.Errorf("encoding tag = %d, want %d", out[0], EncodingNone)
	}
	length := binary.LittleEndian.Uint32(out[1:5])
	if length != uint32(len(payload)) {
		t.Errorf("chunk length = %d, want %d", length, len(payload))
	}
	if !bytes.Equal(out[5:], payload) {
		t.Errorf("chunk payload = %v, want %v", out[5:], payload)
	}
}

func TestWriteChunkRejectsOversizedPayload(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)
	if err := cw.WriteChunk(make([]byte, MaxChunkSize+1), EncodingNone); err == nil {
		t.Fatal("expected error for payload above the chunk limit")
	}
	if buf.Len() != 0 {
		t.Errorf("oversized chunk wrote %d bytes to the stream", buf.Len())
	}
}

func TestChecksum(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected uint32
	}{
		{"empty", []byte{}, 0},
		{"single", []byte{0xFF}, 0xFF},
		{"sum", []byte{1, 2, 3, 4}, 10},
		{"overflow wraps", bytes.Repeat([]byte{0xFF}, 0x1000000), 0xFF000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Checksum(tt.input); got != tt.expected {
				t.Errorf("Checksum = 0x%08X, want 0x%08X", got, tt.expected)
			}
		})
	}
}
