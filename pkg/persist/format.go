// Package persist implements the durable storage collaborator: a
// single snapshot slot holding the whole employee list, written
// atomically on every debounced flush.
package persist

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// Magic bytes identifying a staffdir snapshot file
	MagicBytes = "SDIR"
	// Current format version
	FormatVersion = 1
	// File extension for snapshot files
	FileExtension = ".sdir"
)

// Encoding selects the payload representation after the header.
type Encoding uint8

const (
	// EncodingJSON stores the record list as indented JSON text,
	// inspectable and editable with any text tool.
	EncodingJSON Encoding = 0
	// EncodingBinary stores the record list as lz4-compressed
	// MessagePack.
	EncodingBinary Encoding = 1
)

// FileHeader is the fixed 8-byte header of a snapshot file. Flags
// carries the payload encoding.
type FileHeader struct {
	Magic    [4]byte // "SDIR"
	Version  uint8   // Format version
	Flags    uint8   // Payload encoding
	Reserved [2]byte // Reserved for future use
}

// WriteHeader writes the file header for the given payload encoding.
func WriteHeader(w io.Writer, encoding Encoding) error {
	header := FileHeader{
		Magic:    [4]byte{'S', 'D', 'I', 'R'},
		Version:  FormatVersion,
		Flags:    uint8(encoding),
		Reserved: [2]byte{0, 0},
	}

	return binary.Write(w, binary.LittleEndian, header)
}

// ReadHeader reads and validates the file header.
func ReadHeader(r io.Reader) (*FileHeader, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicBytes {
		return nil, fmt.Errorf("invalid file format: expected %s, got %s", MagicBytes, string(header.Magic[:]))
	}

	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported file version: %d", header.Version)
	}

	switch Encoding(header.Flags) {
	case EncodingJSON, EncodingBinary:
	default:
		return nil, fmt.Errorf("unknown payload encoding: %d", header.Flags)
	}

	return &header, nil
}
