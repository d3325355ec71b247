package persist

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"

	"staffdir/pkg/domain"
)

// File persists the collection to a single snapshot file. Saves use the
// configured encoding; loads honor whichever encoding the header
// declares, so switching formats between runs is safe.
type File struct {
	path     string
	encoding Encoding
}

// NewFile creates a snapshot persister writing to path with the given
// payload encoding.
func NewFile(path string, encoding Encoding) *File {
	return &File{path: path, encoding: encoding}
}

// Load reads the persisted record list. A missing file yields an empty
// collection, not an error.
func (f *File) Load() ([]domain.Employee, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Employee{}, nil
		}
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrPersistence, f.path, err)
	}
	defer file.Close()

	header, err := ReadHeader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrPersistence, f.path, err)
	}

	payload, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrPersistence, f.path, err)
	}

	records, err := decodePayload(payload, Encoding(header.Flags))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrPersistence, f.path, err)
	}
	return records, nil
}

// Save writes the record list atomically: encode, write a temp file,
// then rename over the snapshot.
func (f *File) Save(records []domain.Employee) error {
	payload, err := encodePayload(records, f.encoding)
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", domain.ErrPersistence, err)
	}

	var buf bytes.Buffer
	if err := WriteHeader(&buf, f.encoding); err != nil {
		return fmt.Errorf("%w: write header: %v", domain.ErrPersistence, err)
	}
	if _, err := buf.Write(payload); err != nil {
		return fmt.Errorf("%w: write payload: %v", domain.ErrPersistence, err)
	}

	tempFile := f.path + ".tmp"
	if err := os.WriteFile(tempFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrPersistence, tempFile, err)
	}
	if err := os.Rename(tempFile, f.path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("%w: rename %s: %v", domain.ErrPersistence, tempFile, err)
	}

	return nil
}

// Binary payload layout: 4-byte little-endian uncompressed size, a
// method byte, then the body. lz4 reports an incompressible block as a
// zero-length write, in which case the MessagePack bytes are stored raw.
const (
	blockRaw = 0
	blockLZ4 = 1
)

func encodePayload(records []domain.Employee, encoding Encoding) ([]byte, error) {
	switch encoding {
	case EncodingJSON:
		return json.MarshalIndent(records, "", "  ")
	case EncodingBinary:
		msgpackData, err := msgpack.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("failed to encode MessagePack: %w", err)
		}
		compressed := make([]byte, lz4.CompressBlockBound(len(msgpackData)))
		var hashTable [1 << 16]int
		n, err := lz4.CompressBlock(msgpackData, compressed, hashTable[:])
		if err != nil {
			return nil, fmt.Errorf("failed to compress data: %w", err)
		}

		payload := make([]byte, 5, 5+n)
		binary.LittleEndian.PutUint32(payload[:4], uint32(len(msgpackData)))
		if n == 0 || n >= len(msgpackData) {
			payload[4] = blockRaw
			payload = append(payload, msgpackData...)
		} else {
			payload[4] = blockLZ4
			payload = append(payload, compressed[:n]...)
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("unknown payload encoding: %d", encoding)
	}
}

func decodePayload(payload []byte, encoding Encoding) ([]domain.Employee, error) {
	var records []domain.Employee

	switch encoding {
	case EncodingJSON:
		if err := json.Unmarshal(payload, &records); err != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
	case EncodingBinary:
		if len(payload) < 5 {
			return nil, fmt.Errorf("binary payload truncated: %d bytes", len(payload))
		}
		rawSize := binary.LittleEndian.Uint32(payload[:4])
		body := payload[5:]

		var msgpackData []byte
		switch payload[4] {
		case blockRaw:
			msgpackData = body
		case blockLZ4:
			decompressed := make([]byte, rawSize)
			n, err := lz4.UncompressBlock(body, decompressed)
			if err != nil {
				return nil, fmt.Errorf("failed to decompress data: %w", err)
			}
			msgpackData = decompressed[:n]
		default:
			return nil, fmt.Errorf("unknown block method: %d", payload[4])
		}

		if err := msgpack.Unmarshal(msgpackData, &records); err != nil {
			return nil, fmt.Errorf("failed to decode MessagePack: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown payload encoding: %d", encoding)
	}

	if records == nil {
		records = []domain.Employee{}
	}
	return records, nil
}
