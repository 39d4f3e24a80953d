package cmd

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// loadSource reads path from disk, sniffs a UTF-8/UTF-16LE/UTF-16BE BOM,
// and transcodes to a plain UTF-8 string before the lexer ever sees it —
// adapted from the reference codebase's detectAndDecodeFile, now living
// on the CLI side since this module's lexer takes a string, not a file.
func loadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}

	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		diagLog.Debug("loaded source file", "path", path, "bytes", len(data), "encoding", "utf-8-bom")
		return string(data[3:]), nil
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		diagLog.Debug("loaded source file", "path", path, "bytes", len(data), "encoding", "utf-16le")
		return decodeUTF16(data, unicode.LittleEndian)
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		diagLog.Debug("loaded source file", "path", path, "bytes", len(data), "encoding", "utf-16be")
		return decodeUTF16(data, unicode.BigEndian)
	default:
		diagLog.Debug("loaded source file", "path", path, "bytes", len(data), "encoding", "utf-8")
		return string(data), nil
	}
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	utf8Data, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode UTF-16: %w", err)
	}
	return string(utf8Data), nil
}
