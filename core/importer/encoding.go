package importer

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decodeText returns document bytes as UTF-8 text along with the detected
// encoding name. District exports arrive in a mix of encodings: UTF-8 with
// or without a BOM, UTF-16 from spreadsheet tools, and Latin-1 from older
// systems. A BOM decides when present; otherwise valid UTF-8 passes through
// and anything else is read as Latin-1.
func decodeText(data []byte) ([]byte, string) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], "utf-8"
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeUTF16(data[len(bomUTF16LE):], binary.LittleEndian), "utf-16le"
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16(data[len(bomUTF16BE):], binary.BigEndian), "utf-16be"
	case utf8.Valid(data):
		return data, "utf-8"
	default:
		return decodeLatin1(data), "latin-1"
	}
}

func decodeUTF16(data []byte, order binary.ByteOrder) []byte {
	// A trailing odd byte is truncation damage, drop it.
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		units = append(units, order.Uint16(data[i:i+2]))
	}
	return []byte(string(utf16.Decode(units)))
}

// decodeLatin1 widens ISO 8859-1 bytes; each byte is the same code point.
func decodeLatin1(data []byte) []byte {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return []byte(string(runes))
}
