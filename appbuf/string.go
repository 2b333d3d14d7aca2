package appbuf

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/cleodb/godbc"
	"github.com/cleodb/godbc/appbuf/internal/sqltype"
)

// Wide character buffers carry UTF-16 little-endian code units, two bytes
// each, with no byte order mark.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

var terminator [2]byte

// putChars copies pre-encoded character elements into the data buffer,
// reserving room for a terminator element. elems holds elemCount elements
// of charSize bytes each. The indicator always receives the full element
// count, written or not.
func (b *DataBuffer) putChars(elems []byte, charSize, elemCount int64) (int64, ConvRes, error) {
	if err := b.setIndicator(elemCount); err != nil {
		return 0, ConvSuccess, err
	}
	addr, ok := b.dataAddr()
	if !ok {
		return 0, ConvSuccess, nil
	}
	if b.bufLen < charSize {
		return 0, ConvVarlenTruncated, nil
	}
	avail := b.bufLen/charSize - 1
	toCopy := elemCount
	if toCopy > avail {
		toCopy = avail
	}
	if toCopy > 0 {
		if err := b.mem.Write(addr, elems[:toCopy*charSize]); err != nil {
			return 0, ConvSuccess, err
		}
	}
	if err := b.mem.Write(addr+uint32(toCopy*charSize), terminator[:charSize]); err != nil {
		return toCopy, ConvSuccess, err
	}
	if toCopy < elemCount {
		return toCopy, ConvVarlenTruncated, nil
	}
	return toCopy, ConvSuccess, nil
}

// putText stores s as terminated text in the buffer's own character width.
func (b *DataBuffer) putText(s string) (int64, ConvRes, error) {
	if b.typ == sqltype.Wchar {
		if !utf8.ValidString(s) {
			s = strings.ToValidUTF8(s, "�")
		}
		enc, err := utf16LE.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return 0, ConvSuccess, err
		}
		return b.putChars(enc, 2, int64(len(enc))/2)
	}
	return b.putChars([]byte(s), 1, int64(len(s)))
}

// putRaw copies data byte for byte, without a terminator. The indicator
// receives the full source length.
func (b *DataBuffer) putRaw(data []byte) (int64, ConvRes, error) {
	if err := b.setIndicator(int64(len(data))); err != nil {
		return 0, ConvSuccess, err
	}
	addr, ok := b.dataAddr()
	if !ok {
		return 0, ConvSuccess, nil
	}
	toCopy := int64(len(data))
	if toCopy > b.bufLen {
		toCopy = b.bufLen
	}
	if toCopy < 0 {
		toCopy = 0
	}
	if toCopy > 0 {
		if err := b.mem.Write(addr, data[:toCopy]); err != nil {
			return 0, ConvSuccess, err
		}
	}
	if toCopy < int64(len(data)) {
		return toCopy, ConvVarlenTruncated, nil
	}
	return toCopy, ConvSuccess, nil
}

// readChars extracts up to limit character elements from a char buffer.
// The terminated-string sentinel scans for a zero byte; any other negative
// limit yields the empty string.
func (b *DataBuffer) readChars(limit int64) (string, error) {
	addr, ok := b.dataAddr()
	if !ok {
		return "", nil
	}
	if limit == godbc.NTS {
		end := ^uint32(0)
		if s, ok := b.mem.(godbc.MemorySizer); ok {
			end = s.Size()
		}
		buf := getScratch()
		defer putScratch(buf)
		for off := addr; off < end; off++ {
			c, err := b.mem.ReadU8(off)
			if err != nil || c == 0 {
				break
			}
			*buf = append(*buf, c)
		}
		return string(*buf), nil
	}
	if limit <= 0 {
		return "", nil
	}
	data, err := b.mem.Read(addr, uint32(limit))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
