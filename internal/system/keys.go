package system

import "encoding/binary"

// input_event: struct timeval, then u16 type, u16 code, s32 value.
const (
	evKey     = 0x01
	keyDown   = 1
	eventTail = 2 + 2 + 4
)

func eventSize(tvSize int) int { return tvSize + eventTail }

// firstKeyDown scans a buffer of little-endian input_event records for the
// first key press. Repeats (value 2) and releases are ignored.
func firstKeyDown(buf []byte, tvSize int) (uint16, bool) {
	size := eventSize(tvSize)
	for off := 0; off+size <= len(buf); off += size {
		rec := buf[off+tvSize : off+size]
		typ := binary.LittleEndian.Uint16(rec[0:2])
		code := binary.LittleEndian.Uint16(rec[2:4])
		value := int32(binary.LittleEndian.Uint32(rec[4:8]))
		if typ == evKey && value == keyDown {
			return code, true
		}
	}
	return 0, false
}
