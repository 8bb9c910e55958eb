package aht

import "encoding/binary"

// maxKeyLen is the largest key length the slot encoding can represent:
// the low 15 bits of a two-byte length prefix.
const maxKeyLen = 0x7fff

// valueSize is sizeof(V): the table's value type is a fixed-width uint64.
const valueSize = 8

// prefixSize returns the number of bytes the length prefix for a key of
// length l occupies.
func prefixSize(l int) int {
	if l < 128 {
		return 1
	}
	return 2
}

// recordSize returns the total on-wire size of a record holding a key of
// length l, including its length prefix and value field but excluding any
// bucket terminator.
func recordSize(l int) int {
	return prefixSize(l) + l + valueSize
}

// encode writes a record for key into buf starting at off, zero-initializes
// its value field, and returns the offset just past the record and the
// offset of the value field within buf. buf must have room for
// recordSize(len(key)) bytes starting at off.
func encode(buf []byte, off int, key []byte) (next, valOff int) {
	l := len(key)
	if l < 128 {
		buf[off] = byte(l)
		off++
	} else {
		buf[off] = 0x80 | byte(l>>8)
		buf[off+1] = byte(l)
		off += 2
	}
	copy(buf[off:off+l], key)
	off += l

	valOff = off
	binary.LittleEndian.PutUint64(buf[valOff:valOff+valueSize], 0)
	off += valueSize

	return off, valOff
}

// decodeAt reads the length prefix of the record at buf[off] and returns
// the key length, the offset of the key bytes, the offset of the value
// field, and the offset of the following record. buf[off] must not be the
// bucket terminator.
func decodeAt(buf []byte, off int) (klen, keyOff, valOff, next int) {
	if buf[off]&0x80 != 0 {
		klen = (int(buf[off])&0x7f)<<8 | int(buf[off+1])
		keyOff = off + 2
	} else {
		klen = int(buf[off])
		keyOff = off + 1
	}
	valOff = keyOff + klen
	next = valOff + valueSize
	return klen, keyOff, valOff, next
}
