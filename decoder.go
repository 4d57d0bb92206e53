package id3

import "encoding/binary"

// IsTag reports whether b starts with a tag header this package can
// parse. It checks the magic bytes and the major version, nothing
// else.
func IsTag(b []byte) bool {
	if len(b) < tagHeaderSize {
		return false
	}
	if b[0] != Magic[0] || b[1] != Magic[1] || b[2] != Magic[2] {
		return false
	}
	switch b[3] {
	case 2, 3, 4:
		return true
	}
	return false
}

// Parse reads one complete tag from the start of b. Structural damage
// fails the whole parse; recoverable oddities inside frame bodies are
// absorbed (see Binary and the Encoding fallbacks).
func Parse(b []byte) (*Tag, error) {
	if len(b) < tagHeaderSize {
		var magic [3]byte
		copy(magic[:], b)
		return nil, NotATagHeader{Magic: magic}
	}
	if b[0] != Magic[0] || b[1] != Magic[1] || b[2] != Magic[2] {
		return nil, NotATagHeader{Magic: [3]byte{b[0], b[1], b[2]}}
	}
	major, revision := b[3], b[4]
	switch major {
	case 2, 3, 4:
	default:
		return nil, UnsupportedVersion{Major: major, Revision: revision}
	}

	tag := &Tag{
		Version: Version(major),
		Flags:   HeaderFlags(b[5]),
		Size:    desynchsafeInt([4]byte{b[6], b[7], b[8], b[9]}),
	}
	Log.Debug().Str("version", tag.Version.String()).
		Int("size", tag.Size).Msg("parsing tag")

	if tag.Flags.Unsynchronisation() {
		// Frame bodies are 0x00-stuffed and field boundaries cannot
		// be located without undoing the stuffing, which this codec
		// does not do.
		return nil, UnsupportedFeature{Feature: "unsynchronisation"}
	}

	body := b[tagHeaderSize:]
	if tag.Size < len(body) {
		body = body[:tag.Size]
	}

	if tag.Version == Version22 && tag.Flags.Compression() {
		// v2.2 defines no compression scheme, only the flag. The
		// frame data cannot be interpreted.
		Log.Debug().Msg("v2.2 compression flag set, skipping frame data")
		return tag, nil
	}

	if tag.Version != Version22 && tag.Flags.ExtendedHeader() {
		if len(body) < 4 {
			return nil, TruncatedFrame{Declared: 4, Remaining: len(body)}
		}
		extSize := desynchsafeInt([4]byte{body[0], body[1], body[2], body[3]})
		if extSize > len(body)-4 {
			return nil, TruncatedFrame{Declared: extSize, Remaining: len(body) - 4}
		}
		tag.ExtendedHeader = clone(body[4 : 4+extSize])
		body = body[4+extSize:]
	}

	hdrSize := tag.Version.frameHeaderSize()
	idSize := tag.Version.idSize()
	for len(body) > 0 {
		if allZero(body[:min(hdrSize, len(body))]) {
			tag.Padding = len(body)
			break
		}
		if len(body) < hdrSize {
			return nil, TruncatedFrame{Declared: hdrSize, Remaining: len(body)}
		}
		id := FrameType(body[:idSize])
		var size int
		var rawFlags uint16
		switch tag.Version {
		case Version22:
			size = int(body[3])<<16 | int(body[4])<<8 | int(body[5])
		case Version23:
			size = int(binary.BigEndian.Uint32(body[4:8]))
			rawFlags = binary.BigEndian.Uint16(body[8:10])
		case Version24:
			size = desynchsafeInt([4]byte{body[4], body[5], body[6], body[7]})
			rawFlags = binary.BigEndian.Uint16(body[8:10])
		}
		body = body[hdrSize:]
		if size > len(body) {
			return nil, TruncatedFrame{ID: id, Declared: size, Remaining: len(body)}
		}

		flags := parseFrameFlags(rawFlags, tag.Version)
		frame := Frame{
			ID:      id,
			Flags:   flags,
			Content: parseFrameBody(id, flags, body[:size], tag.Version),
		}
		Log.Debug().Str("id", string(id)).Int("size", size).Msg("parsed frame")
		tag.Frames = append(tag.Frames, frame)
		body = body[size:]
	}
	return tag, nil
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
