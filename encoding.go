package id3

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the text encoding byte that leads the body of every
// frame carrying human-readable text.
type Encoding byte

const (
	EncodingLatin1  Encoding = 0 // ISO-8859-1
	EncodingUTF16   Encoding = 1 // UTF-16 with BOM
	EncodingUTF16BE Encoding = 2 // UTF-16BE without BOM, v2.4 only
	EncodingUTF8    Encoding = 3 // v2.4 only
)

func (e Encoding) String() string {
	switch e {
	case EncodingLatin1:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	}
	return "<invalid encoding>"
}

func (e Encoding) validFor(v Version) bool {
	switch e {
	case EncodingLatin1, EncodingUTF16:
		return true
	case EncodingUTF16BE, EncodingUTF8:
		return v == Version24
	}
	return false
}

// pickEncoding interprets a frame's encoding byte. Out-of-range values
// and encodings that the tag version does not permit fall back to
// Latin-1 rather than failing the parse.
func pickEncoding(b byte, v Version) Encoding {
	e := Encoding(b)
	if !e.validFor(v) {
		Log.Debug().Uint8("encoding", b).Str("version", v.String()).
			Msg("unknown or disallowed encoding byte, assuming ISO-8859-1")
		return EncodingLatin1
	}
	return e
}

// termLen is the width of the NUL terminator for this encoding.
func (e Encoding) termLen() int {
	if e == EncodingUTF16 || e == EncodingUTF16BE {
		return 2
	}
	return 1
}

func (e Encoding) terminator() []byte {
	return make([]byte, e.termLen())
}

func (e Encoding) newDecoder() *encoding.Decoder {
	switch e {
	case EncodingLatin1:
		return charmap.ISO8859_1.NewDecoder()
	case EncodingUTF16:
		// A missing BOM is read as big-endian, which matches how
		// most taggers in the wild wrote BOM-less UTF-16.
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	}
	return encoding.Nop.NewDecoder()
}

func (e Encoding) newEncoder() *encoding.Encoder {
	switch e {
	case EncodingLatin1:
		return encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	case EncodingUTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewEncoder()
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	}
	return encoding.Nop.NewEncoder()
}

func decodeText(e Encoding, b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out, err := e.newDecoder().Bytes(b)
	if err != nil {
		// The UTF-16 decoders replace malformed input instead of
		// erroring, so this is unreachable for the encodings above.
		Log.Debug().Err(err).Str("encoding", e.String()).
			Msg("text decode failed, keeping raw bytes")
		return string(b)
	}
	return string(out)
}

func encodeText(e Encoding, s string) []byte {
	out, err := e.newEncoder().Bytes([]byte(s))
	if err != nil {
		Log.Debug().Err(err).Str("encoding", e.String()).
			Msg("text encode failed, emitting raw bytes")
		return []byte(s)
	}
	return out
}

// cutNull splits data at the first terminator for the encoding,
// respecting the 2-byte alignment of UTF-16 code units. It reports
// false, returning all of data as head, when no terminator occurs.
func cutNull(e Encoding, data []byte) (head, rest []byte, found bool) {
	w := e.termLen()
	if w == 1 {
		if i := bytes.IndexByte(data, 0); i >= 0 {
			return data[:i], data[i+1:], true
		}
		return data, nil, false
	}
	for i := 0; i+2 <= len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			return data[:i], data[i+2:], true
		}
	}
	return data, nil, false
}

// splitNull splits data on terminators, the layout text frames use for
// multiple values. A single trailing terminator closes the last value
// instead of opening an empty one.
func splitNull(e Encoding, data []byte) [][]byte {
	var parts [][]byte
	for len(data) > 0 {
		head, rest, found := cutNull(e, data)
		parts = append(parts, head)
		if !found {
			break
		}
		data = rest
	}
	if len(parts) == 0 {
		parts = [][]byte{nil}
	}
	return parts
}

// compatibleEncoding clamps an encoding to one the target version can
// express. UTF-16BE and UTF-8 exist only in v2.4; when serialized into
// an older tag they degrade to UTF-16 with BOM, which preserves the
// full character repertoire.
func compatibleEncoding(e Encoding, v Version) Encoding {
	if !e.validFor(v) {
		return EncodingUTF16
	}
	return e
}
