package id3

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Log receives debug output from the decoder and encoder. It discards
// everything unless the caller installs a real logger.
var Log = zerolog.Nop()

var Magic = [3]byte{'I', 'D', '3'}

const tagHeaderSize = 10

// Version identifies an ID3v2 tag dialect. The three dialects differ
// in frame identifier length, frame size encoding and flag layout, so
// every codec function branches on it.
type Version byte

const (
	Version22 Version = 2
	Version23 Version = 3
	Version24 Version = 4
)

func (v Version) String() string {
	return fmt.Sprintf("ID3v2.%d", byte(v))
}

// idSize returns the frame identifier length: 3 bytes for v2.2,
// 4 bytes for v2.3 and v2.4.
func (v Version) idSize() int {
	if v == Version22 {
		return 3
	}
	return 4
}

// frameHeaderSize returns the per-frame header length: identifier plus
// size field for v2.2, plus two flag bytes for v2.3/v2.4.
func (v Version) frameHeaderSize() int {
	if v == Version22 {
		return 6
	}
	return 10
}

type HeaderFlags byte

func (f HeaderFlags) Unsynchronisation() bool { return (f & 0x80) > 0 }
func (f HeaderFlags) ExtendedHeader() bool    { return (f & 0x40) > 0 }
func (f HeaderFlags) Experimental() bool      { return (f & 0x20) > 0 }
func (f HeaderFlags) Footer() bool            { return (f & 0x10) > 0 }

// Compression reports the ID3v2.2 whole-tag compression bit. It shares
// its position with the v2.3/v2.4 extended header bit; the meaning
// depends on the tag version.
func (f HeaderFlags) Compression() bool { return (f & 0x40) > 0 }

// Tag is the in-memory form of one ID3v2 tag. Frame order is
// significant and preserved across a parse/serialize round trip.
type Tag struct {
	Version Version
	Flags   HeaderFlags

	// ExtendedHeader holds the raw extended header bytes, excluding
	// the leading size field. Its contents are not interpreted; they
	// are written back verbatim when the header flag is set.
	ExtendedHeader []byte

	Frames []Frame

	// Size is the declared tag size in bytes, excluding the 10-byte
	// header. Set by Parse; recomputed by Serialize rather than
	// trusted.
	Size int

	// Padding is the number of trailing zero bytes found after the
	// last frame.
	Padding int
}

// NewTag returns an empty tag of the given version.
func NewTag(version Version) *Tag {
	return &Tag{Version: version}
}

type NotATagHeader struct {
	Magic [3]byte
}

func (err NotATagHeader) Error() string {
	return fmt.Sprintf("not an ID3v2 header: %q", err.Magic)
}

type UnsupportedVersion struct {
	Major    byte
	Revision byte
}

func (err UnsupportedVersion) Error() string {
	return fmt.Sprintf("unsupported version: ID3v2.%d.%d", err.Major, err.Revision)
}

// TruncatedFrame reports a declared size that exceeds the bytes left
// in the tag. Frame boundaries cannot be trusted past this point, so
// parsing of the whole tag stops. ID is empty when the tag's extended
// header, rather than a frame, overruns the buffer.
type TruncatedFrame struct {
	ID        FrameType
	Declared  int
	Remaining int
}

func (err TruncatedFrame) Error() string {
	what := "frame " + string(err.ID)
	if err.ID == "" {
		what = "extended header"
	}
	return fmt.Sprintf("truncated %s: %d bytes declared, %d remaining", what, err.Declared, err.Remaining)
}

// UnsupportedFeature is returned for transformations this codec does
// not decode: the tag-level unsynchronisation scheme rejects the whole
// parse, and DecodeContent reports the format flag keeping a frame
// body opaque.
type UnsupportedFeature struct {
	Feature string
}

func (err UnsupportedFeature) Error() string {
	return fmt.Sprintf("unsupported feature: %s", err.Feature)
}

// UnrepresentableFrame is returned by the write path for a frame that
// cannot be expressed in the target version at all, such as an
// identifier with no mapping in that version.
type UnrepresentableFrame struct {
	ID      FrameType
	Version Version
}

func (err UnrepresentableFrame) Error() string {
	return fmt.Sprintf("frame %q cannot be represented in %s", string(err.ID), err.Version)
}

func clone(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}
