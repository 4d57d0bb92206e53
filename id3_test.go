package id3

import (
	"testing"
)

var (
	utf8TestString   = "Ein etwas kürzerer Text mit wenigen Umlauten: äöüß äöüß"
	latin1TestString = []byte("Ein etwas k\xFCrzerer Text mit wenigen Umlauten: \xE4\xF6\xFC\xDF \xE4\xF6\xFC\xDF")
)

func TestSynchsafeRoundTrip(t *testing.T) {
	tests := []int{0, 1, 127, 128, 0x3FFF, 0x4000, 1234567, 0x0FFFFFFF}
	for _, n := range tests {
		b := synchsafeBytes(n)
		for i, c := range b {
			if c&0x80 != 0 {
				t.Fatalf("synchsafeBytes(%d) byte %d has high bit set: %#x", n, i, c)
			}
		}
		if got := desynchsafeInt(b); got != n {
			t.Fatalf("round trip of %d gave %d", n, got)
		}
	}
}

func TestDesynchsafeMasksHighBits(t *testing.T) {
	if got := desynchsafeInt([4]byte{0xFF, 0xFF, 0xFF, 0xFF}); got != 0x0FFFFFFF {
		t.Fatalf("expected %#x, got %#x", 0x0FFFFFFF, got)
	}
	if got := desynchsafeInt([4]byte{0x80, 0x00, 0x00, 0x81}); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestDecodeLatin1(t *testing.T) {
	if got := decodeText(EncodingLatin1, latin1TestString); got != utf8TestString {
		t.Errorf("Expected: %s - Got: %s", utf8TestString, got)
	}
}

func TestEncodeLatin1(t *testing.T) {
	got := encodeText(EncodingLatin1, utf8TestString)
	if string(got) != string(latin1TestString) {
		t.Errorf("Expected: %v - Got: %v", latin1TestString, got)
	}
}

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		in  []byte
		out string
	}{
		// big-endian BOM
		{[]byte{254, 255, 0, 74, 0, 117, 0, 115, 0, 116, 0, 32, 0, 97,
			0, 32, 0, 116, 0, 101, 0, 115, 0, 116, 0, 58, 0, 32, 0, 228,
			0, 252, 0, 246, 0, 32, 101, 229, 103, 44, 138, 158},
			"Just a test: äüö 日本語"},
		// little-endian BOM
		{[]byte{255, 254, 74, 0, 117, 0, 115, 0, 116, 0, 32, 0, 97, 0,
			32, 0, 116, 0, 101, 0, 115, 0, 116, 0, 58, 0, 32, 0, 228, 0,
			252, 0, 246, 0, 32, 0, 229, 101, 44, 103, 158, 138},
			"Just a test: äüö 日本語"},
		// no BOM, read as big-endian
		{[]byte{0, 65, 0, 66}, "AB"},
	}
	for _, test := range tests {
		if got := decodeText(EncodingUTF16, test.in); got != test.out {
			t.Errorf("Expected: %s - Got: %s", test.out, got)
		}
	}
}

func TestDecodeUTF16BE(t *testing.T) {
	in := []byte{0, 74, 0, 117, 0, 115, 0, 116}
	if got := decodeText(EncodingUTF16BE, in); got != "Just" {
		t.Errorf("Expected: Just - Got: %s", got)
	}
}

func TestEncodeUTF16EmitsBOM(t *testing.T) {
	got := encodeText(EncodingUTF16, "A")
	want := []byte{0xFF, 0xFE, 0x41, 0x00}
	if string(got) != string(want) {
		t.Errorf("Expected: %v - Got: %v", want, got)
	}
}

func TestPickEncoding(t *testing.T) {
	tests := []struct {
		b   byte
		v   Version
		out Encoding
	}{
		{0, Version23, EncodingLatin1},
		{1, Version23, EncodingUTF16},
		{3, Version23, EncodingLatin1}, // UTF-8 needs v2.4
		{3, Version24, EncodingUTF8},
		{2, Version22, EncodingLatin1},
		{2, Version24, EncodingUTF16BE},
		{9, Version24, EncodingLatin1},
	}
	for _, test := range tests {
		if got := pickEncoding(test.b, test.v); got != test.out {
			t.Fatalf("pickEncoding(%d, %s) = %s, expected %s",
				test.b, test.v, got, test.out)
		}
	}
}

func TestSplitNull(t *testing.T) {
	parts := splitNull(EncodingLatin1, []byte("a\x00b\x00"))
	if len(parts) != 2 || string(parts[0]) != "a" || string(parts[1]) != "b" {
		t.Fatalf("unexpected parts: %q", parts)
	}

	parts = splitNull(EncodingUTF16, []byte{0xFF, 0xFE, 0x41, 0x00, 0x00, 0x00})
	if len(parts) != 1 || len(parts[0]) != 4 {
		t.Fatalf("unexpected parts: %v", parts)
	}
}

func TestConvertID(t *testing.T) {
	tests := []struct {
		in       FrameType
		from, to Version
		out      FrameType
		ok       bool
	}{
		{"TT2", Version22, Version23, "TIT2", true},
		{"TT2", Version22, Version24, "TIT2", true},
		{"TIT2", Version24, Version22, "TT2", true},
		{"PIC", Version22, Version23, "APIC", true},
		{"APIC", Version23, Version22, "PIC", true},
		{"TDRC", Version24, Version22, "", false},
		{"TIT2", Version23, Version24, "TIT2", true},
	}
	for _, test := range tests {
		out, ok := ConvertID(test.in, test.from, test.to)
		if ok != test.ok || (ok && out != test.out) {
			t.Fatalf("ConvertID(%q, %s, %s) = %q/%t, expected %q/%t",
				test.in, test.from, test.to, out, ok, test.out, test.ok)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		v   Version
		id  FrameType
		out frameKind
	}{
		{Version23, "TIT2", kindText},
		{Version23, "TXXX", kindUserText},
		{Version23, "WOAF", kindURL},
		{Version23, "WXXX", kindUserURL},
		{Version24, "TABC", kindText}, // unknown text-family ID
		{Version24, "WABC", kindURL},
		{Version24, "XYZZ", kindBinary},
		{Version23, "LINK", kindLink},
		{Version22, "LNK", kindBinary},
		{Version22, "TT2", kindText},
		{Version22, "COM", kindComment},
		{Version22, "PIC", kindPicture},
	}
	for _, test := range tests {
		if got := classify(test.v, test.id); got != test.out {
			t.Fatalf("classify(%s, %q) = %d, expected %d", test.v, test.id, got, test.out)
		}
	}
}

func TestFrameFlagBytes(t *testing.T) {
	all := FrameFlags{
		TagAlterPreservation:  true,
		FileAlterPreservation: true,
		ReadOnly:              true,
		Compression:           true,
		Encryption:            true,
		GroupingIdentity:      true,
		Unsynchronisation:     true,
		DataLengthIndicator:   true,
	}

	if b := all.bytes(Version23); b != [2]byte{0xE0, 0xE0} {
		t.Fatalf("v2.3 flag bytes = %#x %#x", b[0], b[1])
	}
	if b := all.bytes(Version24); b != [2]byte{0x70, 0x4F} {
		t.Fatalf("v2.4 flag bytes = %#x %#x", b[0], b[1])
	}

	for _, v := range []Version{Version23, Version24} {
		b := all.bytes(v)
		got := parseFrameFlags(uint16(b[0])<<8|uint16(b[1]), v)
		want := all
		if v == Version23 {
			// v2.3 has no unsynchronisation or data length flags
			want.Unsynchronisation = false
			want.DataLengthIndicator = false
		}
		if got != want {
			t.Fatalf("%s flags did not round trip: %+v", v, got)
		}
	}
}

func TestFrameTypeString(t *testing.T) {
	if got := FrameType("TIT2").String(); got != "Title/songname/content description" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got := FrameType("TT2").String(); got != "Title/songname/content description" {
		t.Fatalf("unexpected name for 3-byte ID: %q", got)
	}
	if got := FrameType("XYZZ").String(); got != "XYZZ" {
		t.Fatalf("unexpected name for unknown ID: %q", got)
	}
}

func BenchmarkDecodeLatin1(b *testing.B) {
	b.SetBytes(int64(len(latin1TestString)))
	for i := 0; i < b.N; i++ {
		_ = decodeText(EncodingLatin1, latin1TestString)
	}
}

func BenchmarkEncodeLatin1(b *testing.B) {
	b.SetBytes(int64(len(utf8TestString)))
	for i := 0; i < b.N; i++ {
		_ = encodeText(EncodingLatin1, utf8TestString)
	}
}
