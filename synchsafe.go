package id3

// Synchsafe integers store 28 bits in 4 bytes, 7 bits per byte, with
// the top bit of every byte forced to zero so that tag size fields can
// never contain a false MPEG frame-sync pattern.

func synchsafeInt(i int) int {
	return (i & 0x7f) |
		((i & 0x3f80) << 1) |
		((i & 0x1fc000) << 2) |
		((i & 0xfe00000) << 3)
}

// desynchsafeInt masks the top bit of every byte before reassembly, so
// malformed fields with a set high bit decode instead of failing.
func desynchsafeInt(b [4]byte) int {
	return int(b[0]&0x7f)<<21 |
		int(b[1]&0x7f)<<14 |
		int(b[2]&0x7f)<<7 |
		int(b[3]&0x7f)
}

func synchsafeBytes(i int) [4]byte {
	ss := synchsafeInt(i)
	return [4]byte{
		byte(ss >> 24),
		byte(ss >> 16),
		byte(ss >> 8),
		byte(ss),
	}
}

func intToBytes(i int) []byte {
	return []byte{
		byte(i >> 24),
		byte(i >> 16),
		byte(i >> 8),
		byte(i),
	}
}
