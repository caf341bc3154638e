package crypto

// XORKey is the 16-byte chained-XOR key used by DecryptXOR for version-12
// containers.
var XORKey = [16]byte{
	0xD1, 0x73, 0x52, 0x36, 0xF6, 0x35, 0x05, 0xA5,
	0xD6, 0x56, 0x32, 0xBC, 0x30, 0x23, 0xF4, 0x23,
}

// LEAKey is the 256-bit key used by DecryptLEA for version-15 containers.
var LEAKey = [32]byte{
	0x03, 0x5F, 0xD4, 0xE2, 0x50, 0x3A, 0xF9, 0x6D,
	0x82, 0x17, 0x6C, 0x4B, 0xEE, 0x0A, 0x91, 0x5C,
	0xC4, 0x3D, 0x78, 0x29, 0xFB, 0x66, 0x1E, 0x88,
	0x52, 0xA7, 0x0D, 0x9F, 0x34, 0xC1, 0x6A, 0xE5,
}

// LEAKeyDelta holds the eight round-constant deltas consumed by the LEA
// key schedule.
var LEAKeyDelta = [8]uint32{
	0xc3efe9db, 0x44626b02, 0x79e27c8a, 0x78df30ec,
	0x715ea49e, 0xc785da0a, 0xe04ef22a, 0xe5c40957,
}
