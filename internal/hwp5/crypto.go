package hwp5

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

const (
	distPrefixSize = 4
	distHeaderSize = 256
	distMinSize    = distPrefixSize + distHeaderSize
	distKeySize    = 16
)

// lcg implements the Microsoft C runtime rand() recurrence used to derive
// both the XOR byte stream and the run-length counter for header
// deobfuscation.
type lcg struct {
	state int32
}

// next advances the generator and returns the 15 low bits of the high
// half of the state, matching rand()'s (seed >> 16) & 0x7FFF.
func (g *lcg) next() int32 {
	g.state = g.state*214013 + 2531011
	return (g.state >> 16) & 0x7FFF
}

// deobfuscate XORs the 256-byte distribution header in place using the
// LCG-derived byte stream. Bytes 0-3 hold the seed and are never XOR'd,
// but they still consume (value, number) cycles exactly like every other
// byte — this shifts the stream's alignment for byte 4 onward, and any
// reimplementation that skips straight to byte 4 before running the
// generator will derive the wrong key.
func deobfuscate(h *[distHeaderSize]byte) {
	seed := int32(uint32(h[0]) | uint32(h[1])<<8 | uint32(h[2])<<16 | uint32(h[3])<<24)
	g := &lcg{state: seed}

	var value byte
	var number int32

	for i := 0; i < distHeaderSize; i++ {
		if number == 0 {
			value = byte(g.next() & 0xFF)
			number = (g.next() & 0xF) + 1
		}
		if i >= 4 {
			h[i] ^= value
		}
		number--
	}
}

// decryptDistributionStream decrypts a ViewText section stream: it skips
// the 4-byte record-header prefix, deobfuscates the next 256 bytes to
// recover the AES-128 key, then decrypts the remainder under AES-128-ECB
// with no padding.
func decryptDistributionStream(data []byte) ([]byte, error) {
	if len(data) < distMinSize {
		return nil, fmt.Errorf("%w: distribution stream too short (%d bytes)", ErrDecryptFailed, len(data))
	}

	var header [distHeaderSize]byte
	copy(header[:], data[distPrefixSize:distPrefixSize+distHeaderSize])
	deobfuscate(&header)

	keyOffset := 4 + int(header[0]&0x0F)
	if keyOffset+distKeySize > distHeaderSize {
		return nil, fmt.Errorf("%w: key offset %d out of range", ErrDecryptFailed, keyOffset)
	}
	key := header[keyOffset : keyOffset+distKeySize]

	remainder := data[distMinSize:]
	if len(remainder) == 0 {
		return []byte{}, nil
	}
	if len(remainder)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: encrypted remainder (%d bytes) not block-aligned", ErrDecryptFailed, len(remainder))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}

	plain := make([]byte, len(remainder))
	decryptECB(block, plain, remainder)
	return plain, nil
}

// decryptECB decrypts src into dst, one AES block at a time, in
// electronic codebook mode. Go's standard library ships no ECB
// cipher.BlockMode because ECB is insecure for general use, but the HWP
// distribution format mandates it and offers no alternative.
func decryptECB(block cipher.Block, dst, src []byte) {
	bs := block.BlockSize()
	for len(src) > 0 {
		block.Decrypt(dst[:bs], src[:bs])
		dst = dst[bs:]
		src = src[bs:]
	}
}
