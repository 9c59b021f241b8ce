package emulator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// image assembles a big-endian program image.
func image(origin uint16, words ...uint16) *bytes.Reader {
	data := make([]byte, 0, 2+2*len(words))
	data = append(data, byte(origin>>8), byte(origin))
	for _, word := range words {
		data = append(data, byte(word>>8), byte(word))
	}

	return bytes.NewReader(data)
}

func TestReadImage(t *testing.T) {
	assert := assert.New(t)

	origin, words, err := ReadImage(image(0x3000, 0x1234, 0xABCD))
	assert.NoError(err)
	assert.Equal(uint16(0x3000), origin)
	assert.Equal([]uint16{0x1234, 0xABCD}, words)
}

func TestReadImageOriginOnly(t *testing.T) {
	assert := assert.New(t)

	origin, words, err := ReadImage(image(0x4000))
	assert.NoError(err)
	assert.Equal(uint16(0x4000), origin)
	assert.Empty(words)
}

func TestReadImageShort(t *testing.T) {
	assert := assert.New(t)

	_, _, err := ReadImage(bytes.NewReader([]byte{0x30}))
	assert.ErrorIs(err, ErrImageShort)

	_, _, err = ReadImage(bytes.NewReader(nil))
	assert.ErrorIs(err, ErrImageShort)
}

func TestReadImageOdd(t *testing.T) {
	assert := assert.New(t)

	_, _, err := ReadImage(bytes.NewReader([]byte{0x30, 0x00, 0x12}))
	assert.ErrorIs(err, ErrImageOdd)
}
