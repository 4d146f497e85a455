package google

import (
	"bytes"
	"encoding/binary"
)

// Gemini speech models return raw little-endian PCM
const (
	sampleRate    = 24000
	channels      = 1
	bitsPerSample = 16
)

func encodeWAV(pcm []byte) []byte {
	var b bytes.Buffer

	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(36+len(pcm)))
	b.WriteString("WAVE")

	b.WriteString("fmt ")
	binary.Write(&b, binary.LittleEndian, uint32(16))
	binary.Write(&b, binary.LittleEndian, uint16(1))
	binary.Write(&b, binary.LittleEndian, uint16(channels))
	binary.Write(&b, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&b, binary.LittleEndian, uint32(byteRate))
	binary.Write(&b, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&b, binary.LittleEndian, uint16(bitsPerSample))

	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(len(pcm)))
	b.Write(pcm)

	return b.Bytes()
}
