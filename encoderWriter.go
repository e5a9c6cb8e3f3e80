package main

// EncodedWriter collects an encoded frame in memory so the output file can
// be written in one go. It grows by ext bytes whenever it runs out of room;
// size ext to the expected frame size to avoid re-allocation.
type EncodedWriter struct {
	bytes []byte
	pos   int
	ext   int
	size  int
}

func NewEncodedWriter(ext int) *EncodedWriter {
	if ext < 2 {
		panic("Encoded Writer extension must be more than 1")
	}
	b := make([]byte, ext)
	return &EncodedWriter{bytes: b, pos: 0, ext: ext, size: len(b)}
}

func (ew *EncodedWriter) Bytes() []byte {
	return ew.bytes[0:ew.pos]
}

// Reset keeps the allocation for the next frame.
func (ew *EncodedWriter) Reset() {
	ew.pos = 0
}

func (ew *EncodedWriter) Write(p []byte) (n int, err error) {
	need := ew.pos + len(p)
	for ew.size < need {
		ew.bytes = append(ew.bytes, make([]byte, ew.ext)...)
		ew.size = len(ew.bytes)
	}
	copy(ew.bytes[ew.pos:], p)
	ew.pos = need
	return len(p), nil
}
