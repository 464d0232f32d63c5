package internal

import "io"

// ByteCounterWriter passes writes through to Writer and keeps a running total of the bytes accepted
type ByteCounterWriter struct {
	Writer io.Writer
	count  uint64
}

func NewByteCounterWriter(writer io.Writer) *ByteCounterWriter {
	return &ByteCounterWriter{Writer: writer}
}

func (bcw *ByteCounterWriter) Write(p []byte) (int, error) {
	n, err := bcw.Writer.Write(p)
	bcw.count += uint64(n)
	return n, err
}

func (bcw *ByteCounterWriter) Count() uint64 {
	return bcw.count
}
