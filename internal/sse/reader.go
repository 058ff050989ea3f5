// Package sse reads server-sent event frames from a streaming HTTP body.
//
// Frames are separated by a blank line. Within a frame, "data:" lines are
// joined with "\n", "event:" and "id:" are kept, lines starting with ":" are
// comments and everything else is ignored. A frame still open when the stream
// ends is discarded.
package sse

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrLineTooLong is returned when a single line exceeds the reader's limit.
var ErrLineTooLong = errors.New("sse line too long")

const defaultMaxLineSize = 1 << 20

// Frame is one dispatched server-sent event.
type Frame struct {
	Event string
	ID    string
	Data  string
}

// Reader splits a byte stream into frames.
type Reader struct {
	r           *bufio.Reader
	maxLineSize int
}

// NewReader wraps r. Lines longer than 1 MiB are rejected.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r), maxLineSize: defaultMaxLineSize}
}

// Next returns the next frame that carries data. Frames made only of comments
// or fields without data (keep-alive pings) are skipped.
//
// At the end of the stream Next returns io.EOF; a connection that drops in
// the middle of a frame yields io.ErrUnexpectedEOF.
func (r *Reader) Next() (Frame, error) {
	var (
		frame   Frame
		data    strings.Builder
		hasData bool
		started bool
	)

	for {
		line, err := r.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) && started {
				return Frame{}, io.ErrUnexpectedEOF
			}
			return Frame{}, err
		}

		if line == "" {
			if hasData {
				frame.Data = data.String()
				return frame, nil
			}
			frame, started = Frame{}, false
			continue
		}
		started = true

		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "data":
			if hasData {
				data.WriteByte('\n')
			}
			data.WriteString(value)
			hasData = true
		case "event":
			frame.Event = value
		case "id":
			frame.ID = value
		}
	}
}

func (r *Reader) readLine() (string, error) {
	var sb strings.Builder
	for {
		chunk, isPrefix, err := r.r.ReadLine()
		if err != nil {
			if sb.Len() > 0 && errors.Is(err, io.EOF) {
				return "", io.ErrUnexpectedEOF
			}
			return "", err
		}
		sb.Write(chunk)
		if sb.Len() > r.maxLineSize {
			return "", ErrLineTooLong
		}
		if !isPrefix {
			return sb.String(), nil
		}
	}
}
