package wire

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxFrameSize bounds a single frame body.
const MaxFrameSize = 8 << 20 // 8 MiB

var (
	ErrEmptyFrame    = errors.New("wire: empty frame")
	ErrFrameTooLarge = errors.New("wire: frame too large")
	ErrFrameBody     = errors.New("wire: unsupported frame body")
)

// Framer reads and writes messages as frames: a 4-byte big-endian body
// length followed by the body in format Body. The zero Framer uses JSON.
type Framer struct {
	Body Format
}

func (f Framer) body() (Format, error) {
	switch f.Body {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatYAML, FormatCBOR:
		return f.Body, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFrameBody, f.Body)
	}
}

// WriteMessage encodes v and writes it as one frame.
func (f Framer) WriteMessage(w io.Writer, v any) error {
	bf, err := f.body()
	if err != nil {
		return err
	}
	var body []byte
	if bf == FormatJSON {
		// compact: frames are not meant for reading
		body, err = json.Marshal(v)
	} else {
		body, err = Marshal(bf, v)
	}
	if err != nil {
		return fmt.Errorf("wire: frame %s body: %w", bf, err)
	}
	return writeFrameBody(w, body)
}

// ReadMessage reads one frame and decodes its body into v. A clean end of
// stream before the header returns io.EOF.
func (f Framer) ReadMessage(r io.Reader, v any) error {
	bf, err := f.body()
	if err != nil {
		return err
	}
	body, err := readFrameBody(r)
	if err != nil {
		return err
	}
	if err := Unmarshal(bf, body, v); err != nil {
		return fmt.Errorf("wire: frame %s body: %w", bf, err)
	}
	return nil
}

// ReadFrame reads one JSON-bodied frame into v.
func ReadFrame(r io.Reader, v any) error { return Framer{}.ReadMessage(r, v) }

// WriteFrame writes v as one JSON-bodied frame.
func WriteFrame(w io.Writer, v any) error { return Framer{}.WriteMessage(w, v) }

func readFrameBody(r io.Reader) ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(hdr[:])
	switch {
	case n == 0:
		return nil, ErrEmptyFrame
	case n > MaxFrameSize:
		return nil, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, n, MaxFrameSize)
	}

	body := make([]byte, n)
	if _, err := io.ReadFull(r, body); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return body, nil
}

func writeFrameBody(w io.Writer, body []byte) error {
	switch {
	case len(body) == 0:
		return ErrEmptyFrame
	case len(body) > MaxFrameSize:
		return fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, len(body), MaxFrameSize)
	}

	frame := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(frame, uint32(len(body)))
	copy(frame[4:], body)
	_, err := w.Write(frame)
	return err
}
