package id3

import "io"

// Serialize renders the tag to wire format. minPadding zero bytes are
// appended after the last frame and counted in the header's size
// field.
func (t *Tag) Serialize(minPadding int) ([]byte, error) {
	var frames []byte
	var err error
	for _, f := range t.Frames {
		frames, err = appendFrame(frames, f, t.Version)
		if err != nil {
			return nil, err
		}
	}

	// The flag alone decides whether the block is written; an empty
	// ExtendedHeader still gets its size field, so a parsed tag with a
	// zero-length extended header reproduces its input.
	var ext []byte
	if t.Version != Version22 && t.Flags.ExtendedHeader() {
		size := synchsafeBytes(len(t.ExtendedHeader))
		ext = append(ext, size[:]...)
		ext = append(ext, t.ExtendedHeader...)
	}

	size := len(ext) + len(frames) + minPadding
	out := make([]byte, 0, tagHeaderSize+size)
	out = append(out, Magic[:]...)
	out = append(out, byte(t.Version), 0, byte(t.Flags))
	ssize := synchsafeBytes(size)
	out = append(out, ssize[:]...)
	out = append(out, ext...)
	out = append(out, frames...)
	out = append(out, make([]byte, minPadding)...)
	if t.Version == Version24 && t.Flags.Footer() {
		// A footer mirrors the header with reversed magic. It is not
		// counted in the size field.
		out = append(out, '3', 'D', 'I', byte(t.Version), 0, byte(t.Flags))
		out = append(out, ssize[:]...)
	}
	return out, nil
}

// Encode serializes the tag and writes it to w.
func (t *Tag) Encode(w io.Writer, minPadding int) error {
	b, err := t.Serialize(minPadding)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func appendFrame(dst []byte, f Frame, v Version) ([]byte, error) {
	id := f.ID
	if len(id) != v.idSize() {
		var from Version
		if v == Version22 {
			from = Version23
		} else {
			from = Version22
		}
		conv, ok := ConvertID(id, from, v)
		if !ok || len(conv) != v.idSize() {
			return nil, UnrepresentableFrame{ID: f.ID, Version: v}
		}
		id = conv
	}

	body, err := appendFrameBody(nil, Frame{ID: id, Flags: f.Flags, Content: f.Content}, v)
	if err != nil {
		return nil, err
	}

	dst = append(dst, id...)
	switch v {
	case Version22:
		if len(body) > 0xffffff {
			return nil, UnrepresentableFrame{ID: f.ID, Version: v}
		}
		dst = append(dst, byte(len(body)>>16), byte(len(body)>>8), byte(len(body)))
	case Version23:
		dst = append(dst, intToBytes(len(body))...)
		flags := f.Flags.bytes(v)
		dst = append(dst, flags[:]...)
	case Version24:
		size := synchsafeBytes(len(body))
		dst = append(dst, size[:]...)
		flags := f.Flags.bytes(v)
		dst = append(dst, flags[:]...)
	}
	return append(dst, body...), nil
}
