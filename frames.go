package id3

// FrameFlags is the normalized view of a frame header's status and
// format flags. v2.2 frame headers carry no flags; parsing a v2.2 tag
// always yields the zero value.
type FrameFlags struct {
	TagAlterPreservation  bool
	FileAlterPreservation bool
	ReadOnly              bool

	Compression         bool
	Encryption          bool
	GroupingIdentity    bool
	Unsynchronisation   bool
	DataLengthIndicator bool
}

func parseFrameFlags(raw uint16, v Version) FrameFlags {
	var f FrameFlags
	switch v {
	case Version23:
		f.TagAlterPreservation = raw&0x8000 > 0
		f.FileAlterPreservation = raw&0x4000 > 0
		f.ReadOnly = raw&0x2000 > 0
		f.Compression = raw&0x0080 > 0
		f.Encryption = raw&0x0040 > 0
		f.GroupingIdentity = raw&0x0020 > 0
	case Version24:
		f.TagAlterPreservation = raw&0x4000 > 0
		f.FileAlterPreservation = raw&0x2000 > 0
		f.ReadOnly = raw&0x1000 > 0
		f.GroupingIdentity = raw&0x0040 > 0
		f.Compression = raw&0x0008 > 0
		f.Encryption = raw&0x0004 > 0
		f.Unsynchronisation = raw&0x0002 > 0
		f.DataLengthIndicator = raw&0x0001 > 0
	}
	return f
}

func (f FrameFlags) bytes(v Version) [2]byte {
	var raw uint16
	switch v {
	case Version23:
		if f.TagAlterPreservation {
			raw |= 0x8000
		}
		if f.FileAlterPreservation {
			raw |= 0x4000
		}
		if f.ReadOnly {
			raw |= 0x2000
		}
		if f.Compression {
			raw |= 0x0080
		}
		if f.Encryption {
			raw |= 0x0040
		}
		if f.GroupingIdentity {
			raw |= 0x0020
		}
	case Version24:
		if f.TagAlterPreservation {
			raw |= 0x4000
		}
		if f.FileAlterPreservation {
			raw |= 0x2000
		}
		if f.ReadOnly {
			raw |= 0x1000
		}
		if f.GroupingIdentity {
			raw |= 0x0040
		}
		if f.Compression {
			raw |= 0x0008
		}
		if f.Encryption {
			raw |= 0x0004
		}
		if f.Unsynchronisation {
			raw |= 0x0002
		}
		if f.DataLengthIndicator {
			raw |= 0x0001
		}
	}
	return [2]byte{byte(raw >> 8), byte(raw)}
}

// opaque reports whether any format flag changes the body's wire
// representation. Such bodies are kept as raw Binary content so they
// can be written back byte for byte.
func (f FrameFlags) opaque() bool {
	return f.Compression || f.Encryption || f.GroupingIdentity ||
		f.Unsynchronisation || f.DataLengthIndicator
}

// opaqueFeature names the first format flag that makes the body
// opaque.
func (f FrameFlags) opaqueFeature() string {
	switch {
	case f.Compression:
		return "compression"
	case f.Encryption:
		return "encryption"
	case f.GroupingIdentity:
		return "grouping identity"
	case f.Unsynchronisation:
		return "unsynchronisation"
	case f.DataLengthIndicator:
		return "data length indicator"
	}
	return ""
}

// Frame is a single parsed frame.
type Frame struct {
	ID      FrameType
	Flags   FrameFlags
	Content FrameContent
}

// FrameContent is the decoded body of a frame. The set of
// implementations is closed: Text, UserText, URL, UserURL, Comment,
// UniqueFileID, Private, Picture, Link and Binary.
type FrameContent interface {
	frameContent()
}

// Text is the body of a T*** frame other than TXXX. A frame may carry
// several values, stored in wire order.
type Text struct {
	Encoding Encoding
	Values   []string
}

// UserText is the body of a TXXX frame.
type UserText struct {
	Encoding    Encoding
	Description string
	Value       string
}

// URL is the body of a W*** frame other than WXXX. The URL itself is
// always Latin-1 on the wire.
type URL struct {
	URL string
}

// UserURL is the body of a WXXX frame. Only the description uses the
// frame's encoding.
type UserURL struct {
	Encoding    Encoding
	Description string
	URL         string
}

// Comment is the body of a COMM or USLT frame.
type Comment struct {
	Encoding    Encoding
	Language    string
	Description string
	Text        string
}

// UniqueFileID is the body of a UFID frame.
type UniqueFileID struct {
	Owner      string
	Identifier []byte
}

// Private is the body of a PRIV frame.
type Private struct {
	Owner string
	Data  []byte
}

// Picture is the body of an APIC frame. In v2.2 PIC frames the wire
// carries a 3-byte image format instead of a MIME type; parsing maps
// the common formats to their MIME types.
type Picture struct {
	Encoding    Encoding
	MIMEType    string
	PictureType PictureType
	Description string
	Data        []byte
}

// Link is the body of a LINK frame. Target is the identifier of the
// linked frame and is always 4 bytes, in every tag version.
type Link struct {
	Target FrameType
	URL    string
	ID     string
}

// Binary is the body of any frame this package has no structured
// representation for, and of frames whose format flags make the body
// opaque. It writes back exactly the bytes that were read.
type Binary struct {
	Data []byte
}

func (Text) frameContent()         {}
func (UserText) frameContent()     {}
func (URL) frameContent()          {}
func (UserURL) frameContent()      {}
func (Comment) frameContent()      {}
func (UniqueFileID) frameContent() {}
func (Private) frameContent()      {}
func (Picture) frameContent()      {}
func (Link) frameContent()         {}
func (Binary) frameContent()       {}

// DecodeContent re-parses a frame that was kept as Binary because a
// format flag made its body opaque. It returns UnsupportedFeature; the
// raw body is available in the Binary content for callers that want to
// undo the transformation themselves.
func (f Frame) DecodeContent() (FrameContent, error) {
	if !f.Flags.opaque() {
		return f.Content, nil
	}
	return nil, UnsupportedFeature{Feature: f.Flags.opaqueFeature()}
}

// parseFrameBody decodes a frame body into its structured content.
// Bodies too short for their layout degrade to Binary rather than
// failing the parse; only the frame header layer reports errors.
func parseFrameBody(id FrameType, flags FrameFlags, body []byte, v Version) FrameContent {
	if flags.opaque() {
		return Binary{Data: clone(body)}
	}
	switch classify(v, id) {
	case kindText:
		return parseText(body, v)
	case kindUserText:
		return parseUserText(body, v)
	case kindURL:
		return URL{URL: decodeText(EncodingLatin1, body)}
	case kindUserURL:
		return parseUserURL(body, v)
	case kindComment:
		return parseComment(body, v)
	case kindUFID:
		owner, data, _ := cutNull(EncodingLatin1, body)
		return UniqueFileID{
			Owner:      decodeText(EncodingLatin1, owner),
			Identifier: clone(data),
		}
	case kindPrivate:
		owner, data, _ := cutNull(EncodingLatin1, body)
		return Private{
			Owner: decodeText(EncodingLatin1, owner),
			Data:  clone(data),
		}
	case kindPicture:
		return parsePicture(body, v)
	case kindLink:
		return parseLink(body)
	}
	return Binary{Data: clone(body)}
}

func parseText(body []byte, v Version) FrameContent {
	if len(body) < 1 {
		return Binary{Data: clone(body)}
	}
	enc := pickEncoding(body[0], v)
	var values []string
	for _, part := range splitNull(enc, body[1:]) {
		values = append(values, decodeText(enc, part))
	}
	return Text{Encoding: enc, Values: values}
}

func parseUserText(body []byte, v Version) FrameContent {
	if len(body) < 1 {
		return Binary{Data: clone(body)}
	}
	enc := pickEncoding(body[0], v)
	desc, rest, _ := cutNull(enc, body[1:])
	return UserText{
		Encoding:    enc,
		Description: decodeText(enc, desc),
		Value:       decodeText(enc, rest),
	}
}

func parseUserURL(body []byte, v Version) FrameContent {
	if len(body) < 1 {
		return Binary{Data: clone(body)}
	}
	enc := pickEncoding(body[0], v)
	desc, rest, _ := cutNull(enc, body[1:])
	url, _, _ := cutNull(EncodingLatin1, rest)
	return UserURL{
		Encoding:    enc,
		Description: decodeText(enc, desc),
		URL:         decodeText(EncodingLatin1, url),
	}
}

func parseComment(body []byte, v Version) FrameContent {
	if len(body) < 4 {
		return Binary{Data: clone(body)}
	}
	enc := pickEncoding(body[0], v)
	desc, rest, _ := cutNull(enc, body[4:])
	return Comment{
		Encoding:    enc,
		Language:    string(body[1:4]),
		Description: decodeText(enc, desc),
		Text:        decodeText(enc, rest),
	}
}

var pictureFormatMIME = map[string]string{
	"PNG": "image/png",
	"JPG": "image/jpeg",
	"GIF": "image/gif",
	"BMP": "image/bmp",
}

var pictureMIMEFormat = map[string]string{
	"image/png":  "PNG",
	"image/jpeg": "JPG",
	"image/gif":  "GIF",
	"image/bmp":  "BMP",
}

func parsePicture(body []byte, v Version) FrameContent {
	if len(body) < 1 {
		return Binary{Data: clone(body)}
	}
	enc := pickEncoding(body[0], v)
	var mime string
	var rest []byte
	if v == Version22 {
		if len(body) < 5 {
			return Binary{Data: clone(body)}
		}
		format := string(body[1:4])
		mime = pictureFormatMIME[format]
		if mime == "" {
			mime = format
		}
		rest = body[4:]
	} else {
		var m []byte
		m, rest, _ = cutNull(EncodingLatin1, body[1:])
		mime = decodeText(EncodingLatin1, m)
		if len(rest) < 1 {
			return Binary{Data: clone(body)}
		}
	}
	ptype := PictureType(rest[0])
	desc, data, _ := cutNull(enc, rest[1:])
	return Picture{
		Encoding:    enc,
		MIMEType:    mime,
		PictureType: ptype,
		Description: decodeText(enc, desc),
		Data:        clone(data),
	}
}

func parseLink(body []byte) FrameContent {
	if len(body) < 4 {
		return Binary{Data: clone(body)}
	}
	url, rest, _ := cutNull(EncodingLatin1, body[4:])
	return Link{
		Target: FrameType(body[:4]),
		URL:    decodeText(EncodingLatin1, url),
		ID:     decodeText(EncodingLatin1, rest),
	}
}

// appendFrameBody serializes a frame's content, choosing encodings the
// target version can express.
func appendFrameBody(dst []byte, f Frame, v Version) ([]byte, error) {
	switch c := f.Content.(type) {
	case Text:
		enc := compatibleEncoding(c.Encoding, v)
		dst = append(dst, byte(enc))
		for i, val := range c.Values {
			if i > 0 {
				dst = append(dst, enc.terminator()...)
			}
			dst = append(dst, encodeText(enc, val)...)
		}
	case UserText:
		enc := compatibleEncoding(c.Encoding, v)
		dst = append(dst, byte(enc))
		dst = append(dst, encodeText(enc, c.Description)...)
		dst = append(dst, enc.terminator()...)
		dst = append(dst, encodeText(enc, c.Value)...)
	case URL:
		dst = append(dst, encodeText(EncodingLatin1, c.URL)...)
	case UserURL:
		enc := compatibleEncoding(c.Encoding, v)
		dst = append(dst, byte(enc))
		dst = append(dst, encodeText(enc, c.Description)...)
		dst = append(dst, enc.terminator()...)
		dst = append(dst, encodeText(EncodingLatin1, c.URL)...)
	case Comment:
		enc := compatibleEncoding(c.Encoding, v)
		lang := c.Language
		if len(lang) != 3 {
			return nil, UnrepresentableFrame{ID: f.ID, Version: v}
		}
		dst = append(dst, byte(enc))
		dst = append(dst, lang...)
		dst = append(dst, encodeText(enc, c.Description)...)
		dst = append(dst, enc.terminator()...)
		dst = append(dst, encodeText(enc, c.Text)...)
	case UniqueFileID:
		dst = append(dst, encodeText(EncodingLatin1, c.Owner)...)
		dst = append(dst, 0)
		dst = append(dst, c.Identifier...)
	case Private:
		dst = append(dst, encodeText(EncodingLatin1, c.Owner)...)
		dst = append(dst, 0)
		dst = append(dst, c.Data...)
	case Picture:
		enc := compatibleEncoding(c.Encoding, v)
		dst = append(dst, byte(enc))
		if v == Version22 {
			dst = append(dst, pictureFormat(c.MIMEType)...)
		} else {
			dst = append(dst, encodeText(EncodingLatin1, c.MIMEType)...)
			dst = append(dst, 0)
		}
		dst = append(dst, byte(c.PictureType))
		dst = append(dst, encodeText(enc, c.Description)...)
		dst = append(dst, enc.terminator()...)
		dst = append(dst, c.Data...)
	case Link:
		if len(c.Target) != 4 || v == Version22 {
			return nil, UnrepresentableFrame{ID: f.ID, Version: v}
		}
		dst = append(dst, c.Target...)
		dst = append(dst, encodeText(EncodingLatin1, c.URL)...)
		dst = append(dst, 0)
		dst = append(dst, encodeText(EncodingLatin1, c.ID)...)
	case Binary:
		dst = append(dst, c.Data...)
	default:
		return nil, UnrepresentableFrame{ID: f.ID, Version: v}
	}
	return dst, nil
}

// pictureFormat maps a MIME type back to the 3-byte image format of
// v2.2 PIC frames.
func pictureFormat(mime string) []byte {
	if f, ok := pictureMIMEFormat[mime]; ok {
		return []byte(f)
	}
	f := []byte(mime)
	for len(f) < 3 {
		f = append(f, ' ')
	}
	return f[:3]
}
