package id3

// FrameType is a frame identifier: 3 bytes in v2.2 tags, 4 bytes in
// v2.3/v2.4 tags. Within a tag every frame's identifier length matches
// the tag version; the one exception is the linked-frame identifier
// inside a LINK payload, which is always 4 bytes (see Link).
type FrameType string

func (f FrameType) String() string {
	id := f
	if len(f) == 3 {
		if c, ok := id2To3[f]; ok {
			id = c
		}
	}
	if v, ok := FrameNames[id]; ok {
		return v
	}
	return string(f)
}

type frameKind int

const (
	kindBinary frameKind = iota
	kindText
	kindUserText
	kindURL
	kindUserURL
	kindComment
	kindUFID
	kindPrivate
	kindPicture
	kindLink
)

// frameKinds classifies the identifiers whose bodies do not follow the
// plain text/URL layout of their family, keyed by canonical 4-byte ID.
var frameKinds = map[FrameType]frameKind{
	"TXXX": kindUserText,
	"WXXX": kindUserURL,
	"COMM": kindComment,
	"USLT": kindComment,
	"UFID": kindUFID,
	"PRIV": kindPrivate,
	"APIC": kindPicture,
	"LINK": kindLink,
}

// classify returns the body layout for a frame identifier. It never
// fails: unknown T*** identifiers read as text frames and unknown W***
// identifiers as URL frames, the convention both dialect families
// share, and anything else is kept as opaque binary so that foreign
// frames round-trip losslessly.
func classify(version Version, id FrameType) frameKind {
	canonical := id
	if version == Version22 {
		if c, ok := id2To3[id]; ok {
			canonical = c
		}
	}
	if k, ok := frameKinds[canonical]; ok {
		// The structured LINK layout carries a 4-byte target
		// identifier; the v2.2 LNK body predates that and is kept
		// opaque.
		if k == kindLink && version == Version22 {
			return kindBinary
		}
		return k
	}
	switch canonical[0] {
	case 'T':
		return kindText
	case 'W':
		return kindURL
	}
	return kindBinary
}

// ConvertID translates a frame identifier between the 3-byte v2.2
// namespace and the shared 4-byte v2.3/v2.4 namespace. It reports
// false when no mapping exists; frames introduced after v2.2 have no
// 3-byte form.
func ConvertID(id FrameType, from, to Version) (FrameType, bool) {
	if (from == Version22) == (to == Version22) {
		return id, true
	}
	if from == Version22 {
		c, ok := id2To3[id]
		return c, ok
	}
	c, ok := id3To2[id]
	return c, ok
}

// id2To3 and id3To2 map between the identifier namespaces. Frames with
// no counterpart in the other namespace are absent, so lookups are
// fallible.
var id2To3 = map[FrameType]FrameType{
	"BUF": "RBUF",

	"CNT": "PCNT",
	"COM": "COMM",
	"CRA": "AENC",

	"ETC": "ETCO",

	"GEO": "GEOB",

	"IPL": "IPLS",

	"LNK": "LINK",

	"MCI": "MCDI",
	"MLL": "MLLT",

	"PIC": "APIC",
	"POP": "POPM",

	"REV": "RVRB",

	"SLT": "SYLT",
	"STC": "SYTC",

	"TAL": "TALB",
	"TBP": "TBPM",
	"TCM": "TCOM",
	"TCO": "TCON",
	"TCR": "TCOP",
	"TDY": "TDLY",
	"TEN": "TENC",
	"TFT": "TFLT",
	"TKE": "TKEY",
	"TLA": "TLAN",
	"TLE": "TLEN",
	"TMT": "TMED",
	"TOA": "TOPE",
	"TOF": "TOFN",
	"TOL": "TOLY",
	"TOT": "TOAL",
	"TP1": "TPE1",
	"TP2": "TPE2",
	"TP3": "TPE3",
	"TP4": "TPE4",
	"TPA": "TPOS",
	"TPB": "TPUB",
	"TRC": "TSRC",
	"TRK": "TRCK",
	"TSS": "TSSE",
	"TT1": "TIT1",
	"TT2": "TIT2",
	"TT3": "TIT3",
	"TXT": "TEXT",
	"TXX": "TXXX",
	"TYE": "TYER",

	"UFI": "UFID",
	"ULT": "USLT",

	"WAF": "WOAF",
	"WAR": "WOAR",
	"WAS": "WOAS",
	"WCM": "WCOM",
	"WCP": "WCOP",
	"WPB": "WPUB",
	"WXX": "WXXX",
}

var id3To2 = map[FrameType]FrameType{
	"RBUF": "BUF",

	"PCNT": "CNT",
	"COMM": "COM",
	"AENC": "CRA",

	"ETCO": "ETC",

	"GEOB": "GEO",

	"IPLS": "IPL",

	"LINK": "LNK",

	"MCDI": "MCI",
	"MLLT": "MLL",

	"APIC": "PIC",
	"POPM": "POP",

	"RVRB": "REV",

	"SYLT": "SLT",
	"SYTC": "STC",

	"TALB": "TAL",
	"TBPM": "TBP",
	"TCOM": "TCM",
	"TCON": "TCO",
	"TCOP": "TCR",
	"TDLY": "TDY",
	"TENC": "TEN",
	"TFLT": "TFT",
	"TKEY": "TKE",
	"TLAN": "TLA",
	"TLEN": "TLE",
	"TMED": "TMT",
	"TOPE": "TOA",
	"TOFN": "TOF",
	"TOLY": "TOL",
	"TOAL": "TOT",
	"TPE1": "TP1",
	"TPE2": "TP2",
	"TPE3": "TP3",
	"TPE4": "TP4",
	"TPOS": "TPA",
	"TPUB": "TPB",
	"TSRC": "TRC",
	"TRCK": "TRK",
	"TSSE": "TSS",
	"TIT1": "TT1",
	"TIT2": "TT2",
	"TIT3": "TT3",
	"TEXT": "TXT",
	"TXXX": "TXX",
	"TYER": "TYE",

	"UFID": "UFI",
	"USLT": "ULT",

	"WOAF": "WAF",
	"WOAR": "WAR",
	"WOAS": "WAS",
	"WCOM": "WCM",
	"WCOP": "WCP",
	"WPUB": "WPB",
	"WXXX": "WXX",
}

// FrameNames maps canonical 4-byte identifiers to their descriptions.
var FrameNames = map[FrameType]string{
	"AENC": "Audio encryption",
	"APIC": "Attached picture",
	"ASPI": "Audio seek point index",
	"COMM": "Comments",
	"COMR": "Commercial frame",

	"ENCR": "Encryption method registration",
	"EQUA": "Equalisation",
	"EQU2": "Equalisation (2)",
	"ETCO": "Event timing codes",

	"GEOB": "General encapsulated object",
	"GRID": "Group identification registration",

	"IPLS": "Involved people list",

	"LINK": "Linked information",

	"MCDI": "Music CD identifier",
	"MLLT": "MPEG location lookup table",

	"OWNE": "Ownership frame",

	"PRIV": "Private frame",
	"PCNT": "Play counter",
	"POPM": "Popularimeter",
	"POSS": "Position synchronisation frame",

	"RBUF": "Recommended buffer size",
	"RVAD": "Relative volume adjustment",
	"RVA2": "Relative volume adjustment (2)",
	"RVRB": "Reverb",

	"SEEK": "Seek frame",
	"SIGN": "Signature frame",
	"SYLT": "Synchronised lyric/text",
	"SYTC": "Synchronised tempo codes",

	"TALB": "Album/Movie/Show title",
	"TBPM": "BPM (beats per minute)",
	"TCOM": "Composer",
	"TCON": "Content type",
	"TCOP": "Copyright message",
	"TDAT": "Date",
	"TDEN": "Encoding time",
	"TDLY": "Playlist delay",
	"TDOR": "Original release time",
	"TDRC": "Recording time",
	"TDRL": "Release time",
	"TDTG": "Tagging time",
	"TENC": "Encoded by",
	"TEXT": "Lyricist/Text writer",
	"TFLT": "File type",
	"TIME": "Time",
	"TIPL": "Involved people list",
	"TIT1": "Content group description",
	"TIT2": "Title/songname/content description",
	"TIT3": "Subtitle/Description refinement",
	"TKEY": "Initial key",
	"TLAN": "Language(s)",
	"TLEN": "Length",
	"TMCL": "Musician credits list",
	"TMED": "Media type",
	"TMOO": "Mood",
	"TOAL": "Original album/movie/show title",
	"TOFN": "Original filename",
	"TOLY": "Original lyricist(s)/text writer(s)",
	"TORY": "Original release year",
	"TOPE": "Original artist(s)/performer(s)",
	"TOWN": "File owner/licensee",
	"TPE1": "Lead performer(s)/Soloist(s)",
	"TPE2": "Band/orchestra/accompaniment",
	"TPE3": "Conductor/performer refinement",
	"TPE4": "Interpreted, remixed, or otherwise modified by",
	"TPOS": "Part of a set",
	"TPRO": "Produced notice",
	"TPUB": "Publisher",
	"TRCK": "Track number/Position in set",
	"TRDA": "Recording dates",
	"TRSN": "Internet radio station name",
	"TRSO": "Internet radio station owner",
	"TSIZ": "Size",
	"TSOA": "Album sort order",
	"TSOP": "Performer sort order",
	"TSOT": "Title sort order",
	"TSO2": "Album Artist sort order", // iTunes extension
	"TSOC": "Composer sort order",     // iTunes extension
	"TSRC": "ISRC (international standard recording code)",
	"TSSE": "Software/Hardware and settings used for encoding",
	"TSST": "Set subtitle",
	"TYER": "Year",
	"TXXX": "User defined text information frame",

	"UFID": "Unique file identifier",
	"USER": "Terms of use",
	"USLT": "Unsynchronised lyric/text transcription",

	"WCOM": "Commercial information",
	"WCOP": "Copyright/Legal information",
	"WOAF": "Official audio file webpage",
	"WOAR": "Official artist/performer webpage",
	"WOAS": "Official audio source webpage",
	"WORS": "Official Internet radio station homepage",
	"WPAY": "Payment",
	"WPUB": "Publishers official webpage",
	"WXXX": "User defined URL link frame",
}

type PictureType byte

func (p PictureType) String() string {
	if int(p) >= len(PictureTypes) {
		return ""
	}
	return PictureTypes[p]
}

var PictureTypes = []string{
	"Other",
	"32x32 pixels 'file icon' (PNG only)",
	"Other file icon",
	"Cover (front)",
	"Cover (back)",
	"Leaflet page",
	"Media (e.g. label side of CD)",
	"Lead artist/lead performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/Orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording Location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright coloured fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/Studio logotype",
}
