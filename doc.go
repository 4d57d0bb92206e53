/*
Package id3 reads and writes ID3v2 metadata tags in their v2.2, v2.3
and v2.4 dialects.

Supported versions

All three dialects are parsed and serialized. Tags are not silently
upgraded: a v2.2 tag parses into v2.2 frames with 3-byte identifiers,
and serializing keeps the tag's version unless you change it. ConvertID
translates identifiers between the 3-byte and 4-byte namespaces when
you move frames across versions.

Leniency

Parsing is strict about structure and lenient about content. A damaged
tag header, a truncated frame, an unsupported major version or a tag
using the whole-tag unsynchronisation scheme (whose 0x00 stuffing this
codec does not undo) fails the whole parse. Everything else is absorbed: invalid encoding bytes fall
back to ISO-8859-1, bodies too short for their layout are kept as
Binary, and advisory length limits from the format documents are never
enforced (Validate reports them if you care). Frames whose format
flags alter the body encoding, such as compression or per-frame
unsynchronisation, are kept as raw Binary so they survive a
parse/serialize round trip byte for byte; DecodeContent tells you which
feature is in the way.

A v2.2 tag with the header compression flag set parses into a tag with
no frames, because v2.2 never defined what the flag means for the data.
*/
package id3
