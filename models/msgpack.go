package models

import (
	"bytes"
	"strings"

	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgPackContentType is the media type of msgpack-encoded API responses
const MsgPackContentType = "application/msgpack"

// BodyEncodingHeader lets a client ask for msgpack without touching Accept
const BodyEncodingHeader = "X-Body-Encoding"

// WantsMsgPack reports whether a client asked for msgpack, either through
// Accept or through X-Body-Encoding: msgpack.
func WantsMsgPack(accept, bodyEncoding string) bool {
	if strings.EqualFold(strings.TrimSpace(bodyEncoding), "msgpack") {
		return true
	}
	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if strings.EqualFold(mediaType, MsgPackContentType) || strings.EqualFold(mediaType, "application/x-msgpack") {
			return true
		}
	}
	return false
}

// EncodeMsgPack encodes v using json tag names so msgpack and JSON clients
// see the same field names.
func EncodeMsgPack(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, serr.Wrap(err, "failed to msgpack encode response")
	}
	return buf.Bytes(), nil
}

// DecodeMsgPack decodes msgpack bytes produced by EncodeMsgPack into v
func DecodeMsgPack(data []byte, v interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(v); err != nil {
		return serr.Wrap(err, "failed to msgpack decode body")
	}
	return nil
}
