package mimetypes

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown         MIME = "unknown"
	TextPlain       MIME = "text/plain"
	ApplicationJSON MIME = "application/json"
)

// accepted lists the document types that may hold a JSON record.
// Malformed JSON is only recognised as text, so both are let through
// and the parser reports the precise error.
var accepted = []MIME{ApplicationJSON, TextPlain}

// Matches reports whether a detected media type, parameters included,
// is the expected one.
func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// Sniff detects the media type of data and tells whether it can be
// handed to the JSON decoder.
func Sniff(data []byte) (MIME, bool) {
	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		for _, want := range accepted {
			if got, ok := Matches(m.String(), want); ok {
				return got, true
			}
		}
	}
	mt, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		return Unknown, false
	}
	return MIME(mt), false
}
