package vfs

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Encoding represents a character encoding.
type Encoding string

const (
	// EncodingUTF8 is UTF-8 encoding (default).
	EncodingUTF8 Encoding = "utf-8"

	// EncodingUTF8BOM is UTF-8 encoding with BOM.
	EncodingUTF8BOM Encoding = "utf-8-bom"

	// EncodingUTF16LE is UTF-16 Little Endian.
	EncodingUTF16LE Encoding = "utf-16le"

	// EncodingUTF16BE is UTF-16 Big Endian.
	EncodingUTF16BE Encoding = "utf-16be"

	// EncodingUnknown is content that is not valid UTF-8 and carries no BOM.
	EncodingUnknown Encoding = "unknown"
)

// LineEnding represents the line ending style.
type LineEnding string

const (
	// LineEndingLF is Unix-style line ending (\n).
	LineEndingLF LineEnding = "lf"

	// LineEndingCRLF is Windows-style line ending (\r\n).
	LineEndingCRLF LineEnding = "crlf"
)

// BOM (Byte Order Mark) constants
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeError reports content that cannot be decoded as editable text.
type DecodeError struct {
	Encoding Encoding
	// Offset is the byte offset of the first undecodable byte, or -1 when
	// the whole encoding is unsupported.
	Offset int
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("unsupported encoding %s", e.Encoding)
	}
	return fmt.Sprintf("invalid UTF-8 at byte %d", e.Offset)
}

// DetectEncoding attempts to detect the encoding of file content.
// It checks for BOM markers first, then validates UTF-8.
func DetectEncoding(content []byte) Encoding {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return EncodingUTF8BOM
	case bytes.HasPrefix(content, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(content, bomUTF16BE):
		return EncodingUTF16BE
	case utf8.Valid(content):
		return EncodingUTF8
	default:
		return EncodingUnknown
	}
}

// DetectLineEnding reports CRLF when the content contains at least one
// "\r\n" pair and no bare '\n'; everything else is treated as LF.
func DetectLineEnding(content []byte) LineEnding {
	crlf := bytes.Count(content, []byte("\r\n"))
	if crlf == 0 {
		return LineEndingLF
	}
	if bytes.Count(content, []byte{'\n'}) != crlf {
		return LineEndingLF
	}
	return LineEndingCRLF
}

// NormalizeLineEndings converts every line break to the specified style.
// Only "\r\n" and '\n' are line breaks; bare '\r' characters are left alone.
func NormalizeLineEndings(text string, ending LineEnding) string {
	lf := strings.ReplaceAll(text, "\r\n", "\n")
	if ending == LineEndingCRLF {
		return strings.ReplaceAll(lf, "\n", "\r\n")
	}
	return lf
}

// DecodeText converts raw file content into editable UTF-8 text.
// A UTF-8 BOM is stripped and reported as EncodingUTF8BOM. UTF-16 content
// and invalid UTF-8 fail with a *DecodeError.
func DecodeText(content []byte) (string, Encoding, error) {
	enc := DetectEncoding(content)
	switch enc {
	case EncodingUTF16LE, EncodingUTF16BE:
		return "", enc, &DecodeError{Encoding: enc, Offset: -1}
	case EncodingUnknown:
		return "", enc, &DecodeError{Encoding: enc, Offset: invalidUTF8Offset(content)}
	case EncodingUTF8BOM:
		if off := invalidUTF8Offset(content); off >= 0 {
			return "", enc, &DecodeError{Encoding: enc, Offset: off}
		}
		text, err := unicode.UTF8BOM.NewDecoder().Bytes(content)
		if err != nil {
			return "", enc, err
		}
		return string(text), enc, nil
	default:
		return string(content), enc, nil
	}
}

// EncodeText converts text back into file content for the given encoding.
// Only the UTF-8 encodings are writable.
func EncodeText(text string, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingUTF8BOM:
		return unicode.UTF8BOM.NewEncoder().Bytes([]byte(text))
	case EncodingUTF8, "":
		return []byte(text), nil
	default:
		return nil, &DecodeError{Encoding: enc, Offset: -1}
	}
}

// invalidUTF8Offset returns the byte offset of the first invalid UTF-8
// sequence, or -1 if content is valid.
func invalidUTF8Offset(content []byte) int {
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
