package metadata

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	"golang.org/x/text/encoding/unicode"
)

// extractEXIF decodes the file's EXIF block into display-name keyed strings.
// The parser library panics on some malformed inputs, so the whole pass runs
// under a recover guard.
func extractEXIF(path string) (fields map[string]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			fields = nil
			err = fmt.Errorf("exif parser panic: %v", r)
		}
	}()

	rawExif, err := exif.SearchFileAndExtractExif(path)
	if err != nil {
		return nil, err
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return nil, err
	}

	fields = make(map[string]string)
	for _, entry := range entries {
		name, ok := displayName(entry)
		if !ok {
			continue
		}
		value, ok := normalizeValue(entry)
		if !ok {
			continue
		}
		fields[name] = value
	}
	return fields, nil
}

// displayName resolves an entry to its allow-listed display name. The
// interoperability IFD is skipped outright, and GPS tags resolve through
// their own table because their identifiers overlap the primary IFD's.
func displayName(entry exif.ExifTag) (string, bool) {
	if strings.Contains(entry.IfdPath, "Iop") {
		return "", false
	}
	if strings.HasSuffix(entry.IfdPath, "GPSInfo") {
		name, ok := gpsTagNames[entry.TagId]
		return name, ok
	}
	name, ok := exifTagNames[entry.TagId]
	return name, ok
}

// normalizeValue renders a raw tag value as a display string, or reports
// false for values without a flat representation (multi-element rationals,
// GPS coordinate blocks, zero denominators).
func normalizeValue(entry exif.ExifTag) (string, bool) {
	switch value := entry.Value.(type) {
	case string:
		return strings.TrimRight(value, "\x00"), true
	case []byte:
		return decodeByteString(value), true
	case []uint16:
		if len(value) != 1 {
			return "", false
		}
		return strconv.FormatUint(uint64(value[0]), 10), true
	case []uint32:
		if len(value) != 1 {
			return "", false
		}
		return strconv.FormatUint(uint64(value[0]), 10), true
	case []int32:
		if len(value) != 1 {
			return "", false
		}
		return strconv.FormatInt(int64(value[0]), 10), true
	case []exifcommon.Rational:
		if len(value) != 1 {
			return "", false
		}
		return formatRational(entry.TagId, int64(value[0].Numerator), int64(value[0].Denominator))
	case []exifcommon.SignedRational:
		if len(value) != 1 {
			return "", false
		}
		return formatRational(entry.TagId, int64(value[0].Numerator), int64(value[0].Denominator))
	default:
		// Undefined-type tags (UserComment and friends) come back as
		// library-specific structs; fall back to the library's rendering.
		formatted := strings.TrimSpace(entry.Formatted)
		if formatted == "" || strings.HasPrefix(formatted, "!") {
			return "", false
		}
		return formatted, true
	}
}

// formatRational renders a single rational value. A zero denominator cannot
// be formatted and drops the field. Shutter speed, aperture, and focal
// length carry their conventional photographic notations.
func formatRational(tagID uint16, num, den int64) (string, bool) {
	if den == 0 {
		return "", false
	}
	quotient := float64(num) / float64(den)
	switch tagID {
	case tagExposureTime:
		if num < den {
			return fmt.Sprintf("1/%d", int64(math.Round(float64(den)/float64(num)))), true
		}
		return fmt.Sprintf("%.1fs", quotient), true
	case tagFNumber:
		return fmt.Sprintf("f/%.1f", quotient), true
	case tagFocalLength:
		return fmt.Sprintf("%.1fmm", quotient), true
	default:
		return strconv.FormatFloat(quotient, 'g', -1, 64), true
	}
}

// decodeByteString interprets a byte-valued tag. Windows XP tags store
// UTF-16LE with NUL padding, so that decoding is attempted first; then
// UTF-8; a value that is neither is passed through raw.
func decodeByteString(raw []byte) string {
	if decoded, ok := decodeUTF16LE(raw); ok {
		return decoded
	}
	if utf8.Valid(raw) {
		return strings.TrimRight(string(raw), "\x00")
	}
	return string(raw)
}

func decodeUTF16LE(raw []byte) (string, bool) {
	if len(raw) == 0 || len(raw)%2 != 0 {
		return "", false
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	decoded, err := decoder.Bytes(raw)
	if err != nil {
		return "", false
	}
	text := string(decoded)
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", false
	}
	return strings.TrimRight(text, "\x00"), true
}
