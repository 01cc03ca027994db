package metadata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	iptc "github.com/dsoprea/go-iptc"
)

// iptcDatasetNames maps record-2 dataset numbers to display names. Datasets
// outside the table are ignored.
var iptcDatasetNames = map[uint8]string{
	5:   "Object Name",
	15:  "Category",
	20:  "Supplemental Categories",
	25:  "Keywords",
	55:  "Date Created",
	80:  "By-line",
	85:  "By-line Title",
	90:  "City",
	95:  "State",
	101: "Country",
	105: "Headline",
	110: "Credit",
	115: "Source",
	116: "Copyright",
	120: "Caption",
	122: "Writer",
}

var errNoIPTC = errors.New("no iptc block")

// extractIPTC locates the IPTC block inside the file's Photoshop APP13
// segment and decodes its record-2 datasets. Repeatable datasets such as
// keywords are joined into one comma-separated string; blank values are
// omitted.
func extractIPTC(path string) (fields map[string]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			fields = nil
			err = fmt.Errorf("iptc parser panic: %v", r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	block, err := findIPTCBlock(data)
	if err != nil {
		return nil, err
	}

	tags, err := iptc.ParseStream(bytes.NewReader(block))
	if err != nil {
		return nil, err
	}

	fields = make(map[string]string)
	for key, values := range tags {
		if key.RecordNumber != 2 {
			continue
		}
		name, ok := iptcDatasetNames[key.DatasetNumber]
		if !ok {
			continue
		}
		var parts []string
		for _, value := range values {
			text := strings.TrimSpace(decodeIPTCValue(value))
			if text != "" {
				parts = append(parts, text)
			}
		}
		if len(parts) > 0 {
			fields[name] = strings.Join(parts, ", ")
		}
	}
	return fields, nil
}

func decodeIPTCValue(raw []byte) string {
	return string(bytes.TrimRight(raw, "\x00"))
}

// findIPTCBlock walks the JPEG segment stream looking for a Photoshop 3.0
// APP13 segment and returns the payload of its 0x0404 (IPTC) image
// resource.
func findIPTCBlock(data []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		return nil, errors.New("not a jpeg stream")
	}

	offset := 2
	for offset+4 <= len(data) {
		if data[offset] != 0xFF {
			return nil, errors.New("corrupt segment marker")
		}
		marker := data[offset+1]
		// Standalone markers carry no length.
		if marker == 0xD8 || marker == 0x01 || (marker >= 0xD0 && marker <= 0xD7) {
			offset += 2
			continue
		}
		// Scan data begins; no APP13 past this point.
		if marker == 0xDA || marker == 0xD9 {
			break
		}
		length := int(binary.BigEndian.Uint16(data[offset+2 : offset+4]))
		if length < 2 || offset+2+length > len(data) {
			return nil, errors.New("segment length out of bounds")
		}
		if marker == 0xED {
			payload := data[offset+4 : offset+2+length]
			if block, err := findPhotoshopResource(payload, 0x0404); err == nil {
				return block, nil
			}
		}
		offset += 2 + length
	}
	return nil, errNoIPTC
}

var photoshopSignature = []byte("Photoshop 3.0\x00")

// findPhotoshopResource walks the 8BIM image resource blocks of an APP13
// payload and returns the data of the resource with the given identifier.
func findPhotoshopResource(payload []byte, resourceID uint16) ([]byte, error) {
	if !bytes.HasPrefix(payload, photoshopSignature) {
		return nil, errors.New("missing photoshop signature")
	}
	rest := payload[len(photoshopSignature):]

	for len(rest) >= 12 {
		if !bytes.HasPrefix(rest, []byte("8BIM")) {
			return nil, errors.New("missing 8BIM signature")
		}
		id := binary.BigEndian.Uint16(rest[4:6])

		// Pascal name: length byte plus content, padded to even size.
		nameLen := int(rest[6])
		nameSize := 1 + nameLen
		if nameSize%2 != 0 {
			nameSize++
		}
		body := rest[6+nameSize:]
		if len(body) < 4 {
			return nil, io.ErrUnexpectedEOF
		}
		dataSize := int(binary.BigEndian.Uint32(body[:4]))
		if dataSize < 0 || len(body) < 4+dataSize {
			return nil, io.ErrUnexpectedEOF
		}
		if id == resourceID {
			return body[4 : 4+dataSize], nil
		}

		advance := 4 + dataSize
		if dataSize%2 != 0 {
			advance++
		}
		if advance > len(body) {
			advance = len(body)
		}
		rest = body[advance:]
	}
	return nil, errNoIPTC
}
