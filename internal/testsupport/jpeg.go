package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"sort"
	"testing"
	"unicode/utf16"
)

// TIFF field types used by the fixture builder.
const (
	TIFFByte      = 1
	TIFFASCII     = 2
	TIFFShort     = 3
	TIFFLong      = 4
	TIFFRational  = 5
	TIFFSRational = 10
)

const tagExifIFDPointer = 0x8769

// ExifField is one raw TIFF entry to embed into a fixture image.
type ExifField struct {
	Tag  uint16
	Type uint16
	Data []byte
}

// IPTCDataset is one IPTC record to embed into a fixture image.
type IPTCDataset struct {
	Record  uint8
	Dataset uint8
	Value   string
}

// ExifASCII builds a NUL-terminated ASCII field.
func ExifASCII(tag uint16, value string) ExifField {
	return ExifField{Tag: tag, Type: TIFFASCII, Data: append([]byte(value), 0)}
}

// ExifShort builds a single 16-bit field.
func ExifShort(tag uint16, value uint16) ExifField {
	data := make([]byte, 2)
	binary.LittleEndian.PutUint16(data, value)
	return ExifField{Tag: tag, Type: TIFFShort, Data: data}
}

// ExifRational builds a single unsigned rational field.
func ExifRational(tag uint16, num, den uint32) ExifField {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[:4], num)
	binary.LittleEndian.PutUint32(data[4:], den)
	return ExifField{Tag: tag, Type: TIFFRational, Data: data}
}

// ExifSRational builds a single signed rational field.
func ExifSRational(tag uint16, num, den int32) ExifField {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[:4], uint32(num))
	binary.LittleEndian.PutUint32(data[4:], uint32(den))
	return ExifField{Tag: tag, Type: TIFFSRational, Data: data}
}

// ExifUTF16 builds a byte field holding the UTF-16LE encoding of value with
// a trailing NUL pair, the way Windows writes its XP* tags.
func ExifUTF16(tag uint16, value string) ExifField {
	var data []byte
	for _, unit := range utf16.Encode([]rune(value)) {
		data = append(data, byte(unit), byte(unit>>8))
	}
	data = append(data, 0, 0)
	return ExifField{Tag: tag, Type: TIFFByte, Data: data}
}

// ExifBytes builds a raw byte field.
func ExifBytes(tag uint16, data []byte) ExifField {
	return ExifField{Tag: tag, Type: TIFFByte, Data: data}
}

// WriteJPEG writes a minimal JPEG at path carrying an APP1 EXIF segment
// (ifd0 fields in the primary IFD, exifIFD fields in the Exif sub-IFD) and,
// when iptc is non-empty, an APP13 Photoshop segment with the IPTC block.
func WriteJPEG(t *testing.T, path string, ifd0, exifIFD []ExifField, iptc []IPTCDataset) {
	t.Helper()

	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xD8})

	tiff := buildTIFF(ifd0, exifIFD)
	exifPayload := append([]byte("Exif\x00\x00"), tiff...)
	writeSegment(&buf, 0xE1, exifPayload)

	if len(iptc) > 0 {
		writeSegment(&buf, 0xED, buildPhotoshop(buildIPTC(iptc)))
	}

	buf.Write([]byte{0xFF, 0xD9})

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write jpeg fixture: %v", err)
	}
}

func writeSegment(buf *bytes.Buffer, marker byte, payload []byte) {
	buf.Write([]byte{0xFF, marker})
	length := make([]byte, 2)
	binary.BigEndian.PutUint16(length, uint16(len(payload)+2))
	buf.Write(length)
	buf.Write(payload)
}

func typeSize(fieldType uint16) int {
	switch fieldType {
	case TIFFShort:
		return 2
	case TIFFLong:
		return 4
	case TIFFRational, TIFFSRational:
		return 8
	default:
		return 1
	}
}

// ifdSize returns the byte size of an IFD with n entries: entry count,
// twelve bytes per entry, next-IFD offset.
func ifdSize(n int) int {
	return 2 + 12*n + 4
}

// overflowSize returns the padded data-area bytes a field needs, zero when
// its value fits inline.
func overflowSize(field ExifField) int {
	if len(field.Data) <= 4 {
		return 0
	}
	size := len(field.Data)
	if size%2 != 0 {
		size++
	}
	return size
}

// buildTIFF assembles a little-endian TIFF stream with a primary IFD at
// offset 8 and, when exifIFD is non-empty, an Exif sub-IFD referenced via
// the 0x8769 pointer tag.
func buildTIFF(ifd0, exifIFD []ExifField) []byte {
	primary := append([]ExifField(nil), ifd0...)

	ifd0DataSize := 0
	for _, field := range primary {
		ifd0DataSize += overflowSize(field)
	}

	entries := len(primary)
	if len(exifIFD) > 0 {
		entries++
	}
	exifOffset := 8 + ifdSize(entries) + ifd0DataSize

	if len(exifIFD) > 0 {
		pointer := make([]byte, 4)
		binary.LittleEndian.PutUint32(pointer, uint32(exifOffset))
		primary = append(primary, ExifField{Tag: tagExifIFDPointer, Type: TIFFLong, Data: pointer})
	}

	var buf bytes.Buffer
	buf.WriteString("II")
	header := make([]byte, 6)
	binary.LittleEndian.PutUint16(header[:2], 42)
	binary.LittleEndian.PutUint32(header[2:], 8)
	buf.Write(header)

	buf.Write(buildIFD(primary, 8))
	if len(exifIFD) > 0 {
		buf.Write(buildIFD(exifIFD, exifOffset))
	}
	return buf.Bytes()
}

// buildIFD renders one IFD whose first byte sits at ifdOffset within the
// TIFF stream, entries sorted by tag, data area trailing the structure.
func buildIFD(fields []ExifField, ifdOffset int) []byte {
	sorted := append([]ExifField(nil), fields...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Tag < sorted[j].Tag })

	dataOffset := ifdOffset + ifdSize(len(sorted))

	var entries bytes.Buffer
	var data bytes.Buffer
	for _, field := range sorted {
		entry := make([]byte, 12)
		binary.LittleEndian.PutUint16(entry[0:2], field.Tag)
		binary.LittleEndian.PutUint16(entry[2:4], field.Type)
		binary.LittleEndian.PutUint32(entry[4:8], uint32(len(field.Data)/typeSize(field.Type)))
		if len(field.Data) <= 4 {
			copy(entry[8:12], field.Data)
		} else {
			binary.LittleEndian.PutUint32(entry[8:12], uint32(dataOffset+data.Len()))
			data.Write(field.Data)
			if len(field.Data)%2 != 0 {
				data.WriteByte(0)
			}
		}
		entries.Write(entry)
	}

	var buf bytes.Buffer
	count := make([]byte, 2)
	binary.LittleEndian.PutUint16(count, uint16(len(sorted)))
	buf.Write(count)
	buf.Write(entries.Bytes())
	buf.Write([]byte{0, 0, 0, 0})
	buf.Write(data.Bytes())
	return buf.Bytes()
}

// buildIPTC renders record datasets in the 0x1C wire format.
func buildIPTC(datasets []IPTCDataset) []byte {
	var buf bytes.Buffer
	for _, ds := range datasets {
		buf.WriteByte(0x1C)
		buf.WriteByte(ds.Record)
		buf.WriteByte(ds.Dataset)
		length := make([]byte, 2)
		binary.BigEndian.PutUint16(length, uint16(len(ds.Value)))
		buf.Write(length)
		buf.WriteString(ds.Value)
	}
	return buf.Bytes()
}

// buildPhotoshop wraps an IPTC block in a Photoshop 3.0 APP13 payload with
// a single 8BIM resource of identifier 0x0404.
func buildPhotoshop(iptcBlock []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("Photoshop 3.0\x00")
	buf.WriteString("8BIM")
	id := make([]byte, 2)
	binary.BigEndian.PutUint16(id, 0x0404)
	buf.Write(id)
	buf.Write([]byte{0, 0}) // empty pascal name, padded
	size := make([]byte, 4)
	binary.BigEndian.PutUint32(size, uint32(len(iptcBlock)))
	buf.Write(size)
	buf.Write(iptcBlock)
	if len(iptcBlock)%2 != 0 {
		buf.WriteByte(0)
	}
	return buf.Bytes()
}
