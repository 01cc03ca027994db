package metadata

// exifTagNames maps raw EXIF tag identifiers to the display names exposed in
// the metadata map. The table is a strict allow-list: tags outside it are
// ignored, which bounds the output to a known vocabulary. GPS tags live in a
// separate table because their identifiers overlap the primary IFD's.
var exifTagNames = map[uint16]string{
	// Windows XP tags and ratings
	0x9C9B: "Title",    // XPTitle
	0x9C9F: "Subject",  // XPSubject
	0x9C9E: "Tags",     // XPKeywords
	0x9C9C: "Comments", // XPComment
	0x4746: "Rating",

	// Camera information
	0x010F: "Camera Make",
	0x0110: "Camera Model",
	0xA434: "Lens Model",
	0xA433: "Lens Make",
	0x0131: "Software",

	// Date/Time
	0x0132: "Date/Time",
	0x9003: "Date/Time Original",
	0x9004: "Date/Time Digitized",

	// Exposure settings
	0x829A: "Shutter Speed", // ExposureTime
	0x829D: "Aperture",      // FNumber
	0x8827: "ISO",
	0x8822: "Exposure Program",
	0xA402: "Exposure Mode",
	0x9204: "Exposure Compensation",
	0x9207: "Metering Mode",
	0x9209: "Flash",

	// Focal length
	0x920A: "Focal Length",
	0xA405: "Focal Length (35mm)",

	// Image properties
	0x0112: "Orientation",
	0x011A: "X Resolution",
	0x011B: "Y Resolution",
	0x0128: "Resolution Unit",
	0xA001: "Color Space",
	0xA403: "White Balance",

	// Other
	0x013B: "Artist",
	0x8298: "Copyright",
	0x010E: "Image Description",
	0x9286: "User Comment",
}

// gpsTagNames is the allow-list for tags inside the GPS IFD. Latitude and
// longitude are three-element rationals and get dropped by the composite
// exclusion; altitude is a single rational and survives.
var gpsTagNames = map[uint16]string{
	0x0002: "GPS Latitude",
	0x0004: "GPS Longitude",
	0x0006: "GPS Altitude",
}

// Raw identifiers whose rational values carry dedicated formatting.
const (
	tagExposureTime = 0x829A
	tagFNumber      = 0x829D
	tagFocalLength  = 0x920A
)
