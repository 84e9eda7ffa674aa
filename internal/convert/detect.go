package convert

import "bytes"

// DetectFormat determines an input book's format from its magic bytes.
// Returns one of "pdf", "epub", "mobi", "zip", "txt" or "unknown". A file
// already in PDF form skips conversion entirely.
func DetectFormat(data []byte) string {
	if len(data) == 0 {
		return "unknown"
	}

	// PDF: starts with %PDF
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return "pdf"
	}

	// EPUB: a zip container whose first entry is the mimetype file
	if len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B &&
		(data[2] == 0x03 || data[2] == 0x05 || data[2] == 0x07) {
		if bytes.Contains(data[:min(len(data), 256)], []byte("application/epub+zip")) {
			return "epub"
		}
		return "zip"
	}

	// MOBI/AZW: PalmDB header carries BOOKMOBI at offset 60
	if len(data) >= 68 && bytes.Equal(data[60:68], []byte("BOOKMOBI")) {
		return "mobi"
	}

	if isLikelyText(data) {
		return "txt"
	}

	return "unknown"
}

// isLikelyText checks if the data is likely plain text (no binary content)
func isLikelyText(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	sample := data[:min(len(data), 512)]
	if bytes.Contains(sample, []byte{0}) {
		return false
	}

	printable := 0
	for _, b := range sample {
		if (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' {
			printable++
		}
	}
	return float64(printable)/float64(len(sample)) > 0.9
}
