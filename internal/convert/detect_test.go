package convert

import "testing"

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "pdf",
			data: []byte("%PDF-1.7\n%..."),
			want: "pdf",
		},
		{
			name: "epub",
			data: append([]byte{0x50, 0x4B, 0x03, 0x04}, []byte("\x00\x00mimetypeapplication/epub+zip")...),
			want: "epub",
		},
		{
			name: "plain zip",
			data: []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00},
			want: "zip",
		},
		{
			name: "mobi",
			data: mobiHeader(),
			want: "mobi",
		},
		{
			name: "text",
			data: []byte("Just some plain prose.\n"),
			want: "txt",
		},
		{
			name: "binary",
			data: []byte{0x00, 0x01, 0x02, 0xFF},
			want: "unknown",
		},
		{
			name: "empty",
			data: nil,
			want: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectFormat(tt.data)
			if got != tt.want {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func mobiHeader() []byte {
	data := make([]byte, 68)
	for i := range data[:60] {
		data[i] = 'x'
	}
	copy(data[60:], "BOOKMOBI")
	return data
}

func TestPDFPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"book.epub", "book.pdf"},
		{"/tmp/my book.mobi", "/tmp/my book.pdf"},
		{"noext", "noext.pdf"},
	}
	for _, tt := range tests {
		if got := PDFPath(tt.in); got != tt.want {
			t.Errorf("PDFPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
