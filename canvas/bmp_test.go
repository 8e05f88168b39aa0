package canvas

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBitmapWriteRoundTripHeader(t *testing.T) {
	b := NewBitmap(5, 3)
	b.Rectangle(1, 1, 3, 2, RGB{255, 0, 0})

	path := filepath.Join(t.TempDir(), "out.bmp")
	if err := b.Write(path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if data[0] != 'B' || data[1] != 'M' {
		t.Errorf("bfType = %q, want \"BM\"", data[0:2])
	}

	biBitCount := int(data[14+14]) | int(data[14+15])<<8
	if biBitCount != 24 {
		t.Errorf("biBitCount = %d, want 24", biBitCount)
	}

	rowSize := (5*3 + 3) &^ 3
	wantSize := 14 + 40 + rowSize*3
	if len(data) != wantSize {
		t.Errorf("file size = %d bytes, want %d (row padding to 4 bytes)", len(data), wantSize)
	}
}

func TestBitmapPutOutOfBoundsIsNoop(t *testing.T) {
	b := NewBitmap(2, 2)
	b.Put(-1, 0, RGB{1, 2, 3})
	b.Put(0, 5, RGB{1, 2, 3})
	for _, px := range b.pixels {
		if px != (RGB{}) {
			t.Errorf("pixel = %+v, want zero value after out-of-bounds Put", px)
		}
	}
}
