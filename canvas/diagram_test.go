package canvas

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDumpRoomDiagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.puml")
	rooms := []DiagramRoom{{Identifier: 1}, {Identifier: 2}}
	aisles := []DiagramAisle{{RoomA: 1, RoomB: 2}}

	if err := DumpRoomDiagram(path, rooms, aisles); err != nil {
		t.Fatalf("DumpRoomDiagram() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"@startuml",
		`rectangle "room_1" as R1`,
		`rectangle "room_2" as R2`,
		"R1 -- R2",
		"@enduml",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("diagram output missing %q\ngot:\n%s", want, text)
		}
	}
}
