package canvas

import (
	"fmt"
	"os"
)

// DiagramRoom is the minimal room shape DumpRoomDiagram needs: an
// identifier to label the rectangle with. Callers pass dungeon.Room values
// satisfying this through a small adapter, keeping canvas free of a
// dependency on the dungeon package.
type DiagramRoom struct {
	Identifier uint16
}

// DiagramAisle is the minimal aisle shape DumpRoomDiagram needs: the two
// room identifiers it connects.
type DiagramAisle struct {
	RoomA, RoomB uint16
}

// DumpRoomDiagram writes a PlantUML room-connectivity graph to path: one
// rectangle per room, one edge per aisle, framed by @startuml/@enduml. The
// file handle is acquired and closed within this call on every exit path.
func DumpRoomDiagram(path string, rooms []DiagramRoom, aisles []DiagramAisle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, "@startuml"); err != nil {
		return err
	}

	for _, r := range rooms {
		if _, err := fmt.Fprintf(f, "rectangle \"room_%d\" as R%d\n", r.Identifier, r.Identifier); err != nil {
			return err
		}
	}

	for _, a := range aisles {
		if _, err := fmt.Fprintf(f, "R%d -- R%d\n", a.RoomA, a.RoomB); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(f, "@enduml"); err != nil {
		return err
	}

	return nil
}
