package canvas

import "warrens/internal/gridcell"

// minimapColors is the stable grid-to-colour mapping used to render a
// generated dungeon as a minimap. Empty and OutOfBounds deliberately alias
// to the same colour.
var minimapColors = map[gridcell.Type]RGB{
	gridcell.Floor:       {0, 0, 255},
	gridcell.Deck:        {255, 255, 0},
	gridcell.Gate:        {255, 0, 0},
	gridcell.Aisle:       {0, 255, 0},
	gridcell.Slope:       {255, 0, 255},
	gridcell.Atrium:      {0, 255, 255},
	gridcell.Empty:       {0, 0, 0},
	gridcell.OutOfBounds: {0, 0, 0},
}

// MinimapColor returns the stable colour a cell type is rendered as on the
// minimap.
func MinimapColor(t gridcell.Type) RGB {
	return minimapColors[t]
}
