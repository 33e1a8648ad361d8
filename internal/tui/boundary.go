package tui

// The cartogram places every county on a coarse grid, one tile each, laid
// out to roughly echo the shape of the country: lake counties on the left
// edge, the coast strip lower right, the arid north across the top. Tiles
// are equal-sized on purpose; area on this map carries no meaning.
//
// Tile names follow the boundary atlas the grid was traced from, which
// titles every unit "<Name> County" and predates two renames: it still says
// "Keiyo-Marakwet" for Elgeyo Marakwet and "Tharaka" for Tharaka Nithi.
// Those spellings are kept as-is; the match package is what absorbs them.

// Grid dimensions in tiles. Not every cell is occupied.
const (
	gridCols = 9
	gridRows = 8
)

// Tile is one county cell on the cartogram.
type Tile struct {
	// Name is the boundary name as the atlas spells it. It is the string
	// handed to the resolver and the interaction coordinator, never shown
	// reinterpreted.
	Name string
	// Code is the three-letter label painted on the tile.
	Code string
	Col  int
	Row  int
}

// tiles lists all 47 counties in row-major order.
var tiles = []Tile{
	{Name: "Turkana County", Code: "TUR", Col: 1, Row: 0},
	{Name: "Marsabit County", Code: "MBT", Col: 3, Row: 0},
	{Name: "Mandera County", Code: "MDR", Col: 6, Row: 0},

	{Name: "West Pokot County", Code: "WPK", Col: 1, Row: 1},
	{Name: "Samburu County", Code: "SBR", Col: 2, Row: 1},
	{Name: "Isiolo County", Code: "ISL", Col: 4, Row: 1},
	{Name: "Wajir County", Code: "WJR", Col: 5, Row: 1},

	{Name: "Trans Nzoia County", Code: "TNZ", Col: 0, Row: 2},
	{Name: "Keiyo-Marakwet County", Code: "KMT", Col: 1, Row: 2},
	{Name: "Baringo County", Code: "BGO", Col: 2, Row: 2},
	{Name: "Laikipia County", Code: "LKA", Col: 3, Row: 2},
	{Name: "Meru County", Code: "MRU", Col: 4, Row: 2},
	{Name: "Garissa County", Code: "GSA", Col: 5, Row: 2},

	{Name: "Bungoma County", Code: "BGM", Col: 0, Row: 3},
	{Name: "Uasin Gishu County", Code: "UGU", Col: 1, Row: 3},
	{Name: "Nandi County", Code: "NDI", Col: 2, Row: 3},
	{Name: "Nyandarua County", Code: "NDR", Col: 3, Row: 3},
	{Name: "Nyeri County", Code: "NYR", Col: 4, Row: 3},
	{Name: "Tharaka County", Code: "THK", Col: 5, Row: 3},
	{Name: "Tana River County", Code: "TRV", Col: 6, Row: 3},

	{Name: "Busia County", Code: "BSA", Col: 0, Row: 4},
	{Name: "Kakamega County", Code: "KKG", Col: 1, Row: 4},
	{Name: "Kericho County", Code: "KRC", Col: 2, Row: 4},
	{Name: "Nakuru County", Code: "NKR", Col: 3, Row: 4},
	{Name: "Murang'a County", Code: "MRG", Col: 4, Row: 4},
	{Name: "Embu County", Code: "EMB", Col: 5, Row: 4},
	{Name: "Kitui County", Code: "KTI", Col: 6, Row: 4},
	{Name: "Lamu County", Code: "LMU", Col: 7, Row: 4},

	{Name: "Siaya County", Code: "SYA", Col: 0, Row: 5},
	{Name: "Vihiga County", Code: "VHG", Col: 1, Row: 5},
	{Name: "Kisumu County", Code: "KSM", Col: 2, Row: 5},
	{Name: "Bomet County", Code: "BMT", Col: 3, Row: 5},
	{Name: "Kiambu County", Code: "KBU", Col: 4, Row: 5},
	{Name: "Kirinyaga County", Code: "KRG", Col: 5, Row: 5},
	{Name: "Machakos County", Code: "MCK", Col: 6, Row: 5},
	{Name: "Kilifi County", Code: "KLF", Col: 7, Row: 5},

	{Name: "Homa Bay County", Code: "HBY", Col: 0, Row: 6},
	{Name: "Kisii County", Code: "KSI", Col: 1, Row: 6},
	{Name: "Nyamira County", Code: "NYM", Col: 2, Row: 6},
	{Name: "Narok County", Code: "NRK", Col: 3, Row: 6},
	{Name: "Nairobi City County", Code: "NBO", Col: 4, Row: 6},
	{Name: "Makueni County", Code: "MKN", Col: 5, Row: 6},
	{Name: "Kajiado County", Code: "KJD", Col: 6, Row: 6},
	{Name: "Taita Taveta County", Code: "TTA", Col: 7, Row: 6},
	{Name: "Mombasa County", Code: "MSA", Col: 8, Row: 6},

	{Name: "Migori County", Code: "MGR", Col: 0, Row: 7},
	{Name: "Kwale County", Code: "KWL", Col: 8, Row: 7},
}

// Boundaries returns the cartogram tiles in row-major order.
func Boundaries() []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	return out
}
