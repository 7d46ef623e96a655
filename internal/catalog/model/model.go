package model

// Source describes one vendor file: where it lives and which fixed column
// offsets (0-based) hold the interesting cells.
type Source struct {
	Name        string // vendor name shown in the Catalog column
	Filename    string // relative to the data dir
	CodeCol     int    // product code column
	DescCol     int    // description column
	ExtraCols   []int  // optional extra columns appended to the description
	PriceCol    int    // price column, clamped to sheet width
	SecondSheet bool   // prefer the workbook's second sheet when present
}

// Record is one normalized catalog row.
type Record struct {
	Code        string `json:"code"`
	Description string `json:"product"`
	Price       string `json:"price"` // formatted currency text or "N/A"
	Catalog     string `json:"catalog"`
}

// Catalog is one vendor's loaded product list.
type Catalog struct {
	Name    string
	Sheet   string // worksheet the records came from
	Records []Record
}
