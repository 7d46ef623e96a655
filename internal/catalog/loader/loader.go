package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"catalog-search/internal/catalog/model"
	"catalog-search/internal/fileio"
	"catalog-search/internal/utils"
)

// Result is one full load pass: the catalogs that came up plus a
// user-facing warning per vendor that did not.
type Result struct {
	Catalogs []model.Catalog
	Warnings []string
}

// LoadAll loads every source from dir. A vendor whose file is missing or
// unparseable is skipped with a warning; the load itself never fails.
func LoadAll(dir string, sources []model.Source, logger zerolog.Logger) Result {
	var res Result
	for _, src := range sources {
		cat, err := loadSource(dir, src)
		if err != nil {
			logger.Warn().Str("catalog", src.Name).Err(err).Msg("catalog skipped")
			res.Warnings = append(res.Warnings, fmt.Sprintf("Could not load %s catalog: %v", src.Name, err))
			continue
		}
		logger.Info().
			Str("catalog", cat.Name).
			Str("sheet", cat.Sheet).
			Int("records", len(cat.Records)).
			Msg("catalog loaded")
		res.Catalogs = append(res.Catalogs, cat)
	}
	return res
}

func loadSource(dir string, src model.Source) (model.Catalog, error) {
	f, err := os.Open(filepath.Join(dir, src.Filename))
	if err != nil {
		return model.Catalog{}, err
	}
	defer f.Close()

	sheets, err := fileio.ReadSheets(f, src.Filename)
	if err != nil {
		return model.Catalog{}, err
	}
	sheet, ok := pickSheet(sheets, src)
	if !ok {
		return model.Catalog{}, fmt.Errorf("no sheet reaches description column %d", src.DescCol)
	}
	recs := buildRecords(sheet, src)
	if len(recs) == 0 {
		return model.Catalog{}, fmt.Errorf("sheet %q has no product rows", sheet.Name)
	}
	return model.Catalog{Name: src.Name, Sheet: sheet.Name, Records: recs}, nil
}

// pickSheet: a SecondSheet source takes the workbook's second sheet when
// there is one; everything else takes the first sheet wide enough to hold
// the description column.
func pickSheet(sheets []fileio.Sheet, src model.Source) (fileio.Sheet, bool) {
	if src.SecondSheet && len(sheets) > 1 {
		return sheets[1], true
	}
	for _, s := range sheets {
		if s.Width() > src.DescCol {
			return s, true
		}
	}
	return fileio.Sheet{}, false
}

func buildRecords(sheet fileio.Sheet, src model.Source) []model.Record {
	// clamp the price column to the sheet's actual width
	priceCol := src.PriceCol
	if w := sheet.Width(); priceCol > w-1 {
		priceCol = w - 1
	}

	var out []model.Record
	for i := range sheet.Rows {
		desc := sheet.Cell(i, src.DescCol)
		for _, c := range src.ExtraCols {
			if extra := sheet.Cell(i, c); extra != "" {
				if desc == "" {
					desc = extra
				} else {
					desc = desc + " " + extra
				}
			}
		}
		if desc == "" {
			continue
		}
		code := sheet.Cell(i, src.CodeCol)
		if code == "" {
			code = "N/A"
		}
		out = append(out, model.Record{
			Code:        code,
			Description: desc,
			Price:       utils.FormatPrice(sheet.Cell(i, priceCol)),
			Catalog:     src.Name,
		})
	}
	return out
}
