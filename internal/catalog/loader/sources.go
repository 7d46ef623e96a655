package loader

import "catalog-search/internal/catalog/model"

// DefaultSources is the layout of the three vendor price lists. Column
// offsets are fixed per vendor; Crown splits its description over extra
// columns and keeps the product table on the workbook's second sheet.
func DefaultSources() []model.Source {
	return []model.Source{
		{Name: "Akzo", Filename: "akzo.xlsx", CodeCol: 0, DescCol: 4, PriceCol: 40},
		{Name: "Crown", Filename: "crown.xlsx", CodeCol: 0, DescCol: 4, ExtraCols: []int{6, 7}, PriceCol: 17, SecondSheet: true},
		{Name: "PPG", Filename: "ppg.xlsx", CodeCol: 0, DescCol: 4, PriceCol: 15},
	}
}
