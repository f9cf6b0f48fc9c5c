package sheets

// Spreadsheet is a spreadsheet resource.
type Spreadsheet struct {
	SpreadsheetID     string                `json:"spreadsheetId,omitempty"`
	Properties        SpreadsheetProperties `json:"properties"`
	Sheets            []Sheet               `json:"sheets,omitempty"`
	NamedRanges       []NamedRange          `json:"namedRanges,omitempty"`
	SpreadsheetURL    string                `json:"spreadsheetUrl,omitempty"`
	DeveloperMetadata []DeveloperMetadata   `json:"developerMetadata,omitempty"`
}

// SpreadsheetProperties are the spreadsheet-wide settings.
type SpreadsheetProperties struct {
	Title      string `json:"title,omitempty"`
	Locale     string `json:"locale,omitempty"`
	AutoRecalc string `json:"autoRecalc,omitempty"`
	TimeZone   string `json:"timeZone,omitempty"`
}

// Sheet is one tab of a spreadsheet. Data is only filled when grid data
// was requested.
type Sheet struct {
	Properties SheetProperties `json:"properties"`
	Data       []GridData      `json:"data,omitempty"`
}

// SheetProperties describe a sheet. A zero SheetID is omitted on the wire,
// which the API reads as sheet 0 or, in AddSheet, as "assign one".
type SheetProperties struct {
	SheetID        int64           `json:"sheetId,omitempty"`
	Title          string          `json:"title,omitempty"`
	Index          int             `json:"index,omitempty"`
	SheetType      SheetType       `json:"sheetType,omitempty"`
	GridProperties *GridProperties `json:"gridProperties,omitempty"`
	Hidden         bool            `json:"hidden,omitempty"`
	RightToLeft    bool            `json:"rightToLeft,omitempty"`
	TabColorStyle  *ColorStyle     `json:"tabColorStyle,omitempty"`
}

// GridProperties are the dimensions of a grid sheet.
type GridProperties struct {
	RowCount          int  `json:"rowCount,omitempty"`
	ColumnCount       int  `json:"columnCount,omitempty"`
	FrozenRowCount    int  `json:"frozenRowCount,omitempty"`
	FrozenColumnCount int  `json:"frozenColumnCount,omitempty"`
	HideGridlines     bool `json:"hideGridlines,omitempty"`
}

// ColorStyle is a theme color or an RGB color.
type ColorStyle struct {
	RGBColor   *Color `json:"rgbColor,omitempty"`
	ThemeColor string `json:"themeColor,omitempty"`
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	Red   float64  `json:"red,omitempty"`
	Green float64  `json:"green,omitempty"`
	Blue  float64  `json:"blue,omitempty"`
	Alpha *float64 `json:"alpha,omitempty"`
}

// GridData is the cell data of a rectangle of a sheet.
type GridData struct {
	StartRow    int       `json:"startRow,omitempty"`
	StartColumn int       `json:"startColumn,omitempty"`
	RowData     []RowData `json:"rowData,omitempty"`
}

// RowData is one row of cells.
type RowData struct {
	Values []CellData `json:"values,omitempty"`
}

// CellData is the content of one cell.
type CellData struct {
	UserEnteredValue *ExtendedValue `json:"userEnteredValue,omitempty"`
	EffectiveValue   *ExtendedValue `json:"effectiveValue,omitempty"`
	FormattedValue   string         `json:"formattedValue,omitempty"`
	Hyperlink        string         `json:"hyperlink,omitempty"`
	Note             string         `json:"note,omitempty"`
}

// ExtendedValue holds exactly one of its fields.
type ExtendedValue struct {
	NumberValue  *float64    `json:"numberValue,omitempty"`
	StringValue  *string     `json:"stringValue,omitempty"`
	BoolValue    *bool       `json:"boolValue,omitempty"`
	FormulaValue *string     `json:"formulaValue,omitempty"`
	ErrorValue   *ErrorValue `json:"errorValue,omitempty"`
}

// ErrorValue is a formula error such as #DIV/0!.
type ErrorValue struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

// NamedRange is a named rectangle.
type NamedRange struct {
	NamedRangeID string    `json:"namedRangeId,omitempty"`
	Name         string    `json:"name"`
	Range        GridRange `json:"range"`
}

// GridRange is a half-open rectangle on one sheet, zero-based. Omitted
// bounds are unbounded.
type GridRange struct {
	SheetID          int64 `json:"sheetId,omitempty"`
	StartRowIndex    int   `json:"startRowIndex,omitempty"`
	EndRowIndex      int   `json:"endRowIndex,omitempty"`
	StartColumnIndex int   `json:"startColumnIndex,omitempty"`
	EndColumnIndex   int   `json:"endColumnIndex,omitempty"`
}

// DimensionRange is a half-open span of rows or columns, zero-based.
type DimensionRange struct {
	SheetID    int64     `json:"sheetId,omitempty"`
	Dimension  Dimension `json:"dimension"`
	StartIndex int       `json:"startIndex,omitempty"`
	EndIndex   int       `json:"endIndex,omitempty"`
}

// DataFilter selects data by A1 range, grid range or developer metadata.
// Set exactly one field.
type DataFilter struct {
	A1Range                 string                   `json:"a1Range,omitempty"`
	GridRange               *GridRange               `json:"gridRange,omitempty"`
	DeveloperMetadataLookup *DeveloperMetadataLookup `json:"developerMetadataLookup,omitempty"`
}

// GetOptions selects what Get returns.
type GetOptions struct {
	// Ranges limits the returned sheets and grid data to these A1 ranges.
	Ranges          []string
	IncludeGridData bool
}

// Values

// ValueRange is a block of cell values. Each inner slice is one row, or
// one column when MajorDimension is COLUMNS. Cells decode as string,
// float64 or bool depending on the render option.
type ValueRange struct {
	Range          string    `json:"range,omitempty"`
	MajorDimension Dimension `json:"majorDimension,omitempty"`
	Values         [][]any   `json:"values,omitempty"`
}

// UpdateValuesResponse reports the cells a write touched.
type UpdateValuesResponse struct {
	SpreadsheetID  string      `json:"spreadsheetId"`
	UpdatedRange   string      `json:"updatedRange"`
	UpdatedRows    int         `json:"updatedRows"`
	UpdatedColumns int         `json:"updatedColumns"`
	UpdatedCells   int         `json:"updatedCells"`
	UpdatedData    *ValueRange `json:"updatedData,omitempty"`
}

// AppendValuesResponse reports where an append landed.
type AppendValuesResponse struct {
	SpreadsheetID string               `json:"spreadsheetId"`
	TableRange    string               `json:"tableRange,omitempty"`
	Updates       UpdateValuesResponse `json:"updates"`
}

// ClearValuesResponse names the range that was cleared.
type ClearValuesResponse struct {
	SpreadsheetID string `json:"spreadsheetId"`
	ClearedRange  string `json:"clearedRange"`
}

// BatchGetValuesResponse holds one ValueRange per requested range.
type BatchGetValuesResponse struct {
	SpreadsheetID string       `json:"spreadsheetId"`
	ValueRanges   []ValueRange `json:"valueRanges"`
}

// BatchUpdateValuesRequest writes several ranges at once.
type BatchUpdateValuesRequest struct {
	ValueInputOption             ValueInputOption     `json:"valueInputOption"`
	Data                         []ValueRange         `json:"data"`
	IncludeValuesInResponse      bool                 `json:"includeValuesInResponse,omitempty"`
	ResponseValueRenderOption    ValueRenderOption    `json:"responseValueRenderOption,omitempty"`
	ResponseDateTimeRenderOption DateTimeRenderOption `json:"responseDateTimeRenderOption,omitempty"`
}

// BatchUpdateValuesResponse sums up a batch write.
type BatchUpdateValuesResponse struct {
	SpreadsheetID       string                 `json:"spreadsheetId"`
	TotalUpdatedRows    int                    `json:"totalUpdatedRows"`
	TotalUpdatedColumns int                    `json:"totalUpdatedColumns"`
	TotalUpdatedCells   int                    `json:"totalUpdatedCells"`
	TotalUpdatedSheets  int                    `json:"totalUpdatedSheets"`
	Responses           []UpdateValuesResponse `json:"responses,omitempty"`
}

// BatchClearValuesResponse lists the cleared ranges.
type BatchClearValuesResponse struct {
	SpreadsheetID string   `json:"spreadsheetId"`
	ClearedRanges []string `json:"clearedRanges"`
}

// BatchGetValuesByDataFilterRequest reads the ranges matched by filters.
type BatchGetValuesByDataFilterRequest struct {
	DataFilters          []DataFilter         `json:"dataFilters"`
	MajorDimension       Dimension            `json:"majorDimension,omitempty"`
	ValueRenderOption    ValueRenderOption    `json:"valueRenderOption,omitempty"`
	DateTimeRenderOption DateTimeRenderOption `json:"dateTimeRenderOption,omitempty"`
}

// MatchedValueRange is a ValueRange together with the filters that
// matched it.
type MatchedValueRange struct {
	ValueRange  ValueRange   `json:"valueRange"`
	DataFilters []DataFilter `json:"dataFilters,omitempty"`
}

// BatchGetValuesByDataFilterResponse holds the matched ranges.
type BatchGetValuesByDataFilterResponse struct {
	SpreadsheetID string              `json:"spreadsheetId"`
	ValueRanges   []MatchedValueRange `json:"valueRanges"`
}

// DataFilterValueRange is a block of values written to the range a filter
// matches.
type DataFilterValueRange struct {
	DataFilter     DataFilter `json:"dataFilter"`
	MajorDimension Dimension  `json:"majorDimension,omitempty"`
	Values         [][]any    `json:"values"`
}

// BatchUpdateValuesByDataFilterRequest writes to the ranges matched by
// filters.
type BatchUpdateValuesByDataFilterRequest struct {
	ValueInputOption             ValueInputOption       `json:"valueInputOption"`
	Data                         []DataFilterValueRange `json:"data"`
	IncludeValuesInResponse      bool                   `json:"includeValuesInResponse,omitempty"`
	ResponseValueRenderOption    ValueRenderOption      `json:"responseValueRenderOption,omitempty"`
	ResponseDateTimeRenderOption DateTimeRenderOption   `json:"responseDateTimeRenderOption,omitempty"`
}

// UpdateValuesByDataFilterResponse reports one filtered write.
type UpdateValuesByDataFilterResponse struct {
	UpdatedRange   string      `json:"updatedRange"`
	UpdatedRows    int         `json:"updatedRows"`
	UpdatedColumns int         `json:"updatedColumns"`
	UpdatedCells   int         `json:"updatedCells"`
	DataFilter     *DataFilter `json:"dataFilter,omitempty"`
	UpdatedData    *ValueRange `json:"updatedData,omitempty"`
}

// BatchUpdateValuesByDataFilterResponse sums up a filtered batch write.
type BatchUpdateValuesByDataFilterResponse struct {
	SpreadsheetID       string                             `json:"spreadsheetId"`
	TotalUpdatedRows    int                                `json:"totalUpdatedRows"`
	TotalUpdatedColumns int                                `json:"totalUpdatedColumns"`
	TotalUpdatedCells   int                                `json:"totalUpdatedCells"`
	TotalUpdatedSheets  int                                `json:"totalUpdatedSheets"`
	Responses           []UpdateValuesByDataFilterResponse `json:"responses,omitempty"`
}

// Developer metadata

// DeveloperMetadata is a key/value pair attached to part of a spreadsheet.
type DeveloperMetadata struct {
	MetadataID    int64                      `json:"metadataId,omitempty"`
	MetadataKey   string                     `json:"metadataKey"`
	MetadataValue string                     `json:"metadataValue,omitempty"`
	Location      *DeveloperMetadataLocation `json:"location,omitempty"`
	Visibility    MetadataVisibility         `json:"visibility,omitempty"`
}

// DeveloperMetadataLocation is where metadata is attached.
type DeveloperMetadataLocation struct {
	LocationType   MetadataLocationType `json:"locationType,omitempty"`
	Spreadsheet    bool                 `json:"spreadsheet,omitempty"`
	SheetID        *int64               `json:"sheetId,omitempty"`
	DimensionRange *DimensionRange      `json:"dimensionRange,omitempty"`
}

// DeveloperMetadataLookup matches developer metadata. Unset fields match
// anything.
type DeveloperMetadataLookup struct {
	MetadataID               int64                      `json:"metadataId,omitempty"`
	MetadataKey              string                     `json:"metadataKey,omitempty"`
	MetadataValue            string                     `json:"metadataValue,omitempty"`
	LocationType             MetadataLocationType       `json:"locationType,omitempty"`
	MetadataLocation         *DeveloperMetadataLocation `json:"metadataLocation,omitempty"`
	LocationMatchingStrategy string                     `json:"locationMatchingStrategy,omitempty"`
	Visibility               MetadataVisibility         `json:"visibility,omitempty"`
}

// MatchedDeveloperMetadata is a search hit.
type MatchedDeveloperMetadata struct {
	DeveloperMetadata DeveloperMetadata `json:"developerMetadata"`
	DataFilters       []DataFilter      `json:"dataFilters,omitempty"`
}
