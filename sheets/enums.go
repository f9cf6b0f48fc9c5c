package sheets

// Open enums: unknown values decode verbatim and round-trip.

// Dimension is a row or column axis.
type Dimension string

const (
	DimensionUnspecified Dimension = "DIMENSION_UNSPECIFIED"
	DimensionRows        Dimension = "ROWS"
	DimensionColumns     Dimension = "COLUMNS"
)

// Known reports whether d is a documented dimension.
func (d Dimension) Known() bool {
	switch d {
	case DimensionUnspecified, DimensionRows, DimensionColumns:
		return true
	}
	return false
}

// ValueInputOption controls how written values are interpreted.
type ValueInputOption string

const (
	ValueInputUnspecified ValueInputOption = "INPUT_VALUE_OPTION_UNSPECIFIED"
	// ValueInputRaw stores values as-is.
	ValueInputRaw ValueInputOption = "RAW"
	// ValueInputUserEntered parses values as if typed into the UI, so
	// "=SUM(A1:A3)" becomes a formula and "1/2/2024" a date.
	ValueInputUserEntered ValueInputOption = "USER_ENTERED"
)

// Known reports whether o is a documented input option.
func (o ValueInputOption) Known() bool {
	switch o {
	case ValueInputUnspecified, ValueInputRaw, ValueInputUserEntered:
		return true
	}
	return false
}

// ValueRenderOption controls how read values are rendered.
type ValueRenderOption string

const (
	ValueRenderFormatted   ValueRenderOption = "FORMATTED_VALUE"
	ValueRenderUnformatted ValueRenderOption = "UNFORMATTED_VALUE"
	ValueRenderFormula     ValueRenderOption = "FORMULA"
)

// Known reports whether o is a documented render option.
func (o ValueRenderOption) Known() bool {
	switch o {
	case ValueRenderFormatted, ValueRenderUnformatted, ValueRenderFormula:
		return true
	}
	return false
}

// DateTimeRenderOption controls how dates are rendered when values are not
// formatted.
type DateTimeRenderOption string

const (
	DateTimeRenderSerialNumber    DateTimeRenderOption = "SERIAL_NUMBER"
	DateTimeRenderFormattedString DateTimeRenderOption = "FORMATTED_STRING"
)

// Known reports whether o is a documented date render option.
func (o DateTimeRenderOption) Known() bool {
	return o == DateTimeRenderSerialNumber || o == DateTimeRenderFormattedString
}

// InsertDataOption controls whether appends overwrite or insert rows.
type InsertDataOption string

const (
	InsertDataOverwrite  InsertDataOption = "OVERWRITE"
	InsertDataInsertRows InsertDataOption = "INSERT_ROWS"
)

// Known reports whether o is a documented insert option.
func (o InsertDataOption) Known() bool {
	return o == InsertDataOverwrite || o == InsertDataInsertRows
}

// SheetType is the kind of a sheet.
type SheetType string

const (
	SheetTypeUnspecified SheetType = "SHEET_TYPE_UNSPECIFIED"
	SheetTypeGrid        SheetType = "GRID"
	SheetTypeObject      SheetType = "OBJECT"
	SheetTypeDataSource  SheetType = "DATA_SOURCE"
)

// Known reports whether t is a documented sheet type.
func (t SheetType) Known() bool {
	switch t {
	case SheetTypeUnspecified, SheetTypeGrid, SheetTypeObject, SheetTypeDataSource:
		return true
	}
	return false
}

// MetadataLocationType is where developer metadata is attached.
type MetadataLocationType string

const (
	MetadataLocationRow         MetadataLocationType = "ROW"
	MetadataLocationColumn      MetadataLocationType = "COLUMN"
	MetadataLocationSheet       MetadataLocationType = "SHEET"
	MetadataLocationSpreadsheet MetadataLocationType = "SPREADSHEET"
)

// Known reports whether t is a documented location type.
func (t MetadataLocationType) Known() bool {
	switch t {
	case MetadataLocationRow, MetadataLocationColumn, MetadataLocationSheet, MetadataLocationSpreadsheet:
		return true
	}
	return false
}

// MetadataVisibility controls who can see developer metadata.
type MetadataVisibility string

const (
	MetadataVisibilityDocument MetadataVisibility = "DOCUMENT"
	MetadataVisibilityProject  MetadataVisibility = "PROJECT"
)

// Known reports whether v is a documented visibility.
func (v MetadataVisibility) Known() bool {
	return v == MetadataVisibilityDocument || v == MetadataVisibilityProject
}
