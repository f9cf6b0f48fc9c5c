package sheets

import "strings"

// BatchUpdateRequest is the body of Client.BatchUpdate.
type BatchUpdateRequest struct {
	Requests                     []Request `json:"requests"`
	IncludeSpreadsheetInResponse bool      `json:"includeSpreadsheetInResponse,omitempty"`
	ResponseRanges               []string  `json:"responseRanges,omitempty"`
	ResponseIncludeGridData      bool      `json:"responseIncludeGridData,omitempty"`
}

// BatchUpdateResponse holds one reply per request, in order. Requests
// without a reply get an empty Response.
type BatchUpdateResponse struct {
	SpreadsheetID      string       `json:"spreadsheetId"`
	Replies            []Response   `json:"replies"`
	UpdatedSpreadsheet *Spreadsheet `json:"updatedSpreadsheet,omitempty"`
}

// Request is one operation of a batch update. Exactly one field is set;
// use the constructors below.
type Request struct {
	AddSheet                    *AddSheetRequest                    `json:"addSheet,omitempty"`
	DeleteSheet                 *DeleteSheetRequest                 `json:"deleteSheet,omitempty"`
	DuplicateSheet              *DuplicateSheetRequest              `json:"duplicateSheet,omitempty"`
	UpdateSheetProperties       *UpdateSheetPropertiesRequest       `json:"updateSheetProperties,omitempty"`
	UpdateSpreadsheetProperties *UpdateSpreadsheetPropertiesRequest `json:"updateSpreadsheetProperties,omitempty"`
	InsertDimension             *InsertDimensionRequest             `json:"insertDimension,omitempty"`
	DeleteDimension             *DeleteDimensionRequest             `json:"deleteDimension,omitempty"`
	AppendDimension             *AppendDimensionRequest             `json:"appendDimension,omitempty"`
	FindReplace                 *FindReplaceRequest                 `json:"findReplace,omitempty"`
	AutoResizeDimensions        *AutoResizeDimensionsRequest        `json:"autoResizeDimensions,omitempty"`
	CreateDeveloperMetadata     *CreateDeveloperMetadataRequest     `json:"createDeveloperMetadata,omitempty"`
}

// Response is the reply to one Request.
type Response struct {
	AddSheet                *AddSheetResponse                `json:"addSheet,omitempty"`
	DuplicateSheet          *DuplicateSheetResponse          `json:"duplicateSheet,omitempty"`
	FindReplace             *FindReplaceResponse             `json:"findReplace,omitempty"`
	CreateDeveloperMetadata *CreateDeveloperMetadataResponse `json:"createDeveloperMetadata,omitempty"`
}

// AddSheetRequest adds a sheet with the given properties.
type AddSheetRequest struct {
	Properties SheetProperties `json:"properties"`
}

// AddSheetResponse carries the new sheet's properties, including its ID.
type AddSheetResponse struct {
	Properties SheetProperties `json:"properties"`
}

// DeleteSheetRequest removes a sheet and its data.
type DeleteSheetRequest struct {
	SheetID int64 `json:"sheetId"`
}

// DuplicateSheetRequest copies a sheet within the spreadsheet.
type DuplicateSheetRequest struct {
	SourceSheetID    int64  `json:"sourceSheetId"`
	InsertSheetIndex *int   `json:"insertSheetIndex,omitempty"`
	NewSheetID       int64  `json:"newSheetId,omitempty"`
	NewSheetName     string `json:"newSheetName,omitempty"`
}

// DuplicateSheetResponse carries the copy's properties.
type DuplicateSheetResponse struct {
	Properties SheetProperties `json:"properties"`
}

// UpdateSheetPropertiesRequest updates the properties named in Fields, a
// comma-separated field mask such as "title,gridProperties.frozenRowCount".
type UpdateSheetPropertiesRequest struct {
	Properties SheetProperties `json:"properties"`
	Fields     string          `json:"fields"`
}

// UpdateSpreadsheetPropertiesRequest updates the properties named in
// Fields.
type UpdateSpreadsheetPropertiesRequest struct {
	Properties SpreadsheetProperties `json:"properties"`
	Fields     string                `json:"fields"`
}

// InsertDimensionRequest inserts empty rows or columns.
type InsertDimensionRequest struct {
	Range             DimensionRange `json:"range"`
	InheritFromBefore bool           `json:"inheritFromBefore,omitempty"`
}

// DeleteDimensionRequest deletes rows or columns.
type DeleteDimensionRequest struct {
	Range DimensionRange `json:"range"`
}

// AppendDimensionRequest adds Length rows or columns at the end of a sheet.
type AppendDimensionRequest struct {
	SheetID   int64     `json:"sheetId,omitempty"`
	Dimension Dimension `json:"dimension"`
	Length    int       `json:"length"`
}

// FindReplaceRequest searches one range, one sheet or all sheets.
type FindReplaceRequest struct {
	Find            string     `json:"find"`
	Replacement     string     `json:"replacement"`
	MatchCase       bool       `json:"matchCase,omitempty"`
	MatchEntireCell bool       `json:"matchEntireCell,omitempty"`
	SearchByRegex   bool       `json:"searchByRegex,omitempty"`
	IncludeFormulas bool       `json:"includeFormulas,omitempty"`
	Range           *GridRange `json:"range,omitempty"`
	SheetID         *int64     `json:"sheetId,omitempty"`
	AllSheets       bool       `json:"allSheets,omitempty"`
}

// FindReplaceResponse counts what a FindReplaceRequest changed.
type FindReplaceResponse struct {
	ValuesChanged      int `json:"valuesChanged"`
	FormulasChanged    int `json:"formulasChanged"`
	RowsChanged        int `json:"rowsChanged"`
	SheetsChanged      int `json:"sheetsChanged"`
	OccurrencesChanged int `json:"occurrencesChanged"`
}

// AutoResizeDimensionsRequest fits rows or columns to their content.
type AutoResizeDimensionsRequest struct {
	Dimensions DimensionRange `json:"dimensions"`
}

// CreateDeveloperMetadataRequest attaches metadata to a location.
type CreateDeveloperMetadataRequest struct {
	DeveloperMetadata DeveloperMetadata `json:"developerMetadata"`
}

// CreateDeveloperMetadataResponse carries the stored metadata and its ID.
type CreateDeveloperMetadataResponse struct {
	DeveloperMetadata DeveloperMetadata `json:"developerMetadata"`
}

// AddSheet adds a sheet. Leave SheetID zero to have one assigned.
func AddSheet(props SheetProperties) Request {
	return Request{AddSheet: &AddSheetRequest{Properties: props}}
}

// DeleteSheet deletes a sheet.
func DeleteSheet(sheetID int64) Request {
	return Request{DeleteSheet: &DeleteSheetRequest{SheetID: sheetID}}
}

// DuplicateSheet copies a sheet within the spreadsheet under newName.
func DuplicateSheet(sourceSheetID int64, newName string) Request {
	return Request{DuplicateSheet: &DuplicateSheetRequest{SourceSheetID: sourceSheetID, NewSheetName: newName}}
}

// UpdateSheetProperties updates the listed fields of a sheet's properties.
func UpdateSheetProperties(props SheetProperties, fields ...string) Request {
	return Request{UpdateSheetProperties: &UpdateSheetPropertiesRequest{
		Properties: props,
		Fields:     strings.Join(fields, ","),
	}}
}

// UpdateSpreadsheetProperties updates the listed spreadsheet properties.
func UpdateSpreadsheetProperties(props SpreadsheetProperties, fields ...string) Request {
	return Request{UpdateSpreadsheetProperties: &UpdateSpreadsheetPropertiesRequest{
		Properties: props,
		Fields:     strings.Join(fields, ","),
	}}
}

// InsertDimension inserts empty rows or columns over r.
func InsertDimension(r DimensionRange, inheritFromBefore bool) Request {
	return Request{InsertDimension: &InsertDimensionRequest{Range: r, InheritFromBefore: inheritFromBefore}}
}

// DeleteDimension deletes the rows or columns in r.
func DeleteDimension(r DimensionRange) Request {
	return Request{DeleteDimension: &DeleteDimensionRequest{Range: r}}
}

// AppendDimension adds length rows or columns at the end of a sheet.
func AppendDimension(sheetID int64, dim Dimension, length int) Request {
	return Request{AppendDimension: &AppendDimensionRequest{SheetID: sheetID, Dimension: dim, Length: length}}
}

// FindReplace finds and replaces text.
func FindReplace(req FindReplaceRequest) Request {
	return Request{FindReplace: &req}
}

// AutoResizeDimensions fits the rows or columns in r to their contents.
func AutoResizeDimensions(r DimensionRange) Request {
	return Request{AutoResizeDimensions: &AutoResizeDimensionsRequest{Dimensions: r}}
}

// CreateDeveloperMetadata attaches metadata to a location.
func CreateDeveloperMetadata(md DeveloperMetadata) Request {
	return Request{CreateDeveloperMetadata: &CreateDeveloperMetadataRequest{DeveloperMetadata: md}}
}
