package model

// VehicleStatus describes what happened to one discovered vehicle sheet
type VehicleStatus string

const (
	StatusWritten VehicleStatus = "WRITTEN"
	StatusEmpty   VehicleStatus = "EMPTY"  // Sheet parsed but produced no entries
	StatusFailed  VehicleStatus = "FAILED" // Sheet could not be read or written
)

// VehicleResult is the outcome of processing one vehicle sheet
type VehicleResult struct {
	Document   *Document
	Status     VehicleStatus
	OutputPath string
	RowsRead   int // Data rows after the header
	RowsSkip   int // Data rows without an L2 name
	Err        error
}

// Summary collects the results of one extraction run
type Summary struct {
	InputPath    string
	OutputDir    string
	RunDate      string
	SheetNames   []string // Every sheet in the workbook, in order
	Vehicles     []*VehicleResult
	Collisions   []string // Vehicle IDs claimed by more than one sheet
	EmptyIDs     []string // Sheets matching the marker whose ID came out empty
	ReportFiles  []string
	ReportErrors []error // Reports that could not be generated; they do not fail the run
}

// NewSummary creates an empty Summary
func NewSummary() *Summary {
	return &Summary{
		Vehicles: make([]*VehicleResult, 0),
	}
}

// Written returns the documents that were successfully written, in processing order
func (s *Summary) Written() []*Document {
	var docs []*Document
	for _, v := range s.Vehicles {
		if v.Status == StatusWritten {
			docs = append(docs, v.Document)
		}
	}
	return docs
}

// TotalEntries counts entries across all written documents
func (s *Summary) TotalEntries() int {
	total := 0
	for _, doc := range s.Written() {
		total += len(doc.Entries)
	}
	return total
}

// Count returns how many vehicles ended with the given status
func (s *Summary) Count(status VehicleStatus) int {
	n := 0
	for _, v := range s.Vehicles {
		if v.Status == status {
			n++
		}
	}
	return n
}
