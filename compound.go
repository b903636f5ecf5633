package doxyrst

import (
	"context"
	"time"
)

// CompoundInfo is the summary extracted from one doxygen compound node: the
// entity's name, its kind (class, struct, file, ...), and its brief
// description with inline math normalized.
type CompoundInfo struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Brief string `json:"brief"`
}

// CompoundRef identifies one compound listed in a doxygen index file.
type CompoundRef struct {
	RefID string `json:"refId"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
}

// XMLFile returns the name of the XML file doxygen wrote the compound's
// full description to.
func (r CompoundRef) XMLFile() string {
	return r.RefID + ".xml"
}

// CompoundRecord is an indexed compound description.
type CompoundRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Header    string    `json:"header"`
	XMLFile   string    `json:"xmlFile"`
	Brief     string    `json:"brief"`
	BriefHash string    `json:"briefHash"`
	IndexedAt time.Time `json:"indexedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *CompoundRecord) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "compound name required")
	}
	if r.Kind == "" {
		return Errorf(EINVALID, "compound kind required")
	}
	return nil
}

// CompoundExtractor reads compound summaries out of doxygen XML output.
type CompoundExtractor interface {
	// ExtractCompoundInfos returns one CompoundInfo per compound definition
	// in the XML file at path.
	ExtractCompoundInfos(path string) ([]*CompoundInfo, error)
}

// CompoundService represents a service for managing indexed compounds.
type CompoundService interface {
	// CreateCompound creates a new compound record.
	CreateCompound(ctx context.Context, rec *CompoundRecord) error

	// FindCompoundByID retrieves a compound record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindCompoundByID(ctx context.Context, id string) (*CompoundRecord, error)

	// FindCompounds retrieves compound records matching the filter.
	FindCompounds(ctx context.Context, filter CompoundFilter) ([]*CompoundRecord, error)

	// DeleteCompound permanently removes a compound record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteCompound(ctx context.Context, id string) error

	// DeleteCompoundsByHeader removes all records extracted from a header.
	DeleteCompoundsByHeader(ctx context.Context, header string) error
}

// SortOrder represents the sort order for compound queries.
type SortOrder string

// SortOrder constants for CompoundFilter.
const (
	SortByName      SortOrder = "name"
	SortByIndexedAt SortOrder = "indexed_at"
)

// CompoundFilter represents a filter for FindCompounds.
type CompoundFilter struct {
	ID     *string `json:"id"`
	Name   *string `json:"name"`
	Kind   *string `json:"kind"`
	Header *string `json:"header"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
