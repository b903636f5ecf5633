package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/doxyrst"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ doxyrst.CompoundService = (*CompoundService)(nil)

// CompoundService implements doxyrst.CompoundService using SQLite.
type CompoundService struct {
	db *DB
}

// NewCompoundService creates a new CompoundService.
func NewCompoundService(db *DB) *CompoundService {
	return &CompoundService{db: db}
}

// hashBrief computes xxHash of a brief description and returns hex string.
// The hash lets re-indexing runs spot briefs that changed since last time.
func hashBrief(brief string) string {
	h := xxhash.Sum64String(brief)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateCompound creates a new compound record.
func (s *CompoundService) CreateCompound(ctx context.Context, rec *doxyrst.CompoundRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.IndexedAt = time.Now().UTC()
	rec.BriefHash = hashBrief(rec.Brief)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO compounds (id, name, kind, header, xml_file, brief, brief_hash, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Name, rec.Kind, rec.Header, rec.XMLFile, rec.Brief, rec.BriefHash,
		rec.IndexedAt.Format(time.RFC3339))

	return err
}

// FindCompoundByID retrieves a compound record by ID.
func (s *CompoundService) FindCompoundByID(ctx context.Context, id string) (*doxyrst.CompoundRecord, error) {
	var rec doxyrst.CompoundRecord
	var indexedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, kind, header, xml_file, brief, brief_hash, indexed_at
		FROM compounds
		WHERE id = ?
	`, id).Scan(&rec.ID, &rec.Name, &rec.Kind, &rec.Header, &rec.XMLFile,
		&rec.Brief, &rec.BriefHash, &indexedAt)

	if err == sql.ErrNoRows {
		return nil, doxyrst.Errorf(doxyrst.ENOTFOUND, "compound not found")
	}
	if err != nil {
		return nil, err
	}

	rec.IndexedAt, err = parseRFC3339(indexedAt, "indexed_at")
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// FindCompounds retrieves compound records matching the filter.
func (s *CompoundService) FindCompounds(ctx context.Context, filter doxyrst.CompoundFilter) ([]*doxyrst.CompoundRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, kind, header, xml_file, brief, brief_hash, indexed_at FROM compounds WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, *filter.Kind)
	}
	if filter.Header != nil {
		query.WriteString(" AND header = ?")
		args = append(args, *filter.Header)
	}

	switch filter.SortBy {
	case doxyrst.SortByName:
		query.WriteString(" ORDER BY name ASC")
	default:
		query.WriteString(" ORDER BY indexed_at DESC, name ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*doxyrst.CompoundRecord
	for rows.Next() {
		var rec doxyrst.CompoundRecord
		var indexedAt string

		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Kind, &rec.Header, &rec.XMLFile,
			&rec.Brief, &rec.BriefHash, &indexedAt); err != nil {
			return nil, err
		}

		rec.IndexedAt, err = parseRFC3339(indexedAt, "indexed_at")
		if err != nil {
			return nil, err
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

// DeleteCompound permanently removes a compound record.
func (s *CompoundService) DeleteCompound(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM compounds WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return doxyrst.Errorf(doxyrst.ENOTFOUND, "compound not found")
	}

	return nil
}

// DeleteCompoundsByHeader removes all compound records extracted from a header.
func (s *CompoundService) DeleteCompoundsByHeader(ctx context.Context, header string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM compounds WHERE header = ?", header)
	return err
}
