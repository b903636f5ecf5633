package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/doxyrst"
	"github.com/fwojciec/doxyrst/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkWALMode compares write performance between WAL and rollback
// journal modes. This simulates an indexing run: inserting one compound
// record per documented entity of a component.
func BenchmarkWALMode(b *testing.B) {
	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkCompoundInserts(b, false)
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkCompoundInserts(b, true)
	})
}

func benchmarkCompoundInserts(b *testing.B, useWAL bool) {
	b.Helper()

	// Create a temporary file for the database
	tmpDir := b.TempDir()
	dbPath := filepath.Join(tmpDir, "bench.db")

	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())

	ctx := context.Background()
	if !useWAL {
		_, err := db.ExecContext(ctx, "PRAGMA journal_mode = DELETE")
		require.NoError(b, err)
	}

	defer func() {
		db.Close()
		// Clean up WAL files if they exist
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}()

	svc := sqlite.NewCompoundService(db)

	// Reset timer to exclude setup time
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rec := &doxyrst.CompoundRecord{
			Name:    fmt.Sprintf("DynamicalSystem%d", i),
			Kind:    "class",
			Header:  fmt.Sprintf("kernel/src/modelingTools/DynamicalSystem%d.hpp", i),
			XMLFile: fmt.Sprintf("classDynamicalSystem%d.xml", i),
			Brief:   fmt.Sprintf("Abstract interface for dynamical system %d, with enough text to resemble a real brief description.", i),
		}
		if err := svc.CreateCompound(ctx, rec); err != nil {
			b.Fatal(err)
		}
	}
}
