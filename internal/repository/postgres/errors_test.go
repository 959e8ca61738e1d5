package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsPgNoRowsError(t *testing.T) {
	if !IsPgNoRowsError(pgx.ErrNoRows) {
		t.Error("pgx.ErrNoRows not recognized")
	}
	if !IsPgNoRowsError(fmt.Errorf("get project: %w", pgx.ErrNoRows)) {
		t.Error("wrapped pgx.ErrNoRows not recognized")
	}
	if IsPgNoRowsError(errors.New("boom")) {
		t.Error("unrelated error recognized as no-rows")
	}
}

func TestIsPgDuplicateError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	if !IsPgDuplicateError(dup) {
		t.Error("unique violation not recognized")
	}
	if !IsPgDuplicateError(fmt.Errorf("append revision: %w", dup)) {
		t.Error("wrapped unique violation not recognized")
	}
	if IsPgDuplicateError(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation recognized as duplicate")
	}
	if IsPgDuplicateError(errors.New("boom")) {
		t.Error("unrelated error recognized as duplicate")
	}
}
