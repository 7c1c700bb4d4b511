package sqldb

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/radcomm/riskcalc/internal/core/domain"
)

func TestClassify_Signatures(t *testing.T) {
	sigs := DefaultFaultSignatures()

	tests := []struct {
		err    error
		expect domain.FaultClass
	}{
		{errors.New("Communication link failure"), domain.FaultTransient},
		{errors.New("driver: connection is closed"), domain.FaultTransient},
		{errors.New("write tcp 10.0.0.1:5432: broken pipe"), domain.FaultTransient},
		{errors.New("read tcp: connection reset by peer"), domain.FaultTransient},
		{errors.New("dial tcp: connection refused"), domain.FaultTransient},
		{errors.New("Login timeout expired"), domain.FaultTransient},
		{errors.New("COMMAND TIMEOUT exceeded"), domain.FaultTransient},
		{errors.New("unexpected EOF"), domain.FaultTransient},
		{context.DeadlineExceeded, domain.FaultTransient},
		{driver.ErrBadConn, domain.FaultTransient},

		{errors.New(`relation "complaints" does not exist`), domain.FaultFatal},
		{errors.New(`syntax error at or near "FORM"`), domain.FaultFatal},
		{errors.New("permission denied for table sales"), domain.FaultFatal},
		{nil, domain.FaultFatal},
	}

	for _, tt := range tests {
		if got := sigs.Classify(tt.err); got != tt.expect {
			t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.expect)
		}
	}
}

func TestClassify_WrappedErrors(t *testing.T) {
	sigs := DefaultFaultSignatures()

	wrapped := fmt.Errorf("query failed: %w", errors.New("connection reset by peer"))
	if got := sigs.Classify(wrapped); got != domain.FaultTransient {
		t.Errorf("wrapped transient classified as %v", got)
	}
}

func TestClassify_SQLStates(t *testing.T) {
	sigs := DefaultFaultSignatures()

	tests := []struct {
		code   string
		expect domain.FaultClass
	}{
		{"08006", domain.FaultTransient}, // connection failure, via 08 class
		{"08S01", domain.FaultTransient}, // communication link failure
		{"57P01", domain.FaultTransient},
		{"53300", domain.FaultTransient},
		{"40001", domain.FaultTransient},
		{"42601", domain.FaultFatal}, // syntax error
		{"42P01", domain.FaultFatal}, // undefined table
		{"23505", domain.FaultFatal}, // unique violation
	}

	for _, tt := range tests {
		pgErr := &pgconn.PgError{Code: tt.code, Message: "backend error"}
		if got := sigs.Classify(pgErr); got != tt.expect {
			t.Errorf("pgconn code %s = %v, want %v", tt.code, got, tt.expect)
		}
		pqErr := &pq.Error{Code: pq.ErrorCode(tt.code), Message: "backend error"}
		if got := sigs.Classify(pqErr); got != tt.expect {
			t.Errorf("pq code %s = %v, want %v", tt.code, got, tt.expect)
		}
	}
}

func TestClassify_ExtendedSignatures(t *testing.T) {
	sigs := DefaultFaultSignatures()
	sigs.Substrings = append(sigs.Substrings, "session has been terminated")

	err := errors.New("the session has been terminated by the gateway")
	if got := sigs.Classify(err); got != domain.FaultTransient {
		t.Errorf("extended signature classified as %v", got)
	}
}
