package sqldb

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/radcomm/riskcalc/internal/core/domain"
)

// FaultSignatures is the closed set of failure signatures treated as
// transient. The executor is constructed with a value of this type, so
// callers extend the matching set without touching retry code.
type FaultSignatures struct {
	// Substrings are matched case-insensitively against the error text.
	Substrings []string
	// SQLStates are matched against driver error codes. Two-character
	// entries match the whole SQLSTATE class.
	SQLStates []string
}

// DefaultFaultSignatures covers the connection-level failures seen against
// a remote database over an unreliable network.
func DefaultFaultSignatures() FaultSignatures {
	return FaultSignatures{
		Substrings: []string{
			"communication link failure",
			"connection is closed",
			"connection closed",
			"broken pipe",
			"connection reset",
			"connection refused",
			"connection timed out",
			"login timeout",
			"command timeout",
			"statement timeout",
			"i/o timeout",
			"tls handshake timeout",
			"unexpected eof",
			"server closed the connection",
			"bad connection",
			"no such host",
		},
		SQLStates: []string{
			"08",    // connection exception class
			"53300", // too many connections
			"57P01", // admin shutdown
			"57P02", // crash shutdown
			"57P03", // cannot connect now
			"40001", // serialization failure
			"40P01", // deadlock detected
		},
	}
}

// Classify maps a failure to exactly one fault class. Timeouts, dropped
// connections, and the configured signatures are transient; everything else
// is fatal and must not be retried.
func (s FaultSignatures) Classify(err error) domain.FaultClass {
	if err == nil {
		return domain.FaultFatal
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return domain.FaultTransient
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.FaultTransient
	}

	// Driver-reported SQLSTATEs, for either driver in use.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && s.matchState(pgErr.Code) {
		return domain.FaultTransient
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && s.matchState(string(pqErr.Code)) {
		return domain.FaultTransient
	}

	msg := strings.ToLower(err.Error())
	for _, sig := range s.Substrings {
		if strings.Contains(msg, strings.ToLower(sig)) {
			return domain.FaultTransient
		}
	}

	return domain.FaultFatal
}

func (s FaultSignatures) matchState(code string) bool {
	for _, state := range s.SQLStates {
		if code == state {
			return true
		}
		if len(state) == 2 && strings.HasPrefix(code, state) {
			return true
		}
	}
	return false
}
