package sqldb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
)

// memConn serves scripted result sets through the database/sql driver
// surface, so Query runs against a genuine *sqlx.DB and its real row
// machinery instead of a fake handle.
type memConn struct {
	results map[string]*memResult
	fails   int
}

type memResult struct {
	cols []string
	vals [][]driver.Value
}

func (c *memConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *memConn) Close() error { return nil }

func (c *memConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *memConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	if query == "SELECT 1" {
		return &memRows{cols: []string{"?column?"}, vals: [][]driver.Value{{int64(1)}}}, nil
	}
	if c.fails > 0 {
		c.fails--
		return nil, errors.New("connection reset by peer")
	}
	res, ok := c.results[query]
	if !ok {
		return nil, errors.New("syntax error at or near unknown query")
	}
	rows := make([][]driver.Value, len(res.vals))
	copy(rows, res.vals)
	return &memRows{cols: res.cols, vals: rows}, nil
}

type memRows struct {
	cols []string
	vals [][]driver.Value
	pos  int
}

func (r *memRows) Columns() []string { return r.cols }
func (r *memRows) Close() error      { return nil }

func (r *memRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.vals) {
		return io.EOF
	}
	copy(dest, r.vals[r.pos])
	r.pos++
	return nil
}

type memConnector struct{ conn *memConn }

func (c memConnector) Connect(ctx context.Context) (driver.Conn, error) { return c.conn, nil }
func (c memConnector) Driver() driver.Driver                            { return memDriver{} }

type memDriver struct{}

func (memDriver) Open(name string) (driver.Conn, error) {
	return nil, errors.New("open via connector")
}

func newMemExecutor(t *testing.T, conn *memConn) *Executor {
	t.Helper()
	dial := func(ctx context.Context) (Handle, error) {
		return sqlx.NewDb(sql.OpenDB(memConnector{conn: conn}), "memdb"), nil
	}
	exec := NewExecutor(dial, RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond}, DefaultFaultSignatures(), nil)
	exec.sleep = func(ctx context.Context, d time.Duration) error { return nil }
	exec.OnRetry(func(attempt int, delay time.Duration, err error) {})
	return exec
}

func TestExecutor_QueryAssemblesRows(t *testing.T) {
	const q = "SELECT object_code, total_complaints FROM complaints_risk_calc"
	conn := &memConn{results: map[string]*memResult{
		q: {
			cols: []string{"object_code", "total_complaints"},
			vals: [][]driver.Value{
				{"OBJ1", int64(12)},
				{"OBJ2", int64(3)},
			},
		},
	}}
	exec := newMemExecutor(t, conn)
	defer exec.Close()

	rows, err := exec.Query(context.Background(), QueryRequest{SQL: q})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if len(rows.Columns) != 2 || rows.Columns[0] != "object_code" || rows.Columns[1] != "total_complaints" {
		t.Errorf("unexpected columns: %v", rows.Columns)
	}
	if len(rows.Values) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows.Values))
	}
	if got, ok := rows.Values[0][0].(string); !ok || got != "OBJ1" {
		t.Errorf("row 0 col 0 = %v, want OBJ1", rows.Values[0][0])
	}
	if got, ok := rows.Values[1][1].(int64); !ok || got != 3 {
		t.Errorf("row 1 col 1 = %v, want 3", rows.Values[1][1])
	}
}

func TestExecutor_QueryEmptyResult(t *testing.T) {
	const q = "SELECT brand FROM material_reference"
	conn := &memConn{results: map[string]*memResult{
		q: {cols: []string{"brand"}},
	}}
	exec := newMemExecutor(t, conn)
	defer exec.Close()

	rows, err := exec.Query(context.Background(), QueryRequest{SQL: q})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(rows.Columns) != 1 || len(rows.Values) != 0 {
		t.Errorf("got columns %v with %d rows, want 1 column and 0 rows", rows.Columns, len(rows.Values))
	}
}

func TestExecutor_QueryRetriesTransientFault(t *testing.T) {
	const q = "SELECT hhi FROM hhi_lookup"
	conn := &memConn{
		fails: 1,
		results: map[string]*memResult{
			q: {cols: []string{"hhi"}, vals: [][]driver.Value{{"HHI-CENT"}}},
		},
	}
	exec := newMemExecutor(t, conn)
	defer exec.Close()

	rows, err := exec.Query(context.Background(), QueryRequest{SQL: q})
	if err != nil {
		t.Fatalf("Query failed after transient fault: %v", err)
	}
	if len(rows.Values) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows.Values))
	}
}

func TestExecutor_QueryFatalFault(t *testing.T) {
	conn := &memConn{results: map[string]*memResult{}}
	exec := newMemExecutor(t, conn)
	defer exec.Close()

	_, err := exec.Query(context.Background(), QueryRequest{SQL: "SELECT nothing"})
	if err == nil {
		t.Fatal("expected error for unknown query")
	}
	var exhausted *ExhaustedError
	if errors.As(err, &exhausted) {
		t.Errorf("syntax error should fail fast, got ExhaustedError after %d attempts", exhausted.Attempts)
	}
}
