// Package journal records dispatched instructions and cycle outcomes in a
// DuckDB database so runs can be audited after the fact.
package journal

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-maker/internal/logger"
	"github.com/rxtech-lab/argo-maker/internal/types"
	"github.com/rxtech-lab/argo-maker/pkg/errors"
	"go.uber.org/zap"
)

// Journal persists cycle and instruction outcomes.
type Journal struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// CycleStats aggregates recorded outcomes for one (site, instrument) pair.
type CycleStats struct {
	Cycles           int
	SuccessfulCycles int
	Creates          int
	Cancels          int
	Reconciled       int
}

// NewJournal opens a journal at the given path. An empty path uses an
// in-memory database.
func NewJournal(log *logger.Logger, path string) (*Journal, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		log.Error("Failed to open journal database", zap.Error(err))

		return nil, errors.Wrap(errors.ErrCodeJournalInitFailed, "failed to open journal database", err)
	}

	if err := db.Ping(); err != nil {
		log.Error("Failed to connect to journal database", zap.Error(err))
		db.Close()

		return nil, errors.Wrap(errors.ErrCodeJournalInitFailed, "failed to connect to journal database", err)
	}

	j := &Journal{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}

	if err := j.initialize(); err != nil {
		db.Close()

		return nil, err
	}

	return j, nil
}

// initialize creates the journal tables.
func (j *Journal) initialize() error {
	_, err := j.db.Exec(`CREATE SEQUENCE IF NOT EXISTS cycle_id_seq`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeJournalInitFailed, "failed to create sequence", err)
	}

	_, err = j.db.Exec(`
		CREATE TABLE IF NOT EXISTS cycles (
			cycle_id INTEGER PRIMARY KEY DEFAULT nextval('cycle_id_seq'),
			site TEXT,
			instrument TEXT,
			target_time TIMESTAMP,
			success BOOLEAN
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeJournalInitFailed, "failed to create cycles table", err)
	}

	_, err = j.db.Exec(`
		CREATE TABLE IF NOT EXISTS instructions (
			instruction_id TEXT,
			site TEXT,
			instrument TEXT,
			target_time TIMESTAMP,
			kind TEXT,
			price DOUBLE,
			size DOUBLE,
			order_ref TEXT,
			venue_id TEXT,
			reconciled BOOLEAN
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeJournalInitFailed, "failed to create instructions table", err)
	}

	return nil
}

// RecordCycle records the overall outcome of one cycle.
func (j *Journal) RecordCycle(request *types.Request, success bool) error {
	if j == nil || j.db == nil {
		return errors.New(errors.ErrCodeJournalWriteFailed, "journal is not initialized")
	}

	query := j.sq.
		Insert("cycles").
		Columns("site", "instrument", "target_time", "success").
		Values(request.Site, request.Instrument, request.TargetTime, success)

	sqlString, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeJournalWriteFailed, "failed to build cycle insert", err)
	}

	if _, err := j.db.Exec(sqlString, args...); err != nil {
		return errors.Wrap(errors.ErrCodeJournalWriteFailed, "failed to record cycle", err)
	}

	return nil
}

// RecordDispatch records one instruction's dispatch and reconciliation
// outcome.
func (j *Journal) RecordDispatch(request *types.Request, instruction types.Instruction, venueID optional.Option[string], reconciled bool) error {
	if j == nil || j.db == nil {
		return errors.New(errors.ErrCodeJournalWriteFailed, "journal is not initialized")
	}

	var (
		kind     string
		price    float64
		size     float64
		orderRef string
	)

	switch ins := instruction.(type) {
	case *types.CreateInstruction:
		kind = "create"
		price, _ = ins.Price.Float64()
		size, _ = ins.Size.Float64()
	case *types.CancelInstruction:
		kind = "cancel"
		orderRef = ins.OrderID
	default:
		return errors.New(errors.ErrCodeInvalidInstruction, "unknown instruction variant")
	}

	query := j.sq.
		Insert("instructions").
		Columns("instruction_id", "site", "instrument", "target_time", "kind", "price", "size", "order_ref", "venue_id", "reconciled").
		Values(instruction.ID(), request.Site, request.Instrument, request.TargetTime, kind, price, size, orderRef, venueID.TakeOr(""), reconciled)

	sqlString, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeJournalWriteFailed, "failed to build instruction insert", err)
	}

	if _, err := j.db.Exec(sqlString, args...); err != nil {
		return errors.Wrap(errors.ErrCodeJournalWriteFailed, "failed to record instruction", err)
	}

	return nil
}

// GetCycleStats aggregates recorded outcomes for one (site, instrument) pair.
func (j *Journal) GetCycleStats(site string, instrument string) (CycleStats, error) {
	var stats CycleStats

	if j == nil || j.db == nil {
		return stats, errors.New(errors.ErrCodeJournalQueryFailed, "journal is not initialized")
	}

	row := j.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN success THEN 1 ELSE 0 END), 0)
		FROM cycles
		WHERE site = ? AND instrument = ?
	`, site, instrument)
	if err := row.Scan(&stats.Cycles, &stats.SuccessfulCycles); err != nil {
		return stats, errors.Wrap(errors.ErrCodeJournalQueryFailed, "failed to query cycles", err)
	}

	row = j.db.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN kind = 'create' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = 'cancel' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN reconciled THEN 1 ELSE 0 END), 0)
		FROM instructions
		WHERE site = ? AND instrument = ?
	`, site, instrument)
	if err := row.Scan(&stats.Creates, &stats.Cancels, &stats.Reconciled); err != nil {
		return stats, errors.Wrap(errors.ErrCodeJournalQueryFailed, "failed to query instructions", err)
	}

	return stats, nil
}

// Cleanup drops all recorded rows.
func (j *Journal) Cleanup() error {
	if j == nil || j.db == nil {
		return errors.New(errors.ErrCodeJournalWriteFailed, "journal is not initialized")
	}

	for _, table := range []string{"cycles", "instructions"} {
		if _, err := j.db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return errors.Wrapf(errors.ErrCodeJournalWriteFailed, err, "failed to clean up table %s", table)
		}
	}

	return nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}

	return j.db.Close()
}
