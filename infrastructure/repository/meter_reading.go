// Package repository contains the data access implementations
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/watergrid/meter-analytics-api/infrastructure/database/postgres"
	"github.com/watergrid/meter-analytics-api/internal/domain"
)

const (
	meterReadingsTable = "industry_meter_readings"

	totalDiffExpr = "SUM(CAST(meterreadingdifference AS numeric)) AS total_diff"
)

var readingColumns = []string{
	"industryname",
	"division_id",
	"industry_id",
	"month_id",
	"monthname",
	"financial_year",
	"initialmeter_reading",
	"finalmeter_reading",
	"meterreadingdifference",
	"currentfinancialyear",
	"insert_date",
}

type MeterReadingRepository interface {
	ListYears(ctx context.Context) ([]string, error)
	ListDivisionIDs(ctx context.Context) ([]string, error)
	ListIndustries(ctx context.Context, limit uint64) ([]string, error)
	ListMonthIDs(ctx context.Context) ([]int, error)

	IndustryTotals(ctx context.Context, division, financialYear string, limit uint64) ([]domain.IndustryTotal, error)
	DivisionTotals(ctx context.Context, financialYear string) ([]domain.DivisionTotal, error)
	YearTotals(ctx context.Context, industry string) ([]domain.YearTotal, error)
	TimeSeries(ctx context.Context, industry string, limit uint64) ([]domain.TimeSeriesPoint, error)
	MonthTotalsByIndustry(ctx context.Context, industry, financialYear string) ([]domain.MonthTotal, error)
	MonthTotalsByDivision(ctx context.Context, division, financialYear string) ([]domain.MonthTotal, error)

	ListReadings(ctx context.Context, offset, limit uint64) ([]domain.MeterReading, error)
	CountReadings(ctx context.Context) (int, error)
	ListAllReadings(ctx context.Context, limit uint64) ([]domain.MeterReading, error)

	Stats(ctx context.Context) (*domain.Stats, error)
	ServerInfo(ctx context.Context) (time.Time, string, error)
}

type meterReadingRepository struct {
	conn postgres.Conn
}

func NewMeterReadingRepository(conn postgres.Conn) MeterReadingRepository {
	return &meterReadingRepository{
		conn: conn,
	}
}

func (r *meterReadingRepository) ListYears(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("financial_year").
		Options("DISTINCT").
		From(meterReadingsTable).
		Where(squirrel.NotEq{"financial_year": nil}).
		OrderBy("financial_year DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	return r.scanStrings(ctx, query, args)
}

func (r *meterReadingRepository) ListDivisionIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("division_id").
		Options("DISTINCT").
		From(meterReadingsTable).
		OrderBy("division_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	return r.scanStrings(ctx, query, args)
}

func (r *meterReadingRepository) ListIndustries(ctx context.Context, limit uint64) ([]string, error) {
	query, args, err := squirrel.
		Select("industryname").
		Options("DISTINCT").
		From(meterReadingsTable).
		OrderBy("industryname").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	return r.scanStrings(ctx, query, args)
}

func (r *meterReadingRepository) ListMonthIDs(ctx context.Context) ([]int, error) {
	query, args, err := squirrel.
		Select("month_id").
		Options("DISTINCT").
		From(meterReadingsTable).
		OrderBy("month_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing the query: %w", err)
	}
	defer rows.Close()

	months := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning month id: %w", err)
		}
		months = append(months, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return months, nil
}

// IndustryTotals ranks industries of a division/year by total meter reading
// difference, largest first.
func (r *meterReadingRepository) IndustryTotals(ctx context.Context, division, financialYear string, limit uint64) ([]domain.IndustryTotal, error) {
	query, args, err := squirrel.
		Select("industryname", totalDiffExpr).
		From(meterReadingsTable).
		Where(squirrel.Eq{"division_id": division, "financial_year": financialYear}).
		GroupBy("industryname").
		OrderBy("total_diff DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing the query: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.IndustryTotal, 0)
	for rows.Next() {
		var t domain.IndustryTotal
		if err := rows.Scan(&t.IndustryName, &t.TotalDiff); err != nil {
			return nil, fmt.Errorf("error scanning industry total: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return totals, nil
}

func (r *meterReadingRepository) DivisionTotals(ctx context.Context, financialYear string) ([]domain.DivisionTotal, error) {
	query, args, err := squirrel.
		Select("division_id", totalDiffExpr).
		From(meterReadingsTable).
		Where(squirrel.Eq{"financial_year": financialYear}).
		GroupBy("division_id").
		OrderBy("division_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing the query: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.DivisionTotal, 0)
	for rows.Next() {
		var t domain.DivisionTotal
		if err := rows.Scan(&t.DivisionID, &t.TotalDiff); err != nil {
			return nil, fmt.Errorf("error scanning division total: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return totals, nil
}

func (r *meterReadingRepository) YearTotals(ctx context.Context, industry string) ([]domain.YearTotal, error) {
	query, args, err := squirrel.
		Select("financial_year", totalDiffExpr).
		From(meterReadingsTable).
		Where(squirrel.Eq{"industryname": industry}).
		GroupBy("financial_year").
		OrderBy("financial_year").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing the query: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.YearTotal, 0)
	for rows.Next() {
		var t domain.YearTotal
		if err := rows.Scan(&t.FinancialYear, &t.TotalDiff); err != nil {
			return nil, fmt.Errorf("error scanning year total: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return totals, nil
}

// TimeSeries keeps insert_date in the grouping so the client can bucket the
// points on a calendar time scale.
func (r *meterReadingRepository) TimeSeries(ctx context.Context, industry string, limit uint64) ([]domain.TimeSeriesPoint, error) {
	query, args, err := squirrel.
		Select("month_id", totalDiffExpr, "industry_id", "insert_date").
		From(meterReadingsTable).
		Where(squirrel.Eq{"industryname": industry}).
		GroupBy("month_id", "industry_id", "insert_date").
		OrderBy("month_id", "insert_date").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing the query: %w", err)
	}
	defer rows.Close()

	points := make([]domain.TimeSeriesPoint, 0)
	for rows.Next() {
		var p domain.TimeSeriesPoint
		if err := rows.Scan(&p.MonthID, &p.TotalDiff, &p.IndustryID, &p.InsertDate); err != nil {
			return nil, fmt.Errorf("error scanning time series point: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return points, nil
}

// MonthTotalsByIndustry aggregates per month. An empty financialYear means
// no year restriction ("all years").
func (r *meterReadingRepository) MonthTotalsByIndustry(ctx context.Context, industry, financialYear string) ([]domain.MonthTotal, error) {
	queryBuilder := squirrel.
		Select("month_id", "monthname", totalDiffExpr).
		From(meterReadingsTable).
		Where(squirrel.Eq{"industryname": industry}).
		Where(squirrel.NotEq{"monthname": nil})

	if financialYear != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"financial_year": financialYear})
	}

	query, args, err := queryBuilder.
		GroupBy("month_id", "monthname").
		OrderBy("month_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	return r.scanMonthTotals(ctx, query, args)
}

func (r *meterReadingRepository) MonthTotalsByDivision(ctx context.Context, division, financialYear string) ([]domain.MonthTotal, error) {
	query, args, err := squirrel.
		Select("month_id", "monthname", totalDiffExpr).
		From(meterReadingsTable).
		Where(squirrel.Eq{"division_id": division, "financial_year": financialYear}).
		Where(squirrel.NotEq{"monthname": nil}).
		GroupBy("month_id", "monthname").
		OrderBy("month_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	return r.scanMonthTotals(ctx, query, args)
}

func (r *meterReadingRepository) ListReadings(ctx context.Context, offset, limit uint64) ([]domain.MeterReading, error) {
	query, args, err := squirrel.
		Select(readingColumns...).
		From(meterReadingsTable).
		OrderBy("division_id", "month_id", "industryname").
		Offset(offset).
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	return r.scanReadings(ctx, query, args)
}

func (r *meterReadingRepository) CountReadings(ctx context.Context) (int, error) {
	query, _, err := squirrel.
		Select("COUNT(*)").
		From(meterReadingsTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building the query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting readings: %w", err)
	}

	return total, nil
}

func (r *meterReadingRepository) ListAllReadings(ctx context.Context, limit uint64) ([]domain.MeterReading, error) {
	query, args, err := squirrel.
		Select(readingColumns...).
		From(meterReadingsTable).
		OrderBy("division_id", "month_id", "industryname").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	return r.scanReadings(ctx, query, args)
}

// Stats runs each aggregate as its own query, in sequence, the way the
// dashboard consumes them.
func (r *meterReadingRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{}

	counts := []struct {
		expr string
		dest *int
	}{
		{"COUNT(*)", &stats.TotalRecords},
		{"COUNT(DISTINCT industryname)", &stats.UniqueIndustries},
		{"COUNT(DISTINCT division_id)", &stats.UniqueDivisions},
		{"COUNT(DISTINCT month_id)", &stats.UniqueMonths},
	}

	for _, c := range counts {
		query, _, err := squirrel.Select(c.expr).From(meterReadingsTable).ToSql()
		if err != nil {
			return nil, fmt.Errorf("error building the query: %w", err)
		}
		if err := r.conn.QueryRow(ctx, query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("error computing %s: %w", c.expr, err)
		}
	}

	query, _, err := squirrel.
		Select("SUM(CAST(meterreadingdifference AS numeric))").
		From(meterReadingsTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	// SUM over an empty table is NULL, not zero
	var sum sql.NullFloat64
	if err := r.conn.QueryRow(ctx, query).Scan(&sum); err != nil {
		return nil, fmt.Errorf("error computing total difference: %w", err)
	}
	stats.TotalDifference = sum.Float64

	return stats, nil
}

func (r *meterReadingRepository) ServerInfo(ctx context.Context) (time.Time, string, error) {
	var now time.Time
	var version string

	// current_time is reserved in postgres, so no column aliases here
	row := r.conn.QueryRow(ctx, "SELECT NOW(), version()")
	if err := row.Scan(&now, &version); err != nil {
		return time.Time{}, "", fmt.Errorf("error querying server info: %w", err)
	}

	return now, version, nil
}

func (r *meterReadingRepository) scanStrings(ctx context.Context, query string, args []interface{}) ([]string, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing the query: %w", err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("error scanning value: %w", err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return values, nil
}

func (r *meterReadingRepository) scanMonthTotals(ctx context.Context, query string, args []interface{}) ([]domain.MonthTotal, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing the query: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.MonthTotal, 0)
	for rows.Next() {
		var t domain.MonthTotal
		if err := rows.Scan(&t.MonthID, &t.MonthName, &t.TotalDiff); err != nil {
			return nil, fmt.Errorf("error scanning month total: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return totals, nil
}

func (r *meterReadingRepository) scanReadings(ctx context.Context, query string, args []interface{}) ([]domain.MeterReading, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing the query: %w", err)
	}
	defer rows.Close()

	readings := make([]domain.MeterReading, 0)
	for rows.Next() {
		var m domain.MeterReading
		err := rows.Scan(
			&m.IndustryName,
			&m.DivisionID,
			&m.IndustryID,
			&m.MonthID,
			&m.MonthName,
			&m.FinancialYear,
			&m.InitialMeterReading,
			&m.FinalMeterReading,
			&m.MeterReadingDiff,
			&m.CurrentFinancialYear,
			&m.InsertDate,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning meter reading: %w", err)
		}
		readings = append(readings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return readings, nil
}
