package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/openfpga/slackline/internal/report"
	"github.com/openfpga/slackline/internal/timing"
)

// Pass is one recorded timing summary. All values are display units.
type Pass struct {
	ID        string
	Label     string
	CreatedAt time.Time

	// CPDNs and FmaxMHz are NaN when the pass had no critical path.
	CPDNs   float64
	FmaxMHz float64

	SWNSNs float64
	STNSNs float64
	HWNSNs float64
	HTNSNs float64
}

// PassFromReport extracts the recordable summary from a report.
// The id is assigned on write.
func PassFromReport(rpt *report.Report, label string) Pass {
	p := Pass{
		Label:   label,
		CPDNs:   math.NaN(),
		FmaxMHz: math.NaN(),
		SWNSNs:  timing.SecToNs(rpt.Setup.WNS),
		STNSNs:  timing.SecToNs(rpt.Setup.TNS),
		HWNSNs:  timing.SecToNs(rpt.Hold.WNS),
		HTNSNs:  timing.SecToNs(rpt.Hold.TNS),
	}
	if rpt.Setup.HasCriticalPath {
		p.CPDNs = timing.SecToNs(rpt.Setup.CriticalPath.Delay)
		p.FmaxMHz = timing.SecToMHz(rpt.Setup.CriticalPath.Delay)
	}
	return p
}

// RecordPass inserts a pass and returns its assigned id.
func (s *Store) RecordPass(ctx context.Context, p Pass) (string, error) {
	id := uuid.NewString()
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO passes
		(id, label, created_at, cpd_ns, fmax_mhz, swns_ns, stns_ns, hwns_ns, htns_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id,
		p.Label,
		createdAt.Format(time.RFC3339Nano),
		nullable(p.CPDNs),
		nullable(p.FmaxMHz),
		p.SWNSNs,
		p.STNSNs,
		p.HWNSNs,
		p.HTNSNs,
	)
	if err != nil {
		return "", fmt.Errorf("record pass: %w", err)
	}

	return id, nil
}

// ListPasses returns all recorded passes, oldest first. Ordering is
// deterministic: created_at, then id for same-instant rows.
func (s *Store) ListPasses(ctx context.Context) ([]Pass, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, label, created_at, cpd_ns, fmax_mhz, swns_ns, stns_ns, hwns_ns, htns_ns
		FROM passes
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query passes: %w", err)
	}
	defer rows.Close()

	passes := []Pass{}
	for rows.Next() {
		var p Pass
		var createdAt string
		var cpd, fmax sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.Label, &createdAt, &cpd, &fmax,
			&p.SWNSNs, &p.STNSNs, &p.HWNSNs, &p.HTNSNs); err != nil {
			return nil, fmt.Errorf("scan pass: %w", err)
		}
		p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse pass timestamp: %w", err)
		}
		p.CPDNs = fromNullable(cpd)
		p.FmaxMHz = fromNullable(fmax)
		passes = append(passes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate passes: %w", err)
	}

	return passes, nil
}

// nullable maps NaN to SQL NULL.
func nullable(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

func fromNullable(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
