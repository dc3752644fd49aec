package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/metrics"
	"github.com/jhoicas/ecommerce-admin-api/pkg/pagination"
)

// argPrefix prefijo de los argumentos con nombre de los procedimientos (p_activity, p_brand_id, ...).
const argPrefix = "p_"

// Querier lo implementan *pgxpool.Pool, pgx.Tx y el mock de tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Gateway ejecuta procedimientos almacenados (funciones PostgreSQL) con una bolsa de parámetros.
// No guarda estado entre llamadas: es seguro compartirlo entre peticiones.
type Gateway struct {
	q       Querier
	log     zerolog.Logger
	metrics *metrics.Recorder
}

// NewGateway construye el gateway. rec puede ser nil.
func NewGateway(q Querier, log zerolog.Logger, rec *metrics.Recorder) *Gateway {
	return &Gateway{q: q, log: log, metrics: rec}
}

// Execute ejecuta una rama de mutación. El procedimiento devuelve el número de filas afectadas.
func (g *Gateway) Execute(ctx context.Context, procedure string, params repository.Params) (bool, error) {
	sql, args, err := buildCall(procedure, params, true)
	if err != nil {
		return false, err
	}
	start := time.Now()
	var affected pgtype.Int8
	err = g.q.QueryRow(ctx, sql, args...).Scan(&affected)
	if err != nil {
		g.observe(procedure, params, "error", start, err)
		return false, wrapErr(procedure, err)
	}
	ok := affected.Valid && affected.Int64 > 0
	outcome := "ok"
	if !ok {
		outcome = "empty"
	}
	g.observe(procedure, params, outcome, start, nil)
	return ok, nil
}

// query abre el cursor de filas de una rama de consulta.
func (g *Gateway) query(ctx context.Context, procedure string, params repository.Params) (pgx.Rows, error) {
	sql, args, err := buildCall(procedure, params, false)
	if err != nil {
		return nil, err
	}
	rows, err := g.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(procedure, err)
	}
	return rows, nil
}

func (g *Gateway) observe(procedure string, params repository.Params, outcome string, start time.Time, err error) {
	elapsed := time.Since(start)
	activity := string(params.Activity())
	g.metrics.ObserveCall(procedure, activity, outcome, elapsed)
	ev := g.log.Debug()
	if err != nil {
		ev = g.log.Warn().Err(err)
	}
	ev.Str("procedure", procedure).
		Str("activity", activity).
		Str("outcome", outcome).
		Dur("elapsed", elapsed).
		Msg("llamada a procedimiento")
}

// buildCall arma "SELECT * FROM proc(p_a => $1, p_b => $2)" (o "SELECT proc(...)" si scalar)
// con las claves ordenadas para que el texto de la sentencia sea estable.
func buildCall(procedure string, params repository.Params, scalar bool) (string, []any, error) {
	if !procedurePattern.MatchString(procedure) {
		return "", nil, fmt.Errorf("%w: nombre de procedimiento inválido %q", repository.ErrDataAccess, procedure)
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		if !paramPattern.MatchString(k) {
			return "", nil, fmt.Errorf("%w: parámetro inválido %q en %s", repository.ErrDataAccess, k, procedure)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	if scalar {
		b.WriteString("SELECT ")
	} else {
		b.WriteString("SELECT * FROM ")
	}
	b.WriteString(procedure)
	b.WriteByte('(')
	args := make([]any, 0, len(keys))
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(argPrefix)
		b.WriteString(k)
		b.WriteString(" => $")
		b.WriteString(strconv.Itoa(i + 1))
		args = append(args, params[k])
	}
	b.WriteByte(')')
	return b.String(), args, nil
}

func wrapErr(procedure string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s: %w", repository.ErrDuplicateKey, procedure, err)
	}
	return fmt.Errorf("%w: %s: %w", repository.ErrDataAccess, procedure, err)
}

// ── Vista tipada ──────────────────────────────────────────────────────────────

var _ repository.Gateway[entity.Brand] = (*Procedures[entity.Brand])(nil)

// Procedures vista del gateway para un tipo de registro R (columnas mapeadas por la etiqueta db).
type Procedures[R any] struct {
	gw *Gateway
}

// NewProcedures construye la vista tipada sobre un gateway compartido.
func NewProcedures[R any](gw *Gateway) *Procedures[R] {
	return &Procedures[R]{gw: gw}
}

// Execute ver Gateway.Execute.
func (p *Procedures[R]) Execute(ctx context.Context, procedure string, params repository.Params) (bool, error) {
	return p.gw.Execute(ctx, procedure, params)
}

// GetOne devuelve el primer registro o nil, nil si no hay filas.
func (p *Procedures[R]) GetOne(ctx context.Context, procedure string, params repository.Params) (*R, error) {
	start := time.Now()
	rows, err := p.gw.query(ctx, procedure, params)
	if err != nil {
		p.gw.observe(procedure, params, "error", start, err)
		return nil, err
	}
	rec, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[R])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.gw.observe(procedure, params, "empty", start, nil)
			return nil, nil
		}
		p.gw.observe(procedure, params, "error", start, err)
		return nil, wrapErr(procedure, err)
	}
	p.gw.observe(procedure, params, "ok", start, nil)
	return rec, nil
}

// GetPage agrega page_index y page_size a la bolsa y recoge la página.
// El total sale de la columna total_count del primer registro (entity.Paging). Una página
// posterior a la última no trae filas, así que el total se vuelve a pedir con la ventana 1x1.
func (p *Procedures[R]) GetPage(ctx context.Context, procedure string, window pagination.Window, params repository.Params) (*pagination.Page[R], error) {
	window = window.Normalize()
	items, err := p.collect(ctx, procedure, window, params)
	if err != nil {
		return nil, err
	}
	total := totalOf(items)
	if len(items) == 0 && window.PageIndex > 1 && isCounted[R]() {
		head, err := p.collect(ctx, procedure, pagination.Window{PageIndex: 1, PageSize: 1}, params)
		if err != nil {
			return nil, err
		}
		total = totalOf(head)
	}
	return pagination.New(items, window, total), nil
}

func (p *Procedures[R]) collect(ctx context.Context, procedure string, window pagination.Window, params repository.Params) ([]R, error) {
	call := make(repository.Params, len(params)+2)
	for k, v := range params {
		call[k] = v
	}
	call[repository.KeyPageIndex] = window.PageIndex
	call[repository.KeyPageSize] = window.PageSize

	start := time.Now()
	rows, err := p.gw.query(ctx, procedure, call)
	if err != nil {
		p.gw.observe(procedure, call, "error", start, err)
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[R])
	if err != nil {
		p.gw.observe(procedure, call, "error", start, err)
		return nil, wrapErr(procedure, err)
	}
	outcome := "ok"
	if len(items) == 0 {
		outcome = "empty"
	}
	p.gw.observe(procedure, call, outcome, start, nil)
	return items, nil
}

type counted interface{ Total() int64 }

func isCounted[R any]() bool {
	var zero R
	_, ok := any(zero).(counted)
	return ok
}

func totalOf[R any](items []R) int64 {
	if len(items) == 0 {
		return 0
	}
	if c, ok := any(items[0]).(counted); ok && c.Total() > 0 {
		return c.Total()
	}
	return int64(len(items))
}
