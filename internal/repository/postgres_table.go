package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// rowScanner は*sql.Rowと*sql.Rowsの共通部分。
type rowScanner interface {
	Scan(dest ...any) error
}

// tableDef は1テーブル分のSQLと行の変換方法を表す。
//
// insertSQLは RETURNING id で採番されたIDを返すこと。
// updateSQLは最初のプレースホルダ($1)をidとすること。
type tableDef[T any, L any] struct {
	table     string
	getSQL    string
	listSQL   string
	insertSQL string
	updateSQL string

	scanItem func(rowScanner) (T, error)
	scanList func(rowScanner) (L, error)
	args     func(T) []any
	id       func(T) int64
	setID    func(*T, int64)
}

// PostgresTable はPostgreSQLを使用した汎用のエンティティリポジトリ。
type PostgresTable[T any, L any] struct {
	db  *sql.DB
	def tableDef[T, L]
}

func newPostgresTable[T any, L any](db *sql.DB, def tableDef[T, L]) *PostgresTable[T, L] {
	return &PostgresTable[T, L]{db: db, def: def}
}

// Get は指定IDのレコードを取得する。見つからない場合はnilを返す。
func (r *PostgresTable[T, L]) Get(ctx context.Context, id int64) (*T, error) {
	rec, err := r.def.scanItem(r.db.QueryRowContext(ctx, r.def.getSQL, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", r.def.table, err)
	}
	return &rec, nil
}

// List は一覧を返す。
func (r *PostgresTable[T, L]) List(ctx context.Context) ([]L, error) {
	rows, err := r.db.QueryContext(ctx, r.def.listSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.def.table, err)
	}
	defer rows.Close()

	var out []L
	for rows.Next() {
		row, err := r.def.scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.def.table, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", r.def.table, err)
	}
	return out, nil
}

// Insert はレコードを作成し、採番されたIDを設定したレコードを返す。
func (r *PostgresTable[T, L]) Insert(ctx context.Context, rec T) (T, error) {
	var id int64
	if err := r.db.QueryRowContext(ctx, r.def.insertSQL, r.def.args(rec)...).Scan(&id); err != nil {
		return rec, fmt.Errorf("failed to insert %s: %w", r.def.table, err)
	}
	r.def.setID(&rec, id)
	return rec, nil
}

// Update はレコードを更新し、影響行数を返す。
func (r *PostgresTable[T, L]) Update(ctx context.Context, rec T) (int64, error) {
	args := append([]any{r.def.id(rec)}, r.def.args(rec)...)
	result, err := r.db.ExecContext(ctx, r.def.updateSQL, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update %s: %w", r.def.table, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected, nil
}

// Delete は指定IDのレコードを削除し、影響行数を返す。
func (r *PostgresTable[T, L]) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM `+r.def.table+` WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", r.def.table, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected, nil
}

// nullString は空文字列をNULLとして扱うsql.NullStringを返す。
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullID は0をNULLとして扱う外部キー値を返す。
func nullID(id int64) sql.NullInt64 {
	if id == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: id, Valid: true}
}

// nullFloat は0をNULLとして扱うsql.NullFloat64を返す。
func nullFloat(f float64) sql.NullFloat64 {
	if f == 0 {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

// 以下はNULLをゼロ値として読み込むsql.Scanner。

type textOrEmpty struct{ dst *string }

func (s textOrEmpty) Scan(src any) error {
	var ns sql.NullString
	if err := ns.Scan(src); err != nil {
		return err
	}
	*s.dst = ns.String
	return nil
}

type intOrZero struct{ dst *int64 }

func (s intOrZero) Scan(src any) error {
	var n sql.NullInt64
	if err := n.Scan(src); err != nil {
		return err
	}
	*s.dst = n.Int64
	return nil
}

type floatOrZero struct{ dst *float64 }

func (s floatOrZero) Scan(src any) error {
	var n sql.NullFloat64
	if err := n.Scan(src); err != nil {
		return err
	}
	*s.dst = n.Float64
	return nil
}

type boolOrFalse struct{ dst *bool }

func (s boolOrFalse) Scan(src any) error {
	var n sql.NullBool
	if err := n.Scan(src); err != nil {
		return err
	}
	*s.dst = n.Bool
	return nil
}
