package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/rpelgate/internal/model"
)

// selectQueries は選択肢射影ごとのSQL。
var selectQueries = map[model.SelectKind]string{
	model.SelectCompany:      `SELECT id, name FROM companies ORDER BY name`,
	model.SelectContact:      `SELECT id, name FROM contacts ORDER BY name`,
	model.SelectDepartment:   `SELECT id, name FROM departments ORDER BY name`,
	model.SelectPracticeKind: `SELECT id, name FROM kinds ORDER BY name`,
	model.SelectPost:         `SELECT id, name FROM posts WHERE go = false ORDER BY name`,
	model.SelectPostGo:       `SELECT id, name FROM posts WHERE go = true ORDER BY name`,
	model.SelectRank:         `SELECT id, name FROM ranks ORDER BY name`,
	model.SelectScope:        `SELECT id, name FROM scopes ORDER BY name`,
	model.SelectSirenType:    `SELECT id, name FROM siren_types ORDER BY name`,
}

// PostgresSelectRepo はPostgreSQLを使用した選択肢射影リポジトリ。
type PostgresSelectRepo struct {
	db *sql.DB
}

// NewPostgresSelectRepo はPostgresSelectRepoを生成する。
func NewPostgresSelectRepo(db *sql.DB) *PostgresSelectRepo {
	return &PostgresSelectRepo{db: db}
}

// ListSelect は指定テーブルの選択肢を名前順に返す。
func (r *PostgresSelectRepo) ListSelect(ctx context.Context, kind model.SelectKind) ([]model.SelectItem, error) {
	query, ok := selectQueries[kind]
	if !ok {
		return nil, fmt.Errorf("unknown select kind: %s", kind)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s select: %w", kind, err)
	}
	defer rows.Close()

	var items []model.SelectItem
	for rows.Next() {
		var it model.SelectItem
		if err := rows.Scan(&it.ID, textOrEmpty{&it.Name}); err != nil {
			return nil, fmt.Errorf("failed to scan %s select: %w", kind, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s select: %w", kind, err)
	}
	return items, nil
}

// PostgresNearRepo はPostgreSQLを使用した近日レコード射影リポジトリ。
type PostgresNearRepo[S any] struct {
	db    *sql.DB
	name  string
	query string
	scan  func(rowScanner) (S, error)
}

// ListNear は今日からNearWindowDays日以内のレコードを日付順に返す。
func (r *PostgresNearRepo[S]) ListNear(ctx context.Context) ([]S, error) {
	rows, err := r.db.QueryContext(ctx, r.query, NearWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to list near %s: %w", r.name, err)
	}
	defer rows.Close()

	var out []S
	for rows.Next() {
		v, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan near %s: %w", r.name, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate near %s: %w", r.name, err)
	}
	return out, nil
}

// NewPostgresEducationNearRepo は開始日が近い教育受講記録の射影リポジトリを生成する。
func NewPostgresEducationNearRepo(db *sql.DB) *PostgresNearRepo[model.EducationShort] {
	return &PostgresNearRepo[model.EducationShort]{
		db:   db,
		name: "educations",
		query: `SELECT e.id, e.contact_id, ct.name, e.start_date
		 FROM educations e
		 LEFT JOIN contacts ct ON ct.id = e.contact_id
		 WHERE e.start_date >= CURRENT_DATE AND e.start_date <= CURRENT_DATE + $1::int
		 ORDER BY e.start_date`,
		scan: func(s rowScanner) (model.EducationShort, error) {
			var v model.EducationShort
			err := s.Scan(&v.ID, intOrZero{&v.ContactID}, textOrEmpty{&v.ContactName}, &v.StartDate)
			return v, err
		},
	}
}

// NewPostgresPracticeNearRepo は実施日が近い訓練の射影リポジトリを生成する。
func NewPostgresPracticeNearRepo(db *sql.DB) *PostgresNearRepo[model.PracticeShort] {
	return &PostgresNearRepo[model.PracticeShort]{
		db:   db,
		name: "practices",
		query: `SELECT pr.id, pr.company_id, co.name, k.short_name, pr.date_of_practice
		 FROM practices pr
		 LEFT JOIN companies co ON co.id = pr.company_id
		 LEFT JOIN kinds k ON k.id = pr.kind_id
		 WHERE pr.date_of_practice >= CURRENT_DATE AND pr.date_of_practice <= CURRENT_DATE + $1::int
		 ORDER BY pr.date_of_practice`,
		scan: func(s rowScanner) (model.PracticeShort, error) {
			var v model.PracticeShort
			err := s.Scan(&v.ID, intOrZero{&v.CompanyID}, textOrEmpty{&v.CompanyName}, textOrEmpty{&v.KindShortName}, &v.DateOfPractice)
			return v, err
		},
	}
}

// compile-time interface check
var (
	_ SelectRepository                     = (*PostgresSelectRepo)(nil)
	_ NearRepository[model.EducationShort] = (*PostgresNearRepo[model.EducationShort])(nil)
	_ NearRepository[model.PracticeShort]  = (*PostgresNearRepo[model.PracticeShort])(nil)
)
