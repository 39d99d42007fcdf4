package repository

import (
	"database/sql"

	"github.com/hitoshi/rpelgate/internal/model"
)

// 参照用の小さなマスタテーブル（業種、訓練種別、役職、階級、部署、サイレン型式）のリポジトリ。

// NewPostgresScopeRepo は業種区分のリポジトリを生成する。
func NewPostgresScopeRepo(db *sql.DB) *PostgresTable[model.Scope, model.ScopeList] {
	return newPostgresTable(db, tableDef[model.Scope, model.ScopeList]{
		table:     "scopes",
		getSQL:    `SELECT id, name, note FROM scopes WHERE id = $1`,
		listSQL:   `SELECT id, name, note FROM scopes ORDER BY name`,
		insertSQL: `INSERT INTO scopes (name, note) VALUES ($1, $2) RETURNING id`,
		updateSQL: `UPDATE scopes SET name = $2, note = $3 WHERE id = $1`,
		scanItem: func(s rowScanner) (model.Scope, error) {
			var v model.Scope
			err := s.Scan(&v.ID, &v.Name, textOrEmpty{&v.Note})
			return v, err
		},
		scanList: func(s rowScanner) (model.ScopeList, error) {
			var v model.ScopeList
			err := s.Scan(&v.ID, &v.Name, textOrEmpty{&v.Note})
			return v, err
		},
		args:  func(v model.Scope) []any { return []any{v.Name, nullString(v.Note)} },
		id:    func(v model.Scope) int64 { return v.ID },
		setID: func(v *model.Scope, id int64) { v.ID = id },
	})
}

// NewPostgresKindRepo は訓練種別のリポジトリを生成する。
func NewPostgresKindRepo(db *sql.DB) *PostgresTable[model.Kind, model.KindList] {
	return newPostgresTable(db, tableDef[model.Kind, model.KindList]{
		table:     "kinds",
		getSQL:    `SELECT id, name, short_name, note FROM kinds WHERE id = $1`,
		listSQL:   `SELECT id, name, short_name, note FROM kinds ORDER BY name`,
		insertSQL: `INSERT INTO kinds (name, short_name, note) VALUES ($1, $2, $3) RETURNING id`,
		updateSQL: `UPDATE kinds SET name = $2, short_name = $3, note = $4 WHERE id = $1`,
		scanItem: func(s rowScanner) (model.Kind, error) {
			var v model.Kind
			err := s.Scan(&v.ID, &v.Name, textOrEmpty{&v.ShortName}, textOrEmpty{&v.Note})
			return v, err
		},
		scanList: func(s rowScanner) (model.KindList, error) {
			var v model.KindList
			err := s.Scan(&v.ID, &v.Name, textOrEmpty{&v.ShortName}, textOrEmpty{&v.Note})
			return v, err
		},
		args: func(v model.Kind) []any {
			return []any{v.Name, nullString(v.ShortName), nullString(v.Note)}
		},
		id:    func(v model.Kind) int64 { return v.ID },
		setID: func(v *model.Kind, id int64) { v.ID = id },
	})
}

// NewPostgresPostRepo は役職のリポジトリを生成する。
func NewPostgresPostRepo(db *sql.DB) *PostgresTable[model.Post, model.PostList] {
	return newPostgresTable(db, tableDef[model.Post, model.PostList]{
		table:     "posts",
		getSQL:    `SELECT id, name, go, note FROM posts WHERE id = $1`,
		listSQL:   `SELECT id, name, go, note FROM posts ORDER BY go, name`,
		insertSQL: `INSERT INTO posts (name, go, note) VALUES ($1, $2, $3) RETURNING id`,
		updateSQL: `UPDATE posts SET name = $2, go = $3, note = $4 WHERE id = $1`,
		scanItem: func(s rowScanner) (model.Post, error) {
			var v model.Post
			err := s.Scan(&v.ID, &v.Name, boolOrFalse{&v.Go}, textOrEmpty{&v.Note})
			return v, err
		},
		scanList: func(s rowScanner) (model.PostList, error) {
			var v model.PostList
			err := s.Scan(&v.ID, &v.Name, boolOrFalse{&v.Go}, textOrEmpty{&v.Note})
			return v, err
		},
		args:  func(v model.Post) []any { return []any{v.Name, v.Go, nullString(v.Note)} },
		id:    func(v model.Post) int64 { return v.ID },
		setID: func(v *model.Post, id int64) { v.ID = id },
	})
}

// NewPostgresRankRepo は階級のリポジトリを生成する。
func NewPostgresRankRepo(db *sql.DB) *PostgresTable[model.Rank, model.RankList] {
	return newPostgresTable(db, tableDef[model.Rank, model.RankList]{
		table:     "ranks",
		getSQL:    `SELECT id, name, note FROM ranks WHERE id = $1`,
		listSQL:   `SELECT id, name, note FROM ranks ORDER BY name`,
		insertSQL: `INSERT INTO ranks (name, note) VALUES ($1, $2) RETURNING id`,
		updateSQL: `UPDATE ranks SET name = $2, note = $3 WHERE id = $1`,
		scanItem: func(s rowScanner) (model.Rank, error) {
			var v model.Rank
			err := s.Scan(&v.ID, &v.Name, textOrEmpty{&v.Note})
			return v, err
		},
		scanList: func(s rowScanner) (model.RankList, error) {
			var v model.RankList
			err := s.Scan(&v.ID, &v.Name, textOrEmpty{&v.Note})
			return v, err
		},
		args:  func(v model.Rank) []any { return []any{v.Name, nullString(v.Note)} },
		id:    func(v model.Rank) int64 { return v.ID },
		setID: func(v *model.Rank, id int64) { v.ID = id },
	})
}

// NewPostgresDepartmentRepo は部署のリポジトリを生成する。
func NewPostgresDepartmentRepo(db *sql.DB) *PostgresTable[model.Department, model.DepartmentList] {
	return newPostgresTable(db, tableDef[model.Department, model.DepartmentList]{
		table:     "departments",
		getSQL:    `SELECT id, name, note FROM departments WHERE id = $1`,
		listSQL:   `SELECT id, name, note FROM departments ORDER BY name`,
		insertSQL: `INSERT INTO departments (name, note) VALUES ($1, $2) RETURNING id`,
		updateSQL: `UPDATE departments SET name = $2, note = $3 WHERE id = $1`,
		scanItem: func(s rowScanner) (model.Department, error) {
			var v model.Department
			err := s.Scan(&v.ID, &v.Name, textOrEmpty{&v.Note})
			return v, err
		},
		scanList: func(s rowScanner) (model.DepartmentList, error) {
			var v model.DepartmentList
			err := s.Scan(&v.ID, &v.Name, textOrEmpty{&v.Note})
			return v, err
		},
		args:  func(v model.Department) []any { return []any{v.Name, nullString(v.Note)} },
		id:    func(v model.Department) int64 { return v.ID },
		setID: func(v *model.Department, id int64) { v.ID = id },
	})
}

// NewPostgresSirenTypeRepo はサイレン型式のリポジトリを生成する。
func NewPostgresSirenTypeRepo(db *sql.DB) *PostgresTable[model.SirenType, model.SirenTypeList] {
	return newPostgresTable(db, tableDef[model.SirenType, model.SirenTypeList]{
		table:     "siren_types",
		getSQL:    `SELECT id, name, radius, note FROM siren_types WHERE id = $1`,
		listSQL:   `SELECT id, name, radius, note FROM siren_types ORDER BY name`,
		insertSQL: `INSERT INTO siren_types (name, radius, note) VALUES ($1, $2, $3) RETURNING id`,
		updateSQL: `UPDATE siren_types SET name = $2, radius = $3, note = $4 WHERE id = $1`,
		scanItem: func(s rowScanner) (model.SirenType, error) {
			var v model.SirenType
			err := s.Scan(&v.ID, &v.Name, intOrZero{&v.Radius}, textOrEmpty{&v.Note})
			return v, err
		},
		scanList: func(s rowScanner) (model.SirenTypeList, error) {
			var v model.SirenTypeList
			err := s.Scan(&v.ID, &v.Name, intOrZero{&v.Radius}, textOrEmpty{&v.Note})
			return v, err
		},
		args: func(v model.SirenType) []any {
			return []any{v.Name, v.Radius, nullString(v.Note)}
		},
		id:    func(v model.SirenType) int64 { return v.ID },
		setID: func(v *model.SirenType, id int64) { v.ID = id },
	})
}

// compile-time interface check
var (
	_ ScopeRepository      = (*PostgresTable[model.Scope, model.ScopeList])(nil)
	_ KindRepository       = (*PostgresTable[model.Kind, model.KindList])(nil)
	_ PostRepository       = (*PostgresTable[model.Post, model.PostList])(nil)
	_ RankRepository       = (*PostgresTable[model.Rank, model.RankList])(nil)
	_ DepartmentRepository = (*PostgresTable[model.Department, model.DepartmentList])(nil)
	_ SirenTypeRepository  = (*PostgresTable[model.SirenType, model.SirenTypeList])(nil)
)
