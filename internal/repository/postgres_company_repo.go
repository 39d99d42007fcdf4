package repository

import (
	"database/sql"

	"github.com/hitoshi/rpelgate/internal/model"
)

// NewPostgresCompanyRepo は事業所のリポジトリを生成する。一覧には業種名を結合する。
func NewPostgresCompanyRepo(db *sql.DB) *PostgresTable[model.Company, model.CompanyList] {
	return newPostgresTable(db, tableDef[model.Company, model.CompanyList]{
		table:  "companies",
		getSQL: `SELECT id, name, address, scope_id, note FROM companies WHERE id = $1`,
		listSQL: `SELECT c.id, c.name, c.address, s.name
		 FROM companies c
		 LEFT JOIN scopes s ON s.id = c.scope_id
		 ORDER BY c.name`,
		insertSQL: `INSERT INTO companies (name, address, scope_id, note)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		updateSQL: `UPDATE companies SET name = $2, address = $3, scope_id = $4, note = $5
		 WHERE id = $1`,
		scanItem: func(s rowScanner) (model.Company, error) {
			var v model.Company
			err := s.Scan(&v.ID, &v.Name, textOrEmpty{&v.Address}, intOrZero{&v.ScopeID}, textOrEmpty{&v.Note})
			return v, err
		},
		scanList: func(s rowScanner) (model.CompanyList, error) {
			var v model.CompanyList
			err := s.Scan(&v.ID, &v.Name, textOrEmpty{&v.Address}, textOrEmpty{&v.ScopeName})
			return v, err
		},
		args: func(v model.Company) []any {
			return []any{v.Name, nullString(v.Address), nullID(v.ScopeID), nullString(v.Note)}
		},
		id:    func(v model.Company) int64 { return v.ID },
		setID: func(v *model.Company, id int64) { v.ID = id },
	})
}

// NewPostgresContactRepo は担当者のリポジトリを生成する。一覧には事業所名と役職名を結合する。
func NewPostgresContactRepo(db *sql.DB) *PostgresTable[model.Contact, model.ContactList] {
	return newPostgresTable(db, tableDef[model.Contact, model.ContactList]{
		table: "contacts",
		getSQL: `SELECT id, name, company_id, department_id, post_id, post_go_id, rank_id, birthday, note
		 FROM contacts WHERE id = $1`,
		listSQL: `SELECT c.id, c.name, co.name, p.name
		 FROM contacts c
		 LEFT JOIN companies co ON co.id = c.company_id
		 LEFT JOIN posts p ON p.id = c.post_id
		 ORDER BY c.name`,
		insertSQL: `INSERT INTO contacts (name, company_id, department_id, post_id, post_go_id, rank_id, birthday, note)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		updateSQL: `UPDATE contacts SET
		    name = $2, company_id = $3, department_id = $4, post_id = $5,
		    post_go_id = $6, rank_id = $7, birthday = $8, note = $9
		 WHERE id = $1`,
		scanItem: func(s rowScanner) (model.Contact, error) {
			var v model.Contact
			err := s.Scan(
				&v.ID, &v.Name,
				intOrZero{&v.CompanyID}, intOrZero{&v.DepartmentID}, intOrZero{&v.PostID},
				intOrZero{&v.PostGoID}, intOrZero{&v.RankID},
				&v.Birthday, textOrEmpty{&v.Note},
			)
			return v, err
		},
		scanList: func(s rowScanner) (model.ContactList, error) {
			var v model.ContactList
			err := s.Scan(&v.ID, &v.Name, textOrEmpty{&v.CompanyName}, textOrEmpty{&v.PostName})
			return v, err
		},
		args: func(v model.Contact) []any {
			return []any{
				v.Name, nullID(v.CompanyID), nullID(v.DepartmentID), nullID(v.PostID),
				nullID(v.PostGoID), nullID(v.RankID), v.Birthday, nullString(v.Note),
			}
		},
		id:    func(v model.Contact) int64 { return v.ID },
		setID: func(v *model.Contact, id int64) { v.ID = id },
	})
}

// compile-time interface check
var (
	_ CompanyRepository = (*PostgresTable[model.Company, model.CompanyList])(nil)
	_ ContactRepository = (*PostgresTable[model.Contact, model.ContactList])(nil)
)
