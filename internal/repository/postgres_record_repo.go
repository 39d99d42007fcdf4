package repository

import (
	"database/sql"

	"github.com/hitoshi/rpelgate/internal/model"
)

// 担当者・事業所に紐づく記録（資格証明書、教育、訓練、サイレン）のリポジトリ。

// NewPostgresCertificateRepo は資格証明書のリポジトリを生成する。
func NewPostgresCertificateRepo(db *sql.DB) *PostgresTable[model.Certificate, model.CertificateList] {
	return newPostgresTable(db, tableDef[model.Certificate, model.CertificateList]{
		table:  "certificates",
		getSQL: `SELECT id, num, contact_id, company_id, cert_date, note FROM certificates WHERE id = $1`,
		listSQL: `SELECT ce.id, ce.num, ct.name, co.name, ce.cert_date
		 FROM certificates ce
		 LEFT JOIN contacts ct ON ct.id = ce.contact_id
		 LEFT JOIN companies co ON co.id = ce.company_id
		 ORDER BY ce.num`,
		insertSQL: `INSERT INTO certificates (num, contact_id, company_id, cert_date, note)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		updateSQL: `UPDATE certificates SET
		    num = $2, contact_id = $3, company_id = $4, cert_date = $5, note = $6
		 WHERE id = $1`,
		scanItem: func(s rowScanner) (model.Certificate, error) {
			var v model.Certificate
			err := s.Scan(&v.ID, &v.Num, intOrZero{&v.ContactID}, intOrZero{&v.CompanyID}, &v.CertDate, textOrEmpty{&v.Note})
			return v, err
		},
		scanList: func(s rowScanner) (model.CertificateList, error) {
			var v model.CertificateList
			err := s.Scan(&v.ID, &v.Num, textOrEmpty{&v.ContactName}, textOrEmpty{&v.CompanyName}, &v.CertDate)
			return v, err
		},
		args: func(v model.Certificate) []any {
			return []any{v.Num, nullID(v.ContactID), nullID(v.CompanyID), v.CertDate, nullString(v.Note)}
		},
		id:    func(v model.Certificate) int64 { return v.ID },
		setID: func(v *model.Certificate, id int64) { v.ID = id },
	})
}

// NewPostgresEducationRepo は教育受講記録のリポジトリを生成する。
func NewPostgresEducationRepo(db *sql.DB) *PostgresTable[model.Education, model.EducationList] {
	return newPostgresTable(db, tableDef[model.Education, model.EducationList]{
		table:  "educations",
		getSQL: `SELECT id, contact_id, start_date, end_date, post_id, note FROM educations WHERE id = $1`,
		listSQL: `SELECT e.id, ct.name, e.start_date, e.end_date, p.name
		 FROM educations e
		 LEFT JOIN contacts ct ON ct.id = e.contact_id
		 LEFT JOIN posts p ON p.id = e.post_id
		 ORDER BY e.start_date DESC`,
		insertSQL: `INSERT INTO educations (contact_id, start_date, end_date, post_id, note)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		updateSQL: `UPDATE educations SET
		    contact_id = $2, start_date = $3, end_date = $4, post_id = $5, note = $6
		 WHERE id = $1`,
		scanItem: func(s rowScanner) (model.Education, error) {
			var v model.Education
			err := s.Scan(&v.ID, intOrZero{&v.ContactID}, &v.StartDate, &v.EndDate, intOrZero{&v.PostID}, textOrEmpty{&v.Note})
			return v, err
		},
		scanList: func(s rowScanner) (model.EducationList, error) {
			var v model.EducationList
			err := s.Scan(&v.ID, textOrEmpty{&v.ContactName}, &v.StartDate, &v.EndDate, textOrEmpty{&v.PostName})
			return v, err
		},
		args: func(v model.Education) []any {
			return []any{nullID(v.ContactID), v.StartDate, v.EndDate, nullID(v.PostID), nullString(v.Note)}
		},
		id:    func(v model.Education) int64 { return v.ID },
		setID: func(v *model.Education, id int64) { v.ID = id },
	})
}

// NewPostgresPracticeRepo は訓練のリポジトリを生成する。
func NewPostgresPracticeRepo(db *sql.DB) *PostgresTable[model.Practice, model.PracticeList] {
	return newPostgresTable(db, tableDef[model.Practice, model.PracticeList]{
		table:  "practices",
		getSQL: `SELECT id, company_id, kind_id, topic, date_of_practice, note FROM practices WHERE id = $1`,
		listSQL: `SELECT pr.id, co.name, k.short_name, pr.topic, pr.date_of_practice
		 FROM practices pr
		 LEFT JOIN companies co ON co.id = pr.company_id
		 LEFT JOIN kinds k ON k.id = pr.kind_id
		 ORDER BY pr.date_of_practice DESC`,
		insertSQL: `INSERT INTO practices (company_id, kind_id, topic, date_of_practice, note)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		updateSQL: `UPDATE practices SET
		    company_id = $2, kind_id = $3, topic = $4, date_of_practice = $5, note = $6
		 WHERE id = $1`,
		scanItem: func(s rowScanner) (model.Practice, error) {
			var v model.Practice
			err := s.Scan(&v.ID, intOrZero{&v.CompanyID}, intOrZero{&v.KindID}, textOrEmpty{&v.Topic}, &v.DateOfPractice, textOrEmpty{&v.Note})
			return v, err
		},
		scanList: func(s rowScanner) (model.PracticeList, error) {
			var v model.PracticeList
			err := s.Scan(&v.ID, textOrEmpty{&v.CompanyName}, textOrEmpty{&v.KindShortName}, textOrEmpty{&v.Topic}, &v.DateOfPractice)
			return v, err
		},
		args: func(v model.Practice) []any {
			return []any{nullID(v.CompanyID), nullID(v.KindID), nullString(v.Topic), v.DateOfPractice, nullString(v.Note)}
		},
		id:    func(v model.Practice) int64 { return v.ID },
		setID: func(v *model.Practice, id int64) { v.ID = id },
	})
}

// NewPostgresSirenRepo はサイレンのリポジトリを生成する。
func NewPostgresSirenRepo(db *sql.DB) *PostgresTable[model.Siren, model.SirenList] {
	return newPostgresTable(db, tableDef[model.Siren, model.SirenList]{
		table: "sirens",
		getSQL: `SELECT id, num_id, num_pass, siren_type_id, address, radio, desk,
		        contact_id, company_id, latitude, longitude, stage, own, note
		 FROM sirens WHERE id = $1`,
		listSQL: `SELECT s.id, st.name, s.address, ct.name
		 FROM sirens s
		 LEFT JOIN siren_types st ON st.id = s.siren_type_id
		 LEFT JOIN contacts ct ON ct.id = s.contact_id
		 ORDER BY s.address`,
		insertSQL: `INSERT INTO sirens (num_id, num_pass, siren_type_id, address, radio, desk,
		                    contact_id, company_id, latitude, longitude, stage, own, note)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`,
		updateSQL: `UPDATE sirens SET
		    num_id = $2, num_pass = $3, siren_type_id = $4, address = $5, radio = $6,
		    desk = $7, contact_id = $8, company_id = $9, latitude = $10, longitude = $11,
		    stage = $12, own = $13, note = $14
		 WHERE id = $1`,
		scanItem: func(s rowScanner) (model.Siren, error) {
			var v model.Siren
			err := s.Scan(
				&v.ID, intOrZero{&v.NumID}, textOrEmpty{&v.NumPass}, intOrZero{&v.SirenTypeID},
				textOrEmpty{&v.Address}, textOrEmpty{&v.Radio}, textOrEmpty{&v.Desk},
				intOrZero{&v.ContactID}, intOrZero{&v.CompanyID},
				floatOrZero{&v.Latitude}, floatOrZero{&v.Longitude},
				intOrZero{&v.Stage}, textOrEmpty{&v.Own}, textOrEmpty{&v.Note},
			)
			return v, err
		},
		scanList: func(s rowScanner) (model.SirenList, error) {
			var v model.SirenList
			err := s.Scan(&v.ID, textOrEmpty{&v.SirenTypeName}, textOrEmpty{&v.Address}, textOrEmpty{&v.ContactName})
			return v, err
		},
		args: func(v model.Siren) []any {
			return []any{
				nullID(v.NumID), nullString(v.NumPass), nullID(v.SirenTypeID),
				nullString(v.Address), nullString(v.Radio), nullString(v.Desk),
				nullID(v.ContactID), nullID(v.CompanyID),
				nullFloat(v.Latitude), nullFloat(v.Longitude),
				nullID(v.Stage), nullString(v.Own), nullString(v.Note),
			}
		},
		id:    func(v model.Siren) int64 { return v.ID },
		setID: func(v *model.Siren, id int64) { v.ID = id },
	})
}

// compile-time interface check
var (
	_ CertificateRepository = (*PostgresTable[model.Certificate, model.CertificateList])(nil)
	_ EducationRepository   = (*PostgresTable[model.Education, model.EducationList])(nil)
	_ PracticeRepository    = (*PostgresTable[model.Practice, model.PracticeList])(nil)
	_ SirenRepository       = (*PostgresTable[model.Siren, model.SirenList])(nil)
)
