package repository

import (
	"testing"

	"github.com/hitoshi/rpelgate/internal/model"
)

// NewPostgres*Repoが正しく初期化されることを検証
func TestNewPostgresRepos_Initialize(t *testing.T) {
	repos := map[string]any{
		"scope":         NewPostgresScopeRepo(nil),
		"kind":          NewPostgresKindRepo(nil),
		"post":          NewPostgresPostRepo(nil),
		"rank":          NewPostgresRankRepo(nil),
		"department":    NewPostgresDepartmentRepo(nil),
		"siren_type":    NewPostgresSirenTypeRepo(nil),
		"company":       NewPostgresCompanyRepo(nil),
		"contact":       NewPostgresContactRepo(nil),
		"certificate":   NewPostgresCertificateRepo(nil),
		"education":     NewPostgresEducationRepo(nil),
		"practice":      NewPostgresPracticeRepo(nil),
		"siren":         NewPostgresSirenRepo(nil),
		"user":          NewPostgresUserRepo(nil),
		"select":        NewPostgresSelectRepo(nil),
		"educ_near":     NewPostgresEducationNearRepo(nil),
		"practice_near": NewPostgresPracticeNearRepo(nil),
	}
	for name, repo := range repos {
		if repo == nil {
			t.Errorf("%s: expected non-nil repo", name)
		}
	}
}

// 各テーブル定義のプレースホルダ数が引数の数と一致することを検証
func TestTableDefs_ArgsMatchPlaceholders(t *testing.T) {
	tests := []struct {
		name       string
		insertSQL  string
		updateSQL  string
		insertArgs int
	}{
		{"scope", NewPostgresScopeRepo(nil).def.insertSQL, NewPostgresScopeRepo(nil).def.updateSQL, len(NewPostgresScopeRepo(nil).def.args(model.Scope{}))},
		{"kind", NewPostgresKindRepo(nil).def.insertSQL, NewPostgresKindRepo(nil).def.updateSQL, len(NewPostgresKindRepo(nil).def.args(model.Kind{}))},
		{"company", NewPostgresCompanyRepo(nil).def.insertSQL, NewPostgresCompanyRepo(nil).def.updateSQL, len(NewPostgresCompanyRepo(nil).def.args(model.Company{}))},
		{"contact", NewPostgresContactRepo(nil).def.insertSQL, NewPostgresContactRepo(nil).def.updateSQL, len(NewPostgresContactRepo(nil).def.args(model.Contact{}))},
		{"certificate", NewPostgresCertificateRepo(nil).def.insertSQL, NewPostgresCertificateRepo(nil).def.updateSQL, len(NewPostgresCertificateRepo(nil).def.args(model.Certificate{}))},
		{"education", NewPostgresEducationRepo(nil).def.insertSQL, NewPostgresEducationRepo(nil).def.updateSQL, len(NewPostgresEducationRepo(nil).def.args(model.Education{}))},
		{"practice", NewPostgresPracticeRepo(nil).def.insertSQL, NewPostgresPracticeRepo(nil).def.updateSQL, len(NewPostgresPracticeRepo(nil).def.args(model.Practice{}))},
		{"siren", NewPostgresSirenRepo(nil).def.insertSQL, NewPostgresSirenRepo(nil).def.updateSQL, len(NewPostgresSirenRepo(nil).def.args(model.Siren{}))},
		{"user", NewPostgresUserRepo(nil).def.insertSQL, NewPostgresUserRepo(nil).def.updateSQL, len(NewPostgresUserRepo(nil).def.args(model.User{}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maxPlaceholder(tt.insertSQL); got != tt.insertArgs {
				t.Errorf("insert placeholders = %d, args = %d", got, tt.insertArgs)
			}
			// 更新は$1がid
			if got := maxPlaceholder(tt.updateSQL); got != tt.insertArgs+1 {
				t.Errorf("update placeholders = %d, want %d", got, tt.insertArgs+1)
			}
		})
	}
}

// maxPlaceholder はSQL中の最大の$nを返す。
func maxPlaceholder(query string) int {
	highest := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '$' {
			continue
		}
		n := 0
		for j := i + 1; j < len(query) && query[j] >= '0' && query[j] <= '9'; j++ {
			n = n*10 + int(query[j]-'0')
		}
		if n > highest {
			highest = n
		}
	}
	return highest
}

func TestSetID(t *testing.T) {
	repo := NewPostgresCompanyRepo(nil)
	c := model.Company{Name: "Acme"}
	repo.def.setID(&c, 42)
	if c.ID != 42 || repo.def.id(c) != 42 {
		t.Errorf("setID/id mismatch: %+v", c)
	}
}

func TestSelectQueries_CoverAllKinds(t *testing.T) {
	kinds := []model.SelectKind{
		model.SelectCompany, model.SelectContact, model.SelectDepartment,
		model.SelectPracticeKind, model.SelectPost, model.SelectPostGo,
		model.SelectRank, model.SelectScope, model.SelectSirenType,
	}
	for _, k := range kinds {
		if _, ok := selectQueries[k]; !ok {
			t.Errorf("no select query for %s", k)
		}
	}
}

func TestNullHelpers(t *testing.T) {
	if nullString("").Valid {
		t.Error("empty string should be NULL")
	}
	if ns := nullString("x"); !ns.Valid || ns.String != "x" {
		t.Errorf("nullString(x) = %+v", ns)
	}
	if nullID(0).Valid {
		t.Error("id 0 should be NULL")
	}
	if n := nullID(7); !n.Valid || n.Int64 != 7 {
		t.Errorf("nullID(7) = %+v", n)
	}
	if nullFloat(0).Valid {
		t.Error("0.0 should be NULL")
	}
}

func TestZeroScanners(t *testing.T) {
	var s string
	if err := (textOrEmpty{&s}).Scan(nil); err != nil || s != "" {
		t.Errorf("textOrEmpty(nil) = %q, %v", s, err)
	}
	if err := (textOrEmpty{&s}).Scan([]byte("hello")); err != nil || s != "hello" {
		t.Errorf("textOrEmpty(hello) = %q, %v", s, err)
	}

	var n int64 = 9
	if err := (intOrZero{&n}).Scan(nil); err != nil || n != 0 {
		t.Errorf("intOrZero(nil) = %d, %v", n, err)
	}
	if err := (intOrZero{&n}).Scan(int64(5)); err != nil || n != 5 {
		t.Errorf("intOrZero(5) = %d, %v", n, err)
	}

	var f float64
	if err := (floatOrZero{&f}).Scan(55.75); err != nil || f != 55.75 {
		t.Errorf("floatOrZero(55.75) = %v, %v", f, err)
	}

	b := true
	if err := (boolOrFalse{&b}).Scan(nil); err != nil || b {
		t.Errorf("boolOrFalse(nil) = %v, %v", b, err)
	}
}
