package permission

import (
	"testing"

	"github.com/hitoshi/rpelgate/internal/message"
	"github.com/hitoshi/rpelgate/internal/model"
)

func TestPosition(t *testing.T) {
	want := map[message.CommandKind]uint{
		message.CmdGetItem:    1,
		message.CmdGetList:    2,
		message.CmdInsertItem: 3,
		message.CmdUpdateItem: 4,
		message.CmdDeleteItem: 5,
		message.CmdGetUser:    6,
		message.CmdListUsers:  6,
		message.CmdInsertUser: 7,
		message.CmdUpdateUser: 8,
		message.CmdDeleteUser: 9,
	}
	for _, k := range message.CommandKinds() {
		got, ok := Position(k)
		if !ok {
			t.Errorf("Position(%s) missing", k)
			continue
		}
		if got != want[k] {
			t.Errorf("Position(%s) = %d, want %d", k, got, want[k])
		}
	}
}

func TestAllowed_TruthTable(t *testing.T) {
	for _, k := range message.CommandKinds() {
		p, _ := Position(k)
		for role := int64(0); role < 1<<11; role++ {
			want := role>>p > 0
			if got := Allowed(role, k); got != want {
				t.Fatalf("Allowed(%d, %s) = %v, want %v", role, k, got, want)
			}
		}
	}
}

func TestAllowed_Examples(t *testing.T) {
	tests := []struct {
		name string
		role int64
		kind message.CommandKind
		want bool
	}{
		{"ロール0は全て拒否", 0, message.CmdGetItem, false},
		{"ロール1もGetItemは拒否", 1, message.CmdGetItem, false},
		{"ロール2はGetItemを許可", 2, message.CmdGetItem, true},
		{"ロール2はGetListを拒否", 2, message.CmdGetList, false},
		{"上位ビットは下位の操作も許可", 1 << 9, message.CmdGetItem, true},
		{"ロール63はDeleteItemまで許可", 63, message.CmdDeleteItem, true},
		{"ロール63はGetUserを拒否", 63, message.CmdGetUser, false},
		{"ロール512はDeleteUserを許可", 512, message.CmdDeleteUser, true},
		{"ロール511はDeleteUserを拒否", 511, message.CmdDeleteUser, false},
		{"負のロールは拒否", -1, message.CmdGetItem, false},
		{"未知の種類は拒否", 1 << 20, message.CommandKind("Explode"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.role, tt.kind); got != tt.want {
				t.Errorf("Allowed(%d, %s) = %v, want %v", tt.role, tt.kind, got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	cmd := message.DeleteItem{Ref: message.EntityRef{Name: "Company", ID: 1}}

	got, err := Check(64, cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cmd {
		t.Errorf("Check returned %#v, want the same command", got)
	}

	_, err = Check(31, cmd)
	if !model.HasCode(err, model.ErrCodeNotPermission) {
		t.Errorf("expected NotPermission, got %v", err)
	}

	_, err = Check(1<<20, nil)
	if !model.HasCode(err, model.ErrCodeNotPermission) {
		t.Errorf("expected NotPermission for nil command, got %v", err)
	}
}
