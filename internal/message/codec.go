package message

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hitoshi/rpelgate/internal/model"
)

// splitTagged は外部タグ付き表現を(タグ, 本体)に分解する。
// 単位バリアントは "Tag"、値を持つバリアントは {"Tag": 本体} の形をとる。
// 単位バリアントの場合、本体はnilになる。
func splitTagged(data []byte) (string, json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", nil, fmt.Errorf("empty tagged value")
	}

	if data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return "", nil, fmt.Errorf("invalid unit variant: %w", err)
		}
		return tag, nil, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, fmt.Errorf("tagged value must be a string or an object: %w", err)
	}
	if len(obj) != 1 {
		return "", nil, fmt.Errorf("tagged value must have exactly one key, got %d", len(obj))
	}
	for tag, body := range obj {
		return tag, body, nil
	}
	return "", nil, nil
}

// decodeBody は値を持つバリアントの本体をTにデコードする。
func decodeBody[T any](tag string, body json.RawMessage) (T, error) {
	var v T
	if body == nil {
		return v, fmt.Errorf("variant %s requires a value", tag)
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("invalid %s: %w", tag, err)
	}
	return v, nil
}

// payloadDecoder はペイロード1種類分のデコーダ。
type payloadDecoder func(tag string, body json.RawMessage) (Payload, error)

func item[T any](wrap func(T) Payload) payloadDecoder {
	return func(tag string, body json.RawMessage) (Payload, error) {
		v, err := decodeBody[T](tag, body)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	}
}

// payloadDecoders はワイヤ上のタグからペイロードへの変換表。
// 文字列によるディスパッチはこのシリアライズ境界に閉じ込める。
var payloadDecoders = map[string]payloadDecoder{
	"Null": func(tag string, body json.RawMessage) (Payload, error) { return Null{}, nil },
	"Id":   item(func(v int64) Payload { return ID{Value: v} }),

	"Certificate": item(func(v model.Certificate) Payload { return Certificate{Item: v} }),
	"Company":     item(func(v model.Company) Payload { return Company{Item: v} }),
	"Contact":     item(func(v model.Contact) Payload { return Contact{Item: v} }),
	"Department":  item(func(v model.Department) Payload { return Department{Item: v} }),
	"Education":   item(func(v model.Education) Payload { return Education{Item: v} }),
	"Kind":        item(func(v model.Kind) Payload { return Kind{Item: v} }),
	"Post":        item(func(v model.Post) Payload { return Post{Item: v} }),
	"Practice":    item(func(v model.Practice) Payload { return Practice{Item: v} }),
	"Rank":        item(func(v model.Rank) Payload { return Rank{Item: v} }),
	"Scope":       item(func(v model.Scope) Payload { return Scope{Item: v} }),
	"Siren":       item(func(v model.Siren) Payload { return Siren{Item: v} }),
	"SirenType":   item(func(v model.SirenType) Payload { return SirenType{Item: v} }),
	"User":        item(func(v model.User) Payload { return User{Item: v} }),

	"CertificateList": item(func(v []model.CertificateList) Payload { return CertificateList{Items: v} }),
	"CompanyList":     item(func(v []model.CompanyList) Payload { return CompanyList{Items: v} }),
	"ContactList":     item(func(v []model.ContactList) Payload { return ContactList{Items: v} }),
	"DepartmentList":  item(func(v []model.DepartmentList) Payload { return DepartmentList{Items: v} }),
	"EducationList":   item(func(v []model.EducationList) Payload { return EducationList{Items: v} }),
	"EducationShort":  item(func(v []model.EducationShort) Payload { return EducationShort{Items: v} }),
	"KindList":        item(func(v []model.KindList) Payload { return KindList{Items: v} }),
	"PostList":        item(func(v []model.PostList) Payload { return PostList{Items: v} }),
	"PracticeList":    item(func(v []model.PracticeList) Payload { return PracticeList{Items: v} }),
	"PracticeShort":   item(func(v []model.PracticeShort) Payload { return PracticeShort{Items: v} }),
	"RankList":        item(func(v []model.RankList) Payload { return RankList{Items: v} }),
	"ScopeList":       item(func(v []model.ScopeList) Payload { return ScopeList{Items: v} }),
	"SelectItem":      item(func(v []model.SelectItem) Payload { return SelectItem{Items: v} }),
	"SirenList":       item(func(v []model.SirenList) Payload { return SirenList{Items: v} }),
	"SirenTypeList":   item(func(v []model.SirenTypeList) Payload { return SirenTypeList{Items: v} }),
	"UserList":        item(func(v []model.UserList) Payload { return UserList{Items: v} }),
}

// MarshalPayload はペイロードを外部タグ付きJSONにエンコードする。
// nilはNullとして扱う。
func MarshalPayload(p Payload) ([]byte, error) {
	if p == nil {
		p = Null{}
	}
	if _, ok := p.(Null); ok {
		return json.Marshal(p.Name())
	}
	return json.Marshal(map[string]any{p.Name(): p.value()})
}

// UnmarshalPayload は外部タグ付きJSONからペイロードをデコードする。
func UnmarshalPayload(data []byte) (Payload, error) {
	tag, body, err := splitTagged(data)
	if err != nil {
		return nil, err
	}
	decode, ok := payloadDecoders[tag]
	if !ok {
		return nil, fmt.Errorf("unknown payload variant %q", tag)
	}
	return decode(tag, body)
}

// decodeCommand は外部タグ付きJSONからコマンドをデコードする。
func decodeCommand(data []byte) (Command, error) {
	tag, body, err := splitTagged(data)
	if err != nil {
		return nil, err
	}

	switch CommandKind(tag) {
	case CmdGetItem:
		ref, err := decodeBody[EntityRef](tag, body)
		if err != nil {
			return nil, err
		}
		return GetItem{Ref: ref}, nil
	case CmdGetList:
		name, err := decodeBody[string](tag, body)
		if err != nil {
			return nil, err
		}
		return GetList{Name: name}, nil
	case CmdInsertItem, CmdUpdateItem:
		if body == nil {
			return nil, fmt.Errorf("variant %s requires a value", tag)
		}
		p, err := UnmarshalPayload(body)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", tag, err)
		}
		if CommandKind(tag) == CmdInsertItem {
			return InsertItem{Payload: p}, nil
		}
		return UpdateItem{Payload: p}, nil
	case CmdDeleteItem:
		ref, err := decodeBody[EntityRef](tag, body)
		if err != nil {
			return nil, err
		}
		return DeleteItem{Ref: ref}, nil
	case "User":
		if body == nil {
			return nil, fmt.Errorf("variant User requires a value")
		}
		op, err := decodeUserCommand(body)
		if err != nil {
			return nil, err
		}
		return UserOp{Op: op}, nil
	default:
		return nil, fmt.Errorf("unknown command variant %q", tag)
	}
}

func decodeUserCommand(data []byte) (UserCommand, error) {
	tag, body, err := splitTagged(data)
	if err != nil {
		return nil, err
	}

	switch CommandKind(tag) {
	case CmdGetUser:
		id, err := decodeBody[int64](tag, body)
		if err != nil {
			return nil, err
		}
		return GetUser{ID: id}, nil
	case CmdListUsers:
		return ListUsers{}, nil
	case CmdInsertUser:
		u, err := decodeBody[model.User](tag, body)
		if err != nil {
			return nil, err
		}
		return InsertUser{User: u}, nil
	case CmdUpdateUser:
		u, err := decodeBody[model.User](tag, body)
		if err != nil {
			return nil, err
		}
		return UpdateUser{User: u}, nil
	case CmdDeleteUser:
		id, err := decodeBody[int64](tag, body)
		if err != nil {
			return nil, err
		}
		return DeleteUser{ID: id}, nil
	default:
		return nil, fmt.Errorf("unknown user command variant %q", tag)
	}
}

// encodeCommand はコマンドを外部タグ付き表現の値に変換する。
func encodeCommand(c Command) (any, error) {
	switch c := c.(type) {
	case GetItem:
		return map[string]any{string(CmdGetItem): c.Ref}, nil
	case GetList:
		return map[string]any{string(CmdGetList): c.Name}, nil
	case InsertItem:
		p, err := MarshalPayload(c.Payload)
		if err != nil {
			return nil, err
		}
		return map[string]json.RawMessage{string(CmdInsertItem): p}, nil
	case UpdateItem:
		p, err := MarshalPayload(c.Payload)
		if err != nil {
			return nil, err
		}
		return map[string]json.RawMessage{string(CmdUpdateItem): p}, nil
	case DeleteItem:
		return map[string]any{string(CmdDeleteItem): c.Ref}, nil
	case UserOp:
		var op any
		switch o := c.Op.(type) {
		case GetUser:
			op = map[string]int64{string(CmdGetUser): o.ID}
		case nil, ListUsers:
			op = string(CmdListUsers)
		case InsertUser:
			op = map[string]model.User{string(CmdInsertUser): o.User}
		case UpdateUser:
			op = map[string]model.User{string(CmdUpdateUser): o.User}
		case DeleteUser:
			op = map[string]int64{string(CmdDeleteUser): o.ID}
		default:
			return nil, fmt.Errorf("unsupported user command %T", o)
		}
		return map[string]any{"User": op}, nil
	default:
		return nil, fmt.Errorf("unsupported command %T", c)
	}
}

type clientMessageJSON struct {
	Command json.RawMessage `json:"command"`
	Addon   string          `json:"addon"`
}

// UnmarshalJSON は {"command": <Command>, "addon": "<token>"} をデコードする。
func (m *ClientMessage) UnmarshalJSON(data []byte) error {
	var raw clientMessageJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Command) == 0 || string(raw.Command) == "null" {
		return fmt.Errorf("command is required")
	}
	cmd, err := decodeCommand(raw.Command)
	if err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}
	m.Command = cmd
	m.Addon = raw.Addon
	return nil
}

// MarshalJSON はClientMessageをワイヤ形式にエンコードする。
func (m ClientMessage) MarshalJSON() ([]byte, error) {
	cmd, err := encodeCommand(m.Command)
	if err != nil {
		return nil, err
	}
	c, err := json.Marshal(cmd)
	if err != nil {
		return nil, err
	}
	return json.Marshal(clientMessageJSON{Command: c, Addon: m.Addon})
}
