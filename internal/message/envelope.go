package message

import (
	"encoding/json"
	"fmt"
)

// Envelope はコマンドルートの統一応答。
// 失敗時はObjectがNull、Errorにエラー文字列が入る。
// Nameはユーザー管理操作の応答では空になり、JSONでは省略される。
type Envelope struct {
	Command string
	Name    string
	Object  Payload
	Error   string
}

// Success は成功応答を生成する。
func Success(kind CommandKind, name string, object Payload) Envelope {
	if object == nil {
		object = Null{}
	}
	return Envelope{Command: string(kind), Name: name, Object: object}
}

// Failure は失敗応答を生成する。
func Failure(kind CommandKind, name string, err error) Envelope {
	return Envelope{Command: string(kind), Name: name, Object: Null{}, Error: err.Error()}
}

// OK はエラーを含まない応答かを返す。
func (e Envelope) OK() bool { return e.Error == "" }

type envelopeJSON struct {
	Command string          `json:"command"`
	Name    string          `json:"name,omitempty"`
	Object  json.RawMessage `json:"object"`
	Error   string          `json:"error"`
}

// MarshalJSON はエンベロープをワイヤ形式にエンコードする。
func (e Envelope) MarshalJSON() ([]byte, error) {
	obj, err := MarshalPayload(e.Object)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", e.Command, err)
	}
	return json.Marshal(envelopeJSON{
		Command: e.Command,
		Name:    e.Name,
		Object:  obj,
		Error:   e.Error,
	})
}

// UnmarshalJSON はワイヤ形式のエンベロープをデコードする。
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var raw envelopeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var obj Payload = Null{}
	if len(raw.Object) > 0 && string(raw.Object) != "null" {
		p, err := UnmarshalPayload(raw.Object)
		if err != nil {
			return fmt.Errorf("unmarshal object: %w", err)
		}
		obj = p
	}
	*e = Envelope{Command: raw.Command, Name: raw.Name, Object: obj, Error: raw.Error}
	return nil
}
