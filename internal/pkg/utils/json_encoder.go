package utils

import (
	"encoding/json"
	"io"
)

func JsonEncode(payload any) []byte {
	bytes, err := json.Marshal(payload)
	if err != nil {
		panic("Error serializing JSON")
	}
	return bytes
}

// JsonDecode reads a single JSON document from body. An empty body yields io.EOF.
func JsonDecode[T any](body io.Reader) (*T, error) {
	var value T
	if err := json.NewDecoder(body).Decode(&value); err != nil {
		return nil, err
	}
	return &value, nil
}

func JsonDecodeByteStream[T any](data []byte) (*T, error) {
	var value T
	err := json.Unmarshal(data, &value)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
