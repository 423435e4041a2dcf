package api

import (
	"bytes"
	"encoding/json"
)

// List is a decoded collection response. The API answers list requests in
// two shapes: a bare array, or an envelope {"data": [...], "total": n}.
// For the bare shape (and for envelopes without a total) Total is the
// number of items received.
type List[T any] struct {
	Items []T
	Total int
}

func (l *List[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(data, &l.Items); err != nil {
			return err
		}
		l.Total = len(l.Items)
		return nil
	}

	var envelope struct {
		Data  []T `json:"data"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	l.Items = envelope.Data
	l.Total = envelope.Total
	if l.Total == 0 {
		l.Total = len(l.Items)
	}
	return nil
}
