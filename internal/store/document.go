package store

import (
	"encoding/json"
	"fmt"

	"github.com/zaqqye/smart_timetable/internal/apperr"
)

// document is the whole-document read / mutate / overwrite cycle shared by
// both stores.
type document[T any] struct {
	backend Backend
	key     string
	empty   func() T
}

func (d document[T]) load() (T, error) {
	v := d.empty()
	data, ok, err := d.backend.Load(d.key)
	if err != nil || !ok {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, apperr.Corrupt(d.key, err)
	}
	return v, nil
}

func (d document[T]) save(v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.key, err)
	}
	return d.backend.Save(d.key, data)
}

// with loads the document, hands it to fn and writes it back unless fn
// fails. A lock around this span is all a multi-writer setup would need.
func (d document[T]) with(fn func(*T) error) error {
	v, err := d.load()
	if err != nil {
		return err
	}
	if err := fn(&v); err != nil {
		return err
	}
	return d.save(v)
}
