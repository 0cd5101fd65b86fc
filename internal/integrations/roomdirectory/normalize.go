package roomdirectory

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var nullJSON = []byte("null")

// normalizeRooms приводит поле data к списку аудиторий.
// Поддерживаемые формы: массив, одиночный объект (оборачивается в список из одного элемента),
// отсутствие данных (пустой список). Записи, не прошедшие проверку формы, отбрасываются.
// Возвращает список и количество отброшенных записей.
func normalizeRooms(raw json.RawMessage, validate *validator.Validate) ([]Room, int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, nullJSON) {
		return []Room{}, 0, nil
	}

	var rooms []Room
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &rooms); err != nil {
			return nil, 0, fmt.Errorf("%w: decode room list: %v", ErrInvalidResponse, err)
		}
	case '{':
		var room Room
		if err := json.Unmarshal(trimmed, &room); err != nil {
			return nil, 0, fmt.Errorf("%w: decode room: %v", ErrInvalidResponse, err)
		}
		rooms = []Room{room}
	default:
		return nil, 0, fmt.Errorf("%w: unexpected data shape", ErrInvalidResponse)
	}

	valid := make([]Room, 0, len(rooms))
	dropped := 0
	for _, room := range rooms {
		if err := validate.Struct(room); err != nil {
			dropped++
			continue
		}
		valid = append(valid, room)
	}

	return valid, dropped, nil
}
