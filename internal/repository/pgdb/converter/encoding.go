package converter

import "encoding/json"

// Списки испытаний строки корзины хранятся как JSON-массивы в текстовых
// колонках. Пустой текст читается как пустой список.

func EncodeIDs(ids []int64) (string, error) {
	if ids == nil {
		ids = []int64{}
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func DecodeIDs(raw string) ([]int64, error) {
	if raw == "" {
		return []int64{}, nil
	}

	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}

	return ids, nil
}

func EncodeNames(names []string) (string, error) {
	if names == nil {
		names = []string{}
	}

	raw, err := json.Marshal(names)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func DecodeNames(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, err
	}

	return names, nil
}
