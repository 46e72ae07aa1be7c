package store

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// StorageKey is the storage key holding the persisted record.
const StorageKey = "kitty-conf-state"

// ErrCorruptRecord indicates the persisted record is not a JSON object.
var ErrCorruptRecord = errors.New("corrupt persisted record")

// encodeRecord renders entries as a JSON object. Keys keep the order of
// entries, which is catalog declaration order.
func encodeRecord(entries []Entry) (string, error) {
	doc := "{}"
	for _, e := range entries {
		var err error
		doc, err = sjson.Set(doc, escapePath(e.Key), e.Value)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

// decodeRecord parses a persisted record into key/value pairs in document
// order. Non-scalar values are skipped.
func decodeRecord(doc string) ([]Entry, error) {
	if !gjson.Valid(doc) {
		return nil, ErrCorruptRecord
	}
	root := gjson.Parse(doc)
	if !root.IsObject() {
		return nil, ErrCorruptRecord
	}

	var entries []Entry
	root.ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.String:
			entries = append(entries, Entry{Key: key.String(), Value: value.String()})
		case gjson.Number, gjson.True, gjson.False:
			// Raw keeps a hand-written number such as 14.50 as typed.
			entries = append(entries, Entry{Key: key.String(), Value: value.Raw})
		}
		return true
	})
	return entries, nil
}

// escapePath escapes gjson/sjson path metacharacters so key is addressed
// literally.
func escapePath(key string) string {
	if !strings.ContainsAny(key, `.*?|#@\!=<>%:"`) {
		return key
	}
	var b strings.Builder
	for _, r := range key {
		if strings.ContainsRune(`.*?|#@\!=<>%:"`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
