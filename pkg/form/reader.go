package form

import (
	"fmt"
	"mime/multipart"
	"net/url"
	"sort"
	"strings"

	"github.com/getmockd/mockapi/pkg/value"
)

// ParseURLEncoded parses an application/x-www-form-urlencoded body,
// keeping keys in the order they first appear.
func ParseURLEncoded(body string) ([]Field, error) {
	var fields []Field
	index := make(map[string]int)

	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawVal, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("invalid form key %q: %w", rawKey, err)
		}
		val, err := url.QueryUnescape(rawVal)
		if err != nil {
			return nil, fmt.Errorf("invalid form value for %q: %w", key, err)
		}

		if i, ok := index[key]; ok {
			fields[i].Values = append(fields[i].Values, val)
			continue
		}
		index[key] = len(fields)
		fields = append(fields, Field{Key: key, Values: []string{val}})
	}
	return fields, nil
}

// FromValues converts url.Values into fields sorted by key.
func FromValues(vals url.Values) []Field {
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, Field{Key: k, Values: vals[k]})
	}
	return fields
}

// FromMultipart converts a parsed multipart form. Keys are sorted because
// the standard library does not keep part order.
func FromMultipart(mf *multipart.Form) ([]Field, []FileField) {
	if mf == nil {
		return nil, nil
	}
	fields := FromValues(url.Values(mf.Value))

	keys := make([]string, 0, len(mf.File))
	for k := range mf.File {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	files := make([]FileField, 0, len(keys))
	for _, k := range keys {
		ff := FileField{Key: k}
		for _, fh := range mf.File[k] {
			ff.Files = append(ff.Files, &value.File{
				Filename:    fh.Filename,
				Size:        fh.Size,
				ContentType: fh.Header.Get("Content-Type"),
				Handle:      fh,
			})
		}
		files = append(files, ff)
	}
	return fields, files
}
