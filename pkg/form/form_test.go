package form

import (
	"mime/multipart"
	"net/textproto"
	"net/url"
	"reflect"
	"testing"

	"github.com/getmockd/mockapi/pkg/value"
)

func encode(t *testing.T, v value.Value) string {
	t.Helper()
	b, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	return string(b)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"a", []string{"a"}},
		{"a[b][0][c]", []string{"a", "b", "0", "c"}},
		{"a.b.0.c", []string{"a", "b", "0", "c"}},
		{"a[b].c", []string{"a", "b", "c"}},
		{"a..b", []string{"a", "b"}},
		{"items[]", []string{"items"}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := ParseKey(tt.key); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		want   string
	}{
		{
			name:   "flat scalar parsed as json",
			fields: []Field{{Key: "id", Values: []string{"5"}}},
			want:   `{"id":5}`,
		},
		{
			name:   "raw string fallback",
			fields: []Field{{Key: "name", Values: []string{"bob"}}},
			want:   `{"name":"bob"}`,
		},
		{
			name:   "multi value stays raw",
			fields: []Field{{Key: "tags", Values: []string{"1", "b"}}},
			want:   `{"tags":["1","b"]}`,
		},
		{
			name:   "nested object",
			fields: []Field{{Key: "user[address][city]", Values: []string{"Oslo"}}},
			want:   `{"user":{"address":{"city":"Oslo"}}}`,
		},
		{
			name:   "numeric key on object is a string key",
			fields: []Field{{Key: "user.0.name", Values: []string{"a"}}},
			want:   `{"user":{"0":{"name":"a"}}}`,
		},
		{
			name: "array padding keeps order",
			fields: []Field{
				{Key: "list", Values: []string{"[]"}},
				{Key: "list[2]", Values: []string{"c"}},
				{Key: "list[0]", Values: []string{"a"}},
			},
			want: `{"list":["a",{},"c"]}`,
		},
		{
			name: "named key on array uses index 0 object",
			fields: []Field{
				{Key: "list", Values: []string{"[1,2]"}},
				{Key: "list.meta", Values: []string{"x"}},
			},
			want: `{"list":[{"meta":"x"},1,2]}`,
		},
		{
			name: "named key reuses existing index 0 object",
			fields: []Field{
				{Key: "list", Values: []string{`[{"a":1}]`}},
				{Key: "list[b]", Values: []string{"2"}},
			},
			want: `{"list":[{"a":1,"b":2}]}`,
		},
		{
			name: "scalar replaced when descending",
			fields: []Field{
				{Key: "a", Values: []string{"1"}},
				{Key: "a.b", Values: []string{"2"}},
			},
			want: `{"a":{"b":2}}`,
		},
		{
			name: "nested array element container",
			fields: []Field{
				{Key: "rows", Values: []string{"[]"}},
				{Key: "rows[1][name]", Values: []string{"z"}},
			},
			want: `{"rows":[{},{"name":"z"}]}`,
		},
		{
			name:   "empty value list is skipped",
			fields: []Field{{Key: "x"}},
			want:   `{}`,
		},
		{
			name: "huge index is dropped",
			fields: []Field{
				{Key: "list", Values: []string{"[]"}},
				{Key: "list[99999999]", Values: []string{"x"}},
			},
			want: `{"list":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encode(t, Decode(tt.fields, nil)); got != tt.want {
				t.Errorf("Decode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPlace_ScalarTargetDropsAssignment(t *testing.T) {
	root := value.NewObject()
	root.Object().Set("a", value.NewArray(value.Int(1)))

	got := Place(value.Int(7), []string{"x"}, value.String("y"))
	if n, ok := got.AsInt(); !ok || n != 7 {
		t.Errorf("Place() on scalar root = %s, want 7", encode(t, got))
	}

	Place(root, []string{"a", "0", "b"}, value.String("c"))
	if want := `{"a":[{"b":"c"}]}`; encode(t, root) != want {
		t.Errorf("Place() = %s, want %s", encode(t, root), want)
	}
}

func TestDecode_Files(t *testing.T) {
	one := &value.File{Filename: "a.txt", Size: 3, ContentType: "text/plain"}
	two := &value.File{Filename: "b.txt", Size: 4, ContentType: "text/plain"}

	got := Decode(
		[]Field{{Key: "doc[title]", Values: []string{"t"}}},
		[]FileField{
			{Key: "doc[file]", Files: []*value.File{one}},
			{Key: "attachments", Files: []*value.File{one, two}},
		},
	)

	doc, _ := got.Object().Get("doc")
	f, _ := doc.Object().Get("file")
	if fh, ok := f.AsFile(); !ok || fh != one {
		t.Errorf("doc.file = %v, want the uploaded handle", f)
	}
	att, _ := got.Object().Get("attachments")
	if att.Array() == nil || att.Array().Len() != 2 {
		t.Fatalf("attachments = %s, want array of 2", encode(t, att))
	}
}

func TestParseURLEncoded(t *testing.T) {
	fields, err := ParseURLEncoded("b=2&a=1&b=3&c%5Bd%5D=x+y&empty=")
	if err != nil {
		t.Fatalf("ParseURLEncoded() error = %v", err)
	}
	want := []Field{
		{Key: "b", Values: []string{"2", "3"}},
		{Key: "a", Values: []string{"1"}},
		{Key: "c[d]", Values: []string{"x y"}},
		{Key: "empty", Values: []string{""}},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("ParseURLEncoded() = %v, want %v", fields, want)
	}

	if _, err := ParseURLEncoded("a=%zz"); err == nil {
		t.Error("ParseURLEncoded() expected error for bad escape")
	}
}

func TestFromValues_Sorted(t *testing.T) {
	got := FromValues(url.Values{"z": {"1"}, "a": {"2"}})
	if len(got) != 2 || got[0].Key != "a" || got[1].Key != "z" {
		t.Errorf("FromValues() = %v", got)
	}
}

func TestFromMultipart(t *testing.T) {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", "image/png")
	mf := &multipart.Form{
		Value: map[string][]string{"name": {"x"}},
		File: map[string][]*multipart.FileHeader{
			"avatar": {{Filename: "me.png", Size: 10, Header: header}},
		},
	}

	fields, files := FromMultipart(mf)
	if len(fields) != 1 || fields[0].Key != "name" {
		t.Errorf("fields = %v", fields)
	}
	if len(files) != 1 || files[0].Files[0].ContentType != "image/png" {
		t.Errorf("files = %v", files)
	}

	if f, fl := FromMultipart(nil); f != nil || fl != nil {
		t.Error("FromMultipart(nil) should return nils")
	}
}
