package value

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, s string) Value {
	t.Helper()
	v, err := ParseString(s)
	if err != nil {
		t.Fatalf("ParseString(%q) error = %v", s, err)
	}
	return v
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`null`, false},
		{`false`, false},
		{`true`, true},
		{`0`, false},
		{`0.0`, false},
		{`3`, true},
		{`""`, false},
		{`"x"`, true},
		{`[]`, false},
		{`[0]`, true},
		{`{}`, false},
		{`{"a":null}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := mustParse(t, tt.input).Truthy(); got != tt.want {
				t.Errorf("Truthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"int float", `1`, `1.0`, true},
		{"bool int", `true`, `1`, true},
		{"string number", `"1"`, `1`, false},
		{"arrays", `[1,"a"]`, `[1,"a"]`, true},
		{"arrays differ", `[1,"a"]`, `["a",1]`, false},
		{"objects ignore order", `{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{"objects differ", `{"a":1}`, `{"a":2}`, false},
		{"nulls", `null`, `null`, true},
		{"null vs zero", `null`, `0`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(mustParse(t, tt.a), mustParse(t, tt.b)); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		want    int
		wantErr bool
	}{
		{"ints", `1`, `2`, -1, false},
		{"int float", `2`, `1.5`, 1, false},
		{"bool int", `true`, `1`, 0, false},
		{"strings", `"b"`, `"a"`, 1, false},
		{"arrays", `[1,2]`, `[1,3]`, -1, false},
		{"array prefix", `[1]`, `[1,0]`, -1, false},
		{"string vs int", `"a"`, `1`, 0, true},
		{"objects", `{}`, `{}`, 0, true},
		{"null", `null`, `1`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(mustParse(t, tt.a), mustParse(t, tt.b))
			if tt.wantErr {
				if !errors.Is(err, ErrUnorderable) {
					t.Errorf("Compare() error = %v, want ErrUnorderable", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLen(t *testing.T) {
	if n, ok := Len(String("héllo")); !ok || n != 5 {
		t.Errorf("Len(héllo) = %d, %v", n, ok)
	}
	if n, ok := Len(mustParse(t, `[1,2,3]`)); !ok || n != 3 {
		t.Errorf("Len(array) = %d, %v", n, ok)
	}
	if _, ok := Len(Int(3)); ok {
		t.Error("Len(int) should not have a length")
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		input   Value
		want    float64
		wantErr bool
	}{
		{Int(3), 3, false},
		{Float(0.25), 0.25, false},
		{Bool(true), 1, false},
		{String(" 0.5 "), 0.5, false},
		{String("abc"), 0, true},
		{Null(), 0, true},
	}

	for _, tt := range tests {
		got, err := ToFloat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ToFloat(%s) error = %v, wantErr %v", Format(tt.input), err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ToFloat(%s) = %v, want %v", Format(tt.input), got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input Value
		want  string
	}{
		{String("plain"), "plain"},
		{Int(5), "5"},
		{Float(5), "5.0"},
		{Null(), "null"},
		{NewArray(String("a"), Int(1)), `["a",1]`},
	}
	for _, tt := range tests {
		if got := Format(tt.input); got != tt.want {
			t.Errorf("Format() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseYAML(t *testing.T) {
	v, err := ParseYAML([]byte(`
- path: /ping
  method: [GET, HEAD]
  status: 200
  delay: 0.5
  shuffle: true
  response: {b: 1, a: null}
`))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}

	got, _ := v.MarshalJSON()
	want := `[{"path":"/ping","method":["GET","HEAD"],"status":200,"delay":0.5,"shuffle":true,"response":{"b":1,"a":null}}]`
	if string(got) != want {
		t.Errorf("ParseYAML() = %s\nwant %s", got, want)
	}
}
