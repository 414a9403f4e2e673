package synth

import (
	"errors"
	"math"
	"strings"

	"github.com/getmockd/mockapi/pkg/fake"
	"github.com/getmockd/mockapi/pkg/random"
	"github.com/getmockd/mockapi/pkg/value"
)

// Generation template keys.
const (
	KeyLocale = "locale"
	KeyCount  = "count"
)

// LiteralSuffix marks a template string that must be returned as written
// rather than looked up as a generator name.
const LiteralSuffix = ".unGen"

// MaxCount bounds the number of generated items per response.
const MaxCount = 100_000

var errNotRange = errors.New("not a numeric range")

// generate expands a generate_response spec into a list of objects.
func (s *Synthesizer) generate(gen value.Value) (value.Value, error) {
	spec := gen.Object()
	if spec == nil {
		return value.Null(), genErr("%s must be an object, got %s", KeyGenerate, gen.Kind())
	}

	locale, ok := spec.Get(KeyLocale)
	if !ok {
		return value.Null(), genErr("%s.%s is required", KeyGenerate, KeyLocale)
	}
	countSpec, ok := spec.Get(KeyCount)
	if !ok {
		return value.Null(), genErr("%s.%s is required", KeyGenerate, KeyCount)
	}
	count, err := s.count(countSpec)
	if err != nil {
		return value.Null(), err
	}

	tmpl, ok := spec.Get(KeyResponse)
	if !ok {
		tmpl = value.NewObject()
	}
	templates := normalizeTemplates(tmpl)
	if count > 0 && len(templates) == 0 {
		return value.Null(), genErr("%s.%s has no templates", KeyGenerate, KeyResponse)
	}

	// An unusable locale only disables generator names; literals and
	// numeric ranges still resolve.
	var faker *fake.Faker
	if name, isStr := locale.AsString(); isStr {
		faker, err = fake.New(name, s.src)
		if err != nil {
			s.log.Warn("fake data disabled", "locale", name, "error", err)
		}
	} else {
		s.log.Warn("fake data disabled", "locale", value.Format(locale), "error", "locale must be a string")
	}

	items := make([]value.Value, 0, count)
	for i := 0; i < count; i++ {
		t := templates[0]
		if len(templates) > 1 {
			t = templates[random.Choice(s.src, len(templates))]
		}

		item := value.NewObject()
		obj := t.Object()
		for _, key := range obj.Keys() {
			field, _ := obj.Get(key)
			item.Object().Set(key, s.resolveField(field, faker))
		}
		items = append(items, item)
	}
	return value.NewArray(items...), nil
}

// count reads an integer count or draws one from an inclusive [min, max]
// pair. Negative counts produce no items.
func (s *Synthesizer) count(v value.Value) (int, error) {
	var n int64
	if i, ok := v.AsInt(); ok {
		n = i
	} else if arr := v.Array(); arr != nil && arr.Len() == 2 {
		lo, okLo := arr.At(0).AsInt()
		hi, okHi := arr.At(1).AsInt()
		if !okLo || !okHi {
			return 0, genErr("%s range must hold two integers, got %s", KeyCount, value.Format(v))
		}
		drawn, err := random.IntBetween(s.src, lo, hi)
		if err != nil {
			return 0, genErr("%s range %s: %w", KeyCount, value.Format(v), err)
		}
		n = drawn
	} else {
		return 0, genErr("%s must be an integer or [min, max], got %s", KeyCount, value.Format(v))
	}

	if n > MaxCount {
		return 0, genErr("%s %d exceeds the limit of %d", KeyCount, n, MaxCount)
	}
	return int(max(n, 0)), nil
}

// normalizeTemplates turns the template value into a list of objects.
// Non-object entries are wrapped as {"value": entry}.
func normalizeTemplates(tmpl value.Value) []value.Value {
	wrap := func(v value.Value) value.Value {
		if v.Object() != nil {
			return v
		}
		out := value.NewObject()
		out.Object().Set("value", v)
		return out
	}

	if arr := tmpl.Array(); arr != nil {
		out := make([]value.Value, arr.Len())
		for i, it := range arr.Items() {
			out[i] = wrap(it)
		}
		return out
	}
	return []value.Value{wrap(tmpl)}
}

// resolveField expands one template value. Failures fall back to the
// template value itself.
func (s *Synthesizer) resolveField(tmpl value.Value, faker *fake.Faker) value.Value {
	out, err := s.expand(tmpl, faker)
	if err != nil {
		s.log.Debug("template value kept literal", "value", value.Format(tmpl), "error", err)
		return tmpl.Clone()
	}
	return out
}

func (s *Synthesizer) expand(tmpl value.Value, faker *fake.Faker) (value.Value, error) {
	if str, ok := tmpl.AsString(); ok {
		if lit, found := strings.CutSuffix(str, LiteralSuffix); found {
			return value.String(lit), nil
		}
		if faker != nil && fake.Has(str) {
			return faker.Generate(str)
		}
		return tmpl, nil
	}

	arr := tmpl.Array()
	if arr == nil {
		return tmpl.Clone(), nil
	}
	switch arr.Len() {
	case 2:
		lo, okLo := arr.At(0).AsInt()
		hi, okHi := arr.At(1).AsInt()
		if !okLo || !okHi {
			return value.Null(), errNotRange
		}
		n, err := random.IntBetween(s.src, lo, hi)
		if err != nil {
			return value.Null(), err
		}
		return value.Int(n), nil
	case 3:
		a, okA := numeric(arr.At(0))
		b, okB := numeric(arr.At(1))
		prec, okP := arr.At(2).AsInt()
		if !okA || !okB || !okP {
			return value.Null(), errNotRange
		}
		return value.Float(roundTo(random.Uniform(s.src, a, b), int(prec))), nil
	}
	return tmpl.Clone(), nil
}

func numeric(v value.Value) (float64, bool) {
	if v.Kind() != value.KindInt && v.Kind() != value.KindFloat {
		return 0, false
	}
	return v.Number()
}

// roundTo rounds x to prec decimals. A negative precision rounds to tens,
// hundreds and so on.
func roundTo(x float64, prec int) float64 {
	if prec >= 0 {
		return random.Round(x, prec)
	}
	pow := math.Pow(10, float64(-prec))
	if math.IsInf(pow, 0) {
		return 0
	}
	return math.RoundToEven(x/pow) * pow
}
