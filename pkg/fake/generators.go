package fake

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/getmockd/mockapi/pkg/value"
)

type generator func(f *Faker) value.Value

func str(fn func(f *Faker) string) generator {
	return func(f *Faker) value.Value { return value.String(fn(f)) }
}

var generators = map[string]generator{
	// Person
	"name":            str((*Faker).name),
	"first_name":      str(func(f *Faker) string { return f.pick(f.data.firstNames) }),
	"last_name":       str(func(f *Faker) string { return f.pick(f.data.lastNames) }),
	"user_name":       str((*Faker).userName),
	"email":           str((*Faker).email),
	"safe_email":      str(func(f *Faker) string { return f.userName() + "@example." + f.pick([]string{"com", "org", "net"}) }),
	"phone_number":    str(func(f *Faker) string { return f.digits(f.pick(f.data.phoneFormats)) }),
	"job":             str((*Faker).job),
	"ssn":             str((*Faker).ssn),
	"passport_number": str((*Faker).passport),

	// Address
	"address":        str((*Faker).address),
	"street_address": str(func(f *Faker) string { return strconv.Itoa(f.between(1, 9999)) + " " + f.pick(f.data.streets) }),
	"street_name":    str(func(f *Faker) string { return f.pick(f.data.streets) }),
	"city":           str(func(f *Faker) string { return f.pick(f.data.cities) }),
	"country":        str(func(f *Faker) string { return f.pick(f.data.countries) }),
	"country_code":   str(func(f *Faker) string { return f.data.countryCode }),
	"postcode":       str(func(f *Faker) string { return f.digits(f.data.postcodeFormat) }),
	"zipcode":        str(func(f *Faker) string { return f.digits(f.data.postcodeFormat) }),
	"latitude":       func(f *Faker) value.Value { return value.Float(f.coordinate(90)) },
	"longitude":      func(f *Faker) value.Value { return value.Float(f.coordinate(180)) },

	// Company
	"company":        str((*Faker).company),
	"company_suffix": str(func(f *Faker) string { return f.pick(f.data.companySuffixes) }),
	"catch_phrase":   str((*Faker).catchPhrase),

	// Internet
	"domain_name": str((*Faker).domainName),
	"tld":         str(func(f *Faker) string { return f.pick(topLevelDomains) }),
	"url":         str((*Faker).url),
	"slug":        str(func(f *Faker) string { return f.pick(f.asciiWords()) + "-" + f.pick(f.asciiWords()) }),
	"ipv4":        str((*Faker).ipv4),
	"ipv6":        str((*Faker).ipv6),
	"mac_address": str((*Faker).macAddress),
	"user_agent":  str(func(f *Faker) string { return f.pick(userAgents) }),

	// Finance
	"credit_card_number": str((*Faker).creditCard),
	"currency_code":      str(func(f *Faker) string { return f.pick(currencyCodes) }),
	"iban":               str((*Faker).iban),
	"pricetag":           str(func(f *Faker) string { return fmt.Sprintf("$%d.%02d", f.between(1, 999), f.intn(100)) }),

	// Commerce
	"color_name":   str(func(f *Faker) string { return f.pick(colorNames) }),
	"hex_color":    str(func(f *Faker) string { return fmt.Sprintf("#%06x", f.intn(1<<24)) }),
	"product_name": str((*Faker).productName),

	// Text
	"word":      str(func(f *Faker) string { return f.pick(f.data.words) }),
	"sentence":  str(func(f *Faker) string { return f.sentence(f.between(4, 9)) }),
	"paragraph": str(func(f *Faker) string { return f.paragraph(f.between(3, 5)) }),
	"text":      str(func(f *Faker) string { return f.paragraph(f.between(2, 4)) }),

	// Dates
	"date":        str(func(f *Faker) string { return f.dateTime().Format(time.DateOnly) }),
	"date_time":   str(func(f *Faker) string { return f.dateTime().Format(time.DateTime) }),
	"iso8601":     str(func(f *Faker) string { return f.dateTime().Format("2006-01-02T15:04:05") }),
	"time":        str(func(f *Faker) string { return f.dateTime().Format(time.TimeOnly) }),
	"year":        str(func(f *Faker) string { return strconv.Itoa(f.dateTime().Year()) }),
	"month":       str(func(f *Faker) string { return fmt.Sprintf("%02d", int(f.dateTime().Month())) }),
	"day_of_week": str(func(f *Faker) string { return f.dateTime().Weekday().String() }),
	"unix_time":   func(f *Faker) value.Value { return value.Int(f.dateTime().Unix()) },

	// Files
	"mime_type":      str(func(f *Faker) string { return f.pick(mimeTypes) }),
	"file_extension": str(func(f *Faker) string { return f.pick(fileExtensions) }),
	"file_name":      str(func(f *Faker) string { return f.pick(f.asciiWords()) + "." + f.pick(fileExtensions) }),

	// Primitives
	"uuid4":        str((*Faker).uuid4),
	"boolean":      func(f *Faker) value.Value { return value.Bool(f.intn(2) == 1) },
	"pybool":       func(f *Faker) value.Value { return value.Bool(f.intn(2) == 1) },
	"pyint":        func(f *Faker) value.Value { return value.Int(int64(f.intn(10000))) },
	"random_digit": func(f *Faker) value.Value { return value.Int(int64(f.intn(10))) },
	"random_int":   func(f *Faker) value.Value { return value.Int(int64(f.intn(10000))) },
	"pyfloat": func(f *Faker) value.Value {
		return value.Float(float64(f.intn(20000)-10000) + float64(f.intn(100))/100)
	},
	"pystr": str(func(f *Faker) string {
		var sb strings.Builder
		for i := 0; i < 20; i++ {
			sb.WriteByte(byte('a' + f.intn(26)))
		}
		return sb.String()
	}),
}

// =============================================================================
// Person
// =============================================================================

func (f *Faker) name() string {
	return f.pick(f.data.firstNames) + " " + f.pick(f.data.lastNames)
}

func (f *Faker) userName() string {
	first := ascii(f.pick(f.data.firstNames))
	last := ascii(f.pick(f.data.lastNames))
	switch f.intn(3) {
	case 0:
		return first + "." + last
	case 1:
		return first + strconv.Itoa(f.intn(100))
	default:
		return first[:1] + last
	}
}

func (f *Faker) email() string {
	return f.userName() + "@" + f.pick(f.data.emailDomains)
}

func (f *Faker) job() string {
	return f.pick(jobLevels) + " " + f.pick(jobFields) + " " + f.pick(jobRoles)
}

// ssn returns a number in ###-##-#### form.
func (f *Faker) ssn() string {
	return fmt.Sprintf("%03d-%02d-%04d", f.between(100, 898), f.between(1, 99), f.between(1, 9999))
}

// passport returns two uppercase letters followed by seven digits.
func (f *Faker) passport() string {
	var sb strings.Builder
	sb.WriteByte(byte('A' + f.intn(26)))
	sb.WriteByte(byte('A' + f.intn(26)))
	sb.WriteString(f.digits("#######"))
	return sb.String()
}

// =============================================================================
// Address and company
// =============================================================================

func (f *Faker) address() string {
	return fmt.Sprintf(f.data.addressFormat,
		strconv.Itoa(f.between(1, 9999)),
		f.pick(f.data.streets),
		f.digits(f.data.postcodeFormat),
		f.pick(f.data.cities))
}

// coordinate returns a value in [-limit, limit] with six decimals.
func (f *Faker) coordinate(limit int) float64 {
	micro := f.intn(2*limit*1_000_000+1) - limit*1_000_000
	return float64(micro) / 1_000_000
}

func (f *Faker) company() string {
	return f.pick(f.data.lastNames) + " " + f.pick(f.data.companySuffixes)
}

func (f *Faker) catchPhrase() string {
	return f.pick(catchPhraseAdjectives) + " " + f.pick(catchPhraseNouns)
}

func (f *Faker) productName() string {
	return f.pick(productAdjectives) + " " + f.pick(productMaterials) + " " + f.pick(productNouns)
}

// =============================================================================
// Internet
// =============================================================================

func (f *Faker) domainName() string {
	return f.pick(domainWords) + "." + f.pick(topLevelDomains)
}

func (f *Faker) url() string {
	u := "https://www." + f.domainName() + "/"
	if p := f.pick(urlPaths); p != "" {
		u += p + "/"
	}
	return u
}

func (f *Faker) ipv4() string {
	return fmt.Sprintf("%d.%d.%d.%d", f.intn(256), f.intn(256), f.intn(256), f.intn(256))
}

// ipv6 returns an address in full expanded notation.
func (f *Faker) ipv6() string {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04x", f.intn(65536))
	}
	return strings.Join(groups, ":")
}

func (f *Faker) macAddress() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		f.intn(256), f.intn(256), f.intn(256), f.intn(256), f.intn(256), f.intn(256))
}

// =============================================================================
// Finance
// =============================================================================

// creditCard returns a Luhn-valid 16-digit number with a Visa prefix.
func (f *Faker) creditCard() string {
	digits := make([]int, 16)
	digits[0] = 4
	for i := 1; i < 15; i++ {
		digits[i] = f.intn(10)
	}

	// In a 16-digit number every digit at an even index sits at an odd
	// position from the right and is doubled.
	sum := 0
	for i := 0; i < 15; i++ {
		d := digits[i]
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	digits[15] = (10 - sum%10) % 10

	var sb strings.Builder
	for _, d := range digits {
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}

// iban returns a structurally plausible IBAN for the locale's country,
// or a British one when the country has no layout.
func (f *Faker) iban() string {
	c, ok := ibanCountries[f.data.countryCode]
	if !ok {
		c = ibanCountries["GB"]
	}

	var sb strings.Builder
	sb.WriteString(c.code)
	sb.WriteString(strconv.Itoa(f.between(10, 99)))
	sb.WriteString(c.bank)
	sb.WriteString(f.digits(strings.Repeat("#", c.length-len(c.code)-2-len(c.bank))))
	return sb.String()
}

// =============================================================================
// Text
// =============================================================================

func (f *Faker) sentence(words int) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = f.pick(f.data.words)
	}
	parts[0] = f.titler.String(parts[0])
	return strings.Join(parts, " ") + "."
}

func (f *Faker) paragraph(sentences int) string {
	parts := make([]string, sentences)
	for i := range parts {
		parts[i] = f.sentence(f.between(4, 9))
	}
	return strings.Join(parts, " ")
}

// asciiWords returns the locale's words transliterated for use in slugs
// and file names.
func (f *Faker) asciiWords() []string {
	out := make([]string, len(f.data.words))
	for i, w := range f.data.words {
		out[i] = ascii(w)
	}
	return out
}

// =============================================================================
// Dates and identifiers
// =============================================================================

func (f *Faker) dateTime() time.Time {
	span := dateWindowEnd.Unix() - dateWindowStart.Unix()
	// Split the draw so it fits IntN on 32-bit platforms.
	days := int64(f.intn(int(span / 86400)))
	secs := int64(f.intn(86400))
	return dateWindowStart.Add(time.Duration(days*86400+secs) * time.Second)
}

// uuid4 draws the UUID bytes from the Faker's source.
func (f *Faker) uuid4() string {
	id, err := uuid.NewRandomFromReader(f)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ascii lower-cases s and transliterates or drops non-ASCII letters.
func ascii(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			sb.WriteRune(r)
		case transliterate[r] != "":
			sb.WriteString(transliterate[r])
		}
	}
	if sb.Len() == 0 {
		return "user"
	}
	return sb.String()
}
