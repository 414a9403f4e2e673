package fake

import "time"

// =============================================================================
// Shared data: Internet
// =============================================================================

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_5) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:127.0) Gecko/20100101 Firefox/127.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36 Edg/126.0.0.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Mobile Safari/537.36",
}

var topLevelDomains = []string{"com", "org", "net", "io", "dev", "info", "biz"}

var domainWords = []string{
	"acme", "globex", "initech", "umbrella", "hooli", "vandelay", "stark", "wayne",
	"cyberdyne", "tyrell", "soylent", "aperture", "massive", "oceanic", "wonka", "monarch",
}

var urlPaths = []string{"", "blog", "about", "category", "posts", "tags", "app", "search", "main", "explore"}

// =============================================================================
// Shared data: Finance
// =============================================================================

var currencyCodes = []string{
	"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY",
	"SEK", "NZD", "MXN", "SGD", "HKD", "NOK", "KRW", "TRY",
	"INR", "RUB", "BRL", "ZAR",
}

// ibanCountry is a simplified IBAN layout: country, total length and a
// bank identifier.
type ibanCountry struct {
	code   string
	length int
	bank   string
}

var ibanCountries = map[string]ibanCountry{
	"GB": {"GB", 22, "WEST"},
	"DE": {"DE", 22, "DEUT"},
	"FR": {"FR", 27, "BNPA"},
	"ES": {"ES", 24, "BBVA"},
	"IT": {"IT", 27, "UCRI"},
	"NL": {"NL", 18, "ABNA"},
	"RU": {"RU", 33, "SBER"},
}

// =============================================================================
// Shared data: Company and jobs
// =============================================================================

var catchPhraseAdjectives = []string{
	"Adaptive", "Balanced", "Centralized", "Cross-platform", "Distributed", "Ergonomic",
	"Integrated", "Intuitive", "Multi-layered", "Proactive", "Reactive", "Scalable",
}

var catchPhraseNouns = []string{
	"framework", "middleware", "paradigm", "toolset", "interface", "workforce",
	"architecture", "pipeline", "platform", "solution", "hub", "protocol",
}

var jobLevels = []string{"Senior", "Junior", "Lead", "Principal", "Staff"}

var jobFields = []string{
	"Software", "Data", "Product", "Marketing", "Sales",
	"Operations", "Security", "Infrastructure", "Quality", "Research",
}

var jobRoles = []string{
	"Engineer", "Analyst", "Manager", "Designer", "Architect",
	"Consultant", "Developer", "Specialist", "Coordinator", "Strategist",
}

// =============================================================================
// Shared data: Commerce
// =============================================================================

var colorNames = []string{
	"Crimson", "Azure", "Emerald", "Ivory", "Coral",
	"Indigo", "Amber", "Jade", "Scarlet", "Turquoise",
	"Lavender", "Maroon", "Teal", "Orchid", "Cyan",
	"Magenta", "Gold", "Silver", "Pearl", "Sapphire",
}

var productAdjectives = []string{
	"Rustic", "Elegant", "Handcrafted", "Refined", "Sleek",
	"Practical", "Modern", "Vintage", "Premium", "Compact",
}

var productMaterials = []string{
	"Steel", "Wooden", "Granite", "Rubber", "Cotton",
	"Leather", "Bamboo", "Bronze", "Ceramic", "Glass",
}

var productNouns = []string{
	"Chair", "Table", "Lamp", "Keyboard", "Mouse",
	"Backpack", "Watch", "Wallet", "Headphones", "Mug",
}

// =============================================================================
// Shared data: Files
// =============================================================================

var mimeTypes = []string{
	"application/json", "application/xml", "application/pdf",
	"application/zip", "application/gzip", "application/octet-stream",
	"text/html", "text/plain", "text/css", "text/csv",
	"image/png", "image/jpeg", "image/gif", "image/svg+xml", "image/webp",
	"audio/mpeg", "audio/wav", "video/mp4", "video/webm",
}

var fileExtensions = []string{
	"pdf", "jpg", "png", "gif", "docx", "xlsx", "csv", "txt",
	"html", "css", "js", "json", "xml", "zip", "gz", "mp3",
	"mp4", "wav", "mov", "svg", "md", "yaml", "toml", "log",
}

// =============================================================================
// Shared data: Dates
// =============================================================================

// Dates are drawn from a fixed window so seeded output does not drift with
// the wall clock.
var (
	dateWindowStart = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	dateWindowEnd   = time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
)
