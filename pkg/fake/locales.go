package fake

import "golang.org/x/text/language"

// localeData holds the word lists that differ between locales.
type localeData struct {
	firstNames      []string
	lastNames       []string
	cities          []string
	streets         []string
	countries       []string
	countryCode     string
	companySuffixes []string
	phoneFormats    []string
	postcodeFormat  string
	// addressFormat is filled with number, street, postcode and city.
	addressFormat string
	words         []string
	emailDomains  []string
}

var locales = map[language.Tag]*localeData{
	language.AmericanEnglish: {
		firstNames: []string{
			"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
			"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
		},
		lastNames: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
			"Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor", "Thomas", "Moore", "Jackson",
		},
		cities: []string{
			"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Seattle",
			"Denver", "Boston", "Austin", "Portland", "Atlanta", "Miami",
		},
		streets: []string{
			"Main St", "Oak Ave", "Elm St", "Park Blvd", "Cedar Ln", "Maple Dr", "Pine Rd", "Lake Way",
		},
		countries:       []string{"United States", "Canada", "Mexico", "United Kingdom", "Australia", "Japan"},
		countryCode:     "US",
		companySuffixes: []string{"Inc", "LLC", "Group", "Ltd", "and Sons"},
		phoneFormats:    []string{"+1-###-###-####", "(###) ###-####", "###.###.####"},
		postcodeFormat:  "#####",
		addressFormat:   "%[1]s %[2]s, %[4]s %[3]s",
		words: []string{
			"alpha", "beta", "gamma", "delta", "system", "network", "future", "value",
			"market", "energy", "simple", "bright", "quick", "silent", "river", "stone",
		},
		emailDomains: []string{"example.com", "example.org", "example.net", "mail.test"},
	},
	language.German: {
		firstNames: []string{
			"Lukas", "Anna", "Leon", "Lea", "Finn", "Hannah", "Jonas", "Mia",
			"Paul", "Laura", "Felix", "Sophie", "Max", "Emma", "Elias", "Lena",
		},
		lastNames: []string{
			"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker",
			"Schulz", "Hoffmann", "Koch", "Richter", "Klein", "Wolf", "Neumann", "Schwarz",
		},
		cities: []string{
			"Berlin", "Hamburg", "München", "Köln", "Frankfurt am Main", "Stuttgart",
			"Düsseldorf", "Leipzig", "Dresden", "Hannover", "Nürnberg", "Bremen",
		},
		streets: []string{
			"Hauptstraße", "Schulstraße", "Gartenstraße", "Bahnhofstraße", "Dorfstraße", "Bergstraße",
		},
		countries:       []string{"Deutschland", "Österreich", "Schweiz", "Frankreich", "Italien", "Polen"},
		countryCode:     "DE",
		companySuffixes: []string{"GmbH", "AG", "KG", "GmbH & Co. KG", "e.V."},
		phoneFormats:    []string{"+49 (0) ### ######", "0### ######", "+49-###-#######"},
		postcodeFormat:  "#####",
		addressFormat:   "%[2]s %[1]s, %[3]s %[4]s",
		words: []string{
			"haus", "baum", "wasser", "licht", "stadt", "zeit", "weg", "feld",
			"berg", "fluss", "wort", "bild", "spiel", "kraft", "stein", "wald",
		},
		emailDomains: []string{"example.de", "beispiel.de", "mail.test"},
	},
	language.French: {
		firstNames: []string{
			"Gabriel", "Louise", "Raphaël", "Jade", "Léo", "Emma", "Louis", "Alice",
			"Lucas", "Chloé", "Hugo", "Léa", "Arthur", "Manon", "Jules", "Camille",
		},
		lastNames: []string{
			"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit", "Durand",
			"Leroy", "Moreau", "Simon", "Laurent", "Lefebvre", "Michel", "Garcia", "Roux",
		},
		cities: []string{
			"Paris", "Marseille", "Lyon", "Toulouse", "Nice", "Nantes",
			"Strasbourg", "Montpellier", "Bordeaux", "Lille", "Rennes", "Reims",
		},
		streets: []string{
			"rue de la Paix", "avenue Victor Hugo", "boulevard Saint-Michel", "rue du Moulin", "place de la Gare",
		},
		countries:       []string{"France", "Belgique", "Suisse", "Canada", "Espagne", "Italie"},
		countryCode:     "FR",
		companySuffixes: []string{"SA", "SARL", "SAS", "et Fils"},
		phoneFormats:    []string{"+33 # ## ## ## ##", "0# ## ## ## ##"},
		postcodeFormat:  "#####",
		addressFormat:   "%s %s, %s %s",
		words: []string{
			"maison", "arbre", "eau", "lumière", "ville", "temps", "chemin", "champ",
			"montagne", "rivière", "mot", "image", "jeu", "force", "pierre", "forêt",
		},
		emailDomains: []string{"example.fr", "exemple.fr", "mail.test"},
	},
	language.Spanish: {
		firstNames: []string{
			"Hugo", "Lucía", "Martín", "Sofía", "Pablo", "María", "Daniel", "Paula",
			"Alejandro", "Valeria", "Mateo", "Carmen", "Diego", "Elena", "Álvaro", "Julia",
		},
		lastNames: []string{
			"García", "Rodríguez", "González", "Fernández", "López", "Martínez", "Sánchez", "Pérez",
			"Gómez", "Martín", "Jiménez", "Ruiz", "Hernández", "Díaz", "Moreno", "Muñoz",
		},
		cities: []string{
			"Madrid", "Barcelona", "Valencia", "Sevilla", "Zaragoza", "Málaga",
			"Murcia", "Palma", "Bilbao", "Alicante", "Córdoba", "Valladolid",
		},
		streets: []string{
			"Calle Mayor", "Avenida de la Constitución", "Calle Real", "Plaza de España", "Calle del Sol",
		},
		countries:       []string{"España", "México", "Argentina", "Colombia", "Chile", "Perú"},
		countryCode:     "ES",
		companySuffixes: []string{"S.A.", "S.L.", "y Asociados", "Hermanos"},
		phoneFormats:    []string{"+34 ### ### ###", "9## ### ###", "6## ## ## ##"},
		postcodeFormat:  "#####",
		addressFormat:   "%[2]s, %[1]s, %[3]s %[4]s",
		words: []string{
			"casa", "árbol", "agua", "luz", "ciudad", "tiempo", "camino", "campo",
			"montaña", "río", "palabra", "imagen", "juego", "fuerza", "piedra", "bosque",
		},
		emailDomains: []string{"example.es", "ejemplo.es", "mail.test"},
	},
	language.Russian: {
		firstNames: []string{
			"Александр", "Анна", "Дмитрий", "Мария", "Максим", "Елена", "Иван", "Ольга",
			"Сергей", "Наталья", "Андрей", "Татьяна", "Алексей", "Екатерина", "Михаил", "Ирина",
		},
		lastNames: []string{
			"Иванов", "Смирнов", "Кузнецов", "Попов", "Васильев", "Петров", "Соколов", "Михайлов",
			"Новиков", "Фёдоров", "Морозов", "Волков", "Алексеев", "Лебедев", "Семёнов", "Егоров",
		},
		cities: []string{
			"Москва", "Санкт-Петербург", "Новосибирск", "Екатеринбург", "Казань", "Нижний Новгород",
			"Челябинск", "Самара", "Омск", "Ростов-на-Дону", "Уфа", "Красноярск",
		},
		streets: []string{
			"ул. Ленина", "ул. Мира", "ул. Садовая", "пр. Победы", "ул. Лесная", "ул. Школьная",
		},
		countries:       []string{"Россия", "Беларусь", "Казахстан", "Армения", "Грузия", "Латвия"},
		countryCode:     "RU",
		companySuffixes: []string{"ООО", "АО", "ПАО", "ИП"},
		phoneFormats:    []string{"+7 (9##) ###-##-##", "8 (9##) ###-##-##"},
		postcodeFormat:  "######",
		addressFormat:   "%[2]s, д. %[1]s, %[3]s %[4]s",
		words: []string{
			"дом", "дерево", "вода", "свет", "город", "время", "путь", "поле",
			"гора", "река", "слово", "образ", "игра", "сила", "камень", "лес",
		},
		emailDomains: []string{"example.ru", "primer.ru", "mail.test"},
	},
}

// transliterate maps non-ASCII letters to ASCII for email local parts and
// user names.
var transliterate = map[rune]string{
	'ä': "ae", 'ö': "oe", 'ü': "ue", 'ß': "ss", 'é': "e", 'è': "e", 'ë': "e",
	'á': "a", 'í': "i", 'ó': "o", 'ú': "u", 'ñ': "n", 'ç': "c", 'ï': "i",
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}
