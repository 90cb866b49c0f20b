package orgname

// Built-in vocabulary. Adjective forms are listed in the same order for every
// gender so the tables are easy to compare.
var defaultNouns = map[string]GenderClass{
	"Fundacja":   Feminine,
	"Rada":       Feminine,
	"Urząd":      Masculine,
	"Zarząd":     Masculine,
	"Delegatura": Feminine,
	"Poradnia":   Feminine,
	"Szpital":    Masculine,
	"Ogród":      Masculine,
	"Koło":       Neuter,
	"Obwód":      Masculine,
}

var defaultPredicate1 = map[GenderClass][]string{
	Masculine: {
		"Krajowy", "Wojewódzki", "Powiatowy", "Regionalny",
		"Wielkopolski", "Osiedlowy", "Stołeczny",
	},
	Feminine: {
		"Krajowa", "Wojewódzka", "Powiatowa", "Regionalna",
		"Wielkopolska", "Osiedlowa", "Stołeczna",
	},
	Neuter: {
		"Krajowe", "Wojewódzkie", "Powiatowe", "Regionalne",
		"Wielkopolskie", "Osiedlowe", "Stołeczne",
	},
}

var defaultPredicate2 = map[GenderClass][]string{
	Masculine: {
		"Organizacyjny", "Rejestrowy", "Egzekutywny", "Wspierający",
		"Transakcyjny", "Związkowy", "Zbiorczy",
	},
	Feminine: {
		"Organizacyjna", "Rejestrowa", "Egzekutywna", "Wspierająca",
		"Transakcyjna", "Związkowa", "Zbiorcza",
	},
	Neuter: {
		"Organizacyjne", "Rejestrowe", "Egzekutywne", "Wspierające",
		"Transakcyjne", "Związkowe", "Zbiorcze",
	},
}

var defaultProperNames = []string{
	`"Wspiera się"`, `"Totuus"`, `"Zawsze Razem"`, `"W Kupie Siła"`,
	`"Al Capone"`, `"UKF"`, `"Smak Miesiąca"`,
}
