package fake

var maleFirstNames = []string{
	"Jan", "Piotr", "Krzysztof", "Andrzej", "Tomasz", "Paweł", "Michał",
	"Marcin", "Jakub", "Adam", "Łukasz", "Mateusz", "Grzegorz", "Wojciech",
	"Mariusz", "Dariusz", "Zbigniew", "Jerzy", "Maciej", "Kamil", "Szymon",
	"Bartłomiej", "Rafał", "Sebastian", "Stanisław", "Józef", "Henryk",
}

var femaleFirstNames = []string{
	"Anna", "Maria", "Katarzyna", "Małgorzata", "Agnieszka", "Barbara",
	"Ewa", "Krystyna", "Magdalena", "Elżbieta", "Joanna", "Aleksandra",
	"Zofia", "Monika", "Teresa", "Danuta", "Natalia", "Karolina", "Marta",
	"Beata", "Dorota", "Halina", "Jadwiga", "Julia", "Weronika", "Łucja",
}

// lastNames holds masculine and feminine forms of each surname.
var lastNames = [][2]string{
	{"Nowak", "Nowak"},
	{"Kowalski", "Kowalska"},
	{"Wiśniewski", "Wiśniewska"},
	{"Wójcik", "Wójcik"},
	{"Kowalczyk", "Kowalczyk"},
	{"Kamiński", "Kamińska"},
	{"Lewandowski", "Lewandowska"},
	{"Zieliński", "Zielińska"},
	{"Szymański", "Szymańska"},
	{"Woźniak", "Woźniak"},
	{"Dąbrowski", "Dąbrowska"},
	{"Kozłowski", "Kozłowska"},
	{"Jankowski", "Jankowska"},
	{"Mazur", "Mazur"},
	{"Kwiatkowski", "Kwiatkowska"},
	{"Krawczyk", "Krawczyk"},
	{"Piotrowski", "Piotrowska"},
	{"Grabowski", "Grabowska"},
	{"Nowakowski", "Nowakowska"},
	{"Pawłowski", "Pawłowska"},
	{"Michalski", "Michalska"},
	{"Król", "Król"},
	{"Wieczorek", "Wieczorek"},
	{"Jabłoński", "Jabłońska"},
	{"Wróbel", "Wróbel"},
	{"Majewski", "Majewska"},
	{"Olszewski", "Olszewska"},
	{"Stępień", "Stępień"},
	{"Jaworski", "Jaworska"},
	{"Malinowski", "Malinowska"},
}

var streets = []string{
	"Polna", "Leśna", "Słoneczna", "Krótka", "Szkolna", "Ogrodowa",
	"Lipowa", "Brzozowa", "Łąkowa", "Kwiatowa", "Kościelna", "Sosnowa",
	"Zielona", "Parkowa", "Akacjowa", "Kolejowa", "Mickiewicza",
	"Słowackiego", "Kościuszki", "Piłsudskiego", "Sienkiewicza",
	"Jana Pawła II", "Dworcowa", "Rynek", "Warszawska", "Krakowska",
}

var cities = []string{
	"Warszawa", "Kraków", "Łódź", "Wrocław", "Poznań", "Gdańsk", "Szczecin",
	"Bydgoszcz", "Lublin", "Białystok", "Katowice", "Gdynia", "Częstochowa",
	"Radom", "Toruń", "Sosnowiec", "Kielce", "Rzeszów", "Gliwice", "Zabrze",
	"Olsztyn", "Bielsko-Biała", "Bytom", "Zielona Góra", "Rybnik", "Opole",
	"Psia Wólka",
}

var emailDomains = []string{
	"wp.pl", "onet.pl", "interia.pl", "o2.pl", "gmail.com", "gazeta.pl",
	"poczta.fm", "tlen.pl",
}
