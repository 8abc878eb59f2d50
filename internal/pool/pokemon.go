package pool

// Pokemon returns a copy of the Pokémon name pool.
// Names are display-cased; the sprite client lowercases them for PokéAPI.
func Pokemon() []string {
	out := make([]string, len(pokemon))
	copy(out, pokemon)
	return out
}

// Curated for ambiguity: legendaries, psychics and anything ending in a
// suffix that also shows up on a pharmacy shelf.
var pokemon = []string{
	"Abra", "Absol", "Alakazam", "Arceus", "Articuno",
	"Beldum", "Bronzor", "Celebi", "Chimecho", "Cresselia",
	"Darkrai", "Dialga", "Diancie", "Dratini", "Drowzee",
	"Espeon", "Gallade", "Gardevoir", "Glalie", "Gothitelle",
	"Groudon", "Haxorus", "Hoopa", "Hydreigon", "Hypno",
	"Jirachi", "Kyogre", "Kyurem", "Latias", "Latios",
	"Lugia", "Lunala", "Magearna", "Malamar", "Manaphy",
	"Marshadow", "Metagross", "Mew", "Mewtwo", "Milotic",
	"Naganadel", "Necrozma", "Nihilego", "Ninjask", "Noivern",
	"Palkia", "Pheromosa", "Porygon", "Ralts", "Rayquaza",
	"Regice", "Regigigas", "Registeel", "Reshiram", "Sableye",
	"Salamence", "Silvally", "Solgaleo", "Stakataka", "Suicune",
	"Sylveon", "Terrakion", "Toxapex", "Umbreon", "Uxie",
	"Victini", "Virizion", "Volcarona", "Xerneas", "Yveltal",
	"Zacian", "Zamazenta", "Zekrom", "Zeraora", "Zoroark",
	"Gengar", "Haunter", "Lucario", "Riolu", "Scizor",
	"Tyranitar", "Dragonite", "Eevee", "Pikachu", "Charizard",
	"Blastoise", "Venusaur", "Machamp", "Gyarados",
}
