package playername

// worldNames is the static set of known server names that the client can
// concatenate onto a cross-world player name with no separating space.
// Grouped by data center for maintainability; matching is case-insensitive.
var worldNames = []string{
	// Aether
	"Adamantoise", "Cactuar", "Faerie", "Gilgamesh", "Jenova", "Midgardsormr",
	"Sargatanas", "Siren",
	// Primal
	"Behemoth", "Excalibur", "Exodus", "Famfrit", "Hyperion", "Lamia",
	"Leviathan", "Ultros",
	// Crystal
	"Balmung", "Brynhildr", "Coeurl", "Diabolos", "Goblin", "Malboro",
	"Mateus", "Zalera",
	// Dynamis
	"Cuchulainn", "Golem", "Halicarnassus", "Kraken", "Maduin", "Marilith",
	"Rafflesia", "Seraph",
	// Chaos
	"Cerberus", "Louisoix", "Moogle", "Omega", "Phantom", "Ragnarok",
	"Sagittarius", "Spriggan",
	// Light
	"Alpha", "Lich", "Odin", "Phoenix", "Raiden", "Shiva", "Twintania",
	"Zodiark",
	// Elemental
	"Aegis", "Atomos", "Carbuncle", "Garuda", "Gungnir", "Kujata",
	"Tonberry", "Typhon",
	// Gaia
	"Alexander", "Bahamut", "Durandal", "Fenrir", "Ifrit", "Ridill",
	"Tiamat", "Ultima",
	// Mana
	"Anima", "Asura", "Chocobo", "Hades", "Ixion", "Masamune", "Pandaemonium",
	"Titan",
	// Meteor
	"Belias", "Mandragora", "Ramuh", "Shinryu", "Unicorn", "Valefor",
	"Yojimbo", "Zeromus",
	// Materia
	"Bismarck", "Ravana", "Sephirot", "Sophia", "Zurvan",
}
