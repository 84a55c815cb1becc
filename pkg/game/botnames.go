package game

// defaultArtificialPlayerNames is the fixed 30-entry catalog bots draw a
// display name from when the caller does not supply one, verbatim from
// original_source/game_service/src/game/player_manager.rs.
var defaultArtificialPlayerNames = []string{
	"Dionysus", "Asclepius",
	"Hephæstus",
	"Rainbow Dash", "Twilight Sparkle", "Fluttershy",
	"Hans", "Günter", "Klaus",
	"Megatron", "Ultra Magnus", "Wheeljack",
	"James Bond", "Ethan Hunt", "Jason Borne",
	"Salacious B. Crumb", "Logray",
	"HK-47",
	"Captain Quark", "Chairman Drek", "Mr. Zurkon",
	"Mike Wazowski", "Henry J. Waternoose III", "George Sanderson",
	"Æthelred the Unready", "Edward Longshanks",
	"Henry The Accountant", "Monty P. Moneybags",
	"The Hash Slinging Slasher", "Perch Perkins",
}
