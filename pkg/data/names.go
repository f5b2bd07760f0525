package data

import "math/rand"

// RivalNames contains the names painted on rival riders' leathers
var RivalNames = struct {
	First []string
	Last  []string
}{
	First: []string{
		"Axle", "Biff", "Natasha", "Slater", "Viper", "Rocco", "Sergio", "Jade",
		"Nikki", "Dirk", "Zeke", "Shiloh", "Tina", "Hank", "Luna", "Rex",
		"Cruz", "Dolly", "Spike", "Wren",
	},
	Last: []string{
		"Chrome", "Blackwell", "Ramirez", "Kowalski", "Stone", "Vance", "Okafor",
		"Lindqvist", "Tanaka", "Moreau", "Fitzgerald", "Nakamura", "Petrov",
		"Delgado", "Hart",
	},
}

// RivalName draws a full name from rng
func RivalName(rng *rand.Rand) string {
	return RivalNames.First[rng.Intn(len(RivalNames.First))] + " " +
		RivalNames.Last[rng.Intn(len(RivalNames.Last))]
}
