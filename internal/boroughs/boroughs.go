// Package boroughs holds the fixed set of London boroughs the dataset reports on.
package boroughs

// The 33 boroughs in display order.
var london = []string{
	"Barking And Dagenham", "Barnet", "Bexley", "Brent", "Bromley", "Camden",
	"City Of London", "Croydon", "Ealing", "Enfield", "Greenwich", "Hackney",
	"Hammersmith And Fulham", "Haringey", "Harrow", "Havering", "Hillingdon",
	"Hounslow", "Islington", "Kensington And Chelsea", "Kingston Upon Thames",
	"Lambeth", "Lewisham", "Merton", "Newham", "Redbridge", "Richmond Upon Thames",
	"Southwark", "Sutton", "Tower Hamlets", "Waltham Forest", "Wandsworth",
	"Westminster",
}

// London returns a copy of the London borough set.
func London() []string {
	out := make([]string, len(london))
	copy(out, london)
	return out
}

// Contains reports whether name is in set
func Contains(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}
