package domain

// Activity is the canonical record for one extracurricular offering.
type Activity struct {
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// SeedCatalog returns the fixed set of activities the registry starts with.
// MaxParticipants is advisory only; enrollment never checks it.
func SeedCatalog() map[string]Activity {
	return map[string]Activity{
		"Basketball": {
			Description:     "Team sport focusing on skills, strategy, and fitness",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Tennis Club": {
			Description:     "Individual and doubles tennis matches and training",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"james@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Painting, drawing, and sculpture techniques",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"maya@mergington.edu"},
		},
		"Music Ensemble": {
			Description:     "Learn instruments and perform in concerts",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"lucas@mergington.edu", "isabella@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop argumentation and public speaking skills",
			Schedule:        "Mondays and Fridays, 3:30 PM - 4:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"grace@mergington.edu"},
		},
		"Robotics Club": {
			Description:     "Design and build robots for competitions",
			Schedule:        "Tuesdays, Thursdays, Saturdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ryan@mergington.edu", "noah@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

func (a Activity) clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

func (a Activity) hasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
