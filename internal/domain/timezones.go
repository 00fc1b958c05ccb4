package domain

// Timezone associe un libellé lisible à un nom IANA pour le sélecteur.
type Timezone struct {
	Label string
	Name  string
}

func CommonTimezones() []Timezone {
	return []Timezone{
		{"UTC (Coordinated Universal Time)", "UTC"},
		{"America/New_York (EST, UTC-5)", "America/New_York"},
		{"America/Los_Angeles (PST, UTC-8)", "America/Los_Angeles"},
		{"Europe/London (BST, UTC+1)", "Europe/London"},
		{"Europe/Paris (CET, UTC+2)", "Europe/Paris"},
		{"Asia/Tokyo (JST, UTC+9)", "Asia/Tokyo"},
		{"Australia/Sydney (AEST, UTC+10)", "Australia/Sydney"},
		{"Asia/Hong_Kong (HKT, UTC+8)", "Asia/Hong_Kong"},
		{"Asia/Kolkata (IST, UTC+5:30)", "Asia/Kolkata"},
	}
}
