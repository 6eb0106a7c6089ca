package germsmash

// Classmate portraits drawn at the center of the play area. All rows of a
// portrait have the same width.
var portraits = [][]string{
	{
		" .---. ",
		"( o o )",
		" ( ^ ) ",
		"/|   |\\",
	},
	{
		" ,,,,, ",
		"( - - )",
		" ( o ) ",
		"/|___|\\",
	},
	{
		" _____ ",
		"|(o o)|",
		" ( u ) ",
		" /| |\\ ",
	},
	{
		" ~~~~~ ",
		"{ ^ ^ }",
		" ( - ) ",
		"/|   |\\",
	},
	{
		"  ___  ",
		" (o,o) ",
		"( =v= )",
		" /| |\\ ",
	},
	{
		" ##### ",
		"# @ @ #",
		" ( ~ ) ",
		"/|===|\\",
	},
}

func portraitSize(p []string) (w, h int) {
	if len(p) == 0 {
		return 0, 0
	}
	return len([]rune(p[0])), len(p)
}
