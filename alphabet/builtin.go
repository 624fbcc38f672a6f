package alphabet

// Built-in language identifiers.
const (
	LangEnglish = "english"
	LangHebrew  = "hebrew"
)

// Space is the separator symbol of both built-in alphabets.
const Space = ' '

var (
	// English is a..z followed by the space separator (27 symbols).
	English = MustNew(LangEnglish, []rune("abcdefghijklmnopqrstuvwxyz "), Space)

	// Hebrew is the 22 letters with the final forms of mem, nun, pe and tsadi
	// placed right after their base letter, then the space separator
	// (27 symbols). Final kaf is not part of the table.
	Hebrew = MustNew(LangHebrew, []rune("אבגדהוזחטיכלמםנןסעפףצץקרשת "), Space)
)
