package vocab

import "strings"

// DisplayTerm converts a folder or file base name to its display form by
// replacing every underscore with a space: "Brain_Structures" becomes
// "Brain Structures".
func DisplayTerm(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// FolderName converts a display term back to its on-disk form by replacing
// every space with an underscore. Terms whose display form legitimately
// contains an underscore do not round-trip; such terms need manual renames
// on both sides of a synchronized pair.
func FolderName(term string) string {
	return strings.ReplaceAll(term, " ", "_")
}
