package report

import "strings"

// Kind is the semantic category of a movement. The movement catalog is open
// ended and user editable, so classification matches keywords in the free
// text description and the short code instead of relying on catalog IDs.
type Kind int

const (
	KindUnclassified Kind = iota
	KindEntry
	KindExit
	KindBreakStart
	KindBreakEnd
)

func (k Kind) String() string {
	switch k {
	case KindEntry:
		return "entry"
	case KindExit:
		return "exit"
	case KindBreakStart:
		return "break-start"
	case KindBreakEnd:
		return "break-end"
	default:
		return "unclassified"
	}
}

// Keyword/code vocabulary. Kept as data so the list can evolve without
// touching the aggregation logic.
var (
	entryKeywords  = []string{"entrada", "ingreso"}
	entryCode      = "ENT"
	exitKeyword    = "salida"
	exitCode       = "SAL"
	breakKeyword   = "break"
	breakStartKey  = "inicio"
	breakStartCode = "EBR"
	breakEndKey    = "fin"
	breakEndCode   = "FBR"
)

// Classify maps a movement's description and code to a Kind. Matching is
// case-insensitive; unknown input is KindUnclassified, never an error.
// Break kinds are checked first because the seeded break movements
// ("Entrada Break", "Fin Break") also contain entry/exit keywords.
func Classify(description, code string) Kind {
	desc := strings.ToLower(description)
	code = strings.ToUpper(strings.TrimSpace(code))

	if strings.Contains(desc, breakKeyword) {
		if strings.Contains(desc, breakStartKey) || code == breakStartCode {
			return KindBreakStart
		}
		if strings.Contains(desc, breakEndKey) || code == breakEndCode {
			return KindBreakEnd
		}
	}

	for _, kw := range entryKeywords {
		if strings.Contains(desc, kw) {
			return KindEntry
		}
	}
	if code == entryCode {
		return KindEntry
	}

	if strings.Contains(desc, exitKeyword) || code == exitCode {
		return KindExit
	}

	return KindUnclassified
}
