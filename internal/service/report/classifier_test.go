package report

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		description string
		code        string
		want        Kind
	}{
		{"Entrada", "ENT", KindEntry},
		{"entrada", "", KindEntry},
		{"Ingreso turno mañana", "", KindEntry},
		{"", "ENT", KindEntry},
		{"", "ent", KindEntry},
		{"Salida", "SAL", KindExit},
		{"salida anticipada", "", KindExit},
		{"", "SAL", KindExit},
		{"Entrada Break", "EBR", KindBreakStart},
		{"Inicio de break", "", KindBreakStart},
		{"Fin Break", "FBR", KindBreakEnd},
		{"break fin de turno", "", KindBreakEnd},
		{"", "", KindUnclassified},
		{"Permiso médico", "PER", KindUnclassified},
		{"break", "", KindUnclassified},
	}
	for _, c := range cases {
		got := Classify(c.description, c.code)
		if got != c.want {
			t.Errorf("Classify(%q, %q) = %v, want %v", c.description, c.code, got, c.want)
		}
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindEntry:        "entry",
		KindExit:         "exit",
		KindBreakStart:   "break-start",
		KindBreakEnd:     "break-end",
		KindUnclassified: "unclassified",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
