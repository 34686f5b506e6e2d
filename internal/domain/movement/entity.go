package movement

// Movement states
const (
	StateActive   = "ACTIVO"
	StateInactive = "INACTIVO"
)

// Movement is a catalog entry describing a kind of attendance mark, e.g.
// {Entrada, ENT} or {Fin Break, FBR}. The catalog is open ended; the report
// classifies entries by keyword rather than by ID.
type Movement struct {
	ID          int64
	Description string
	Code        string
	State       string
}

// Default catalog seeded when the table is empty, mirroring the marks the
// mobile client offers.
func DefaultCatalog() []Movement {
	return []Movement{
		{Description: "Entrada", Code: "ENT", State: StateActive},
		{Description: "Salida", Code: "SAL", State: StateActive},
		{Description: "Entrada Break", Code: "EBR", State: StateActive},
		{Description: "Fin Break", Code: "FBR", State: StateActive},
	}
}
