package model

// DiffKind classifies a DiffRecord.
type DiffKind int

const (
	// OnlyInA marks a path present in the first document only.
	OnlyInA DiffKind = iota
	// OnlyInB marks a path present in the second document only.
	OnlyInB
	// ValueChanged marks a path whose values differ (including kind mismatches).
	ValueChanged
	// ListLengthChanged marks two sequences of different length.
	ListLengthChanged
	// ListElementChanged marks two non-mapping elements at the same index that differ.
	ListElementChanged
)

var diffKindNames = []string{"only-in-a", "only-in-b", "value-changed", "list-length-changed", "list-element-changed"}

func (k DiffKind) String() string {
	if k < 0 || int(k) >= len(diffKindNames) {
		return "unknown"
	}

	return diffKindNames[k]
}

// DiffRecord is one structural difference between two documents.
//
// Which fields are set depends on Kind:
//   - OnlyInA: Path, A
//   - OnlyInB: Path, B
//   - ValueChanged: Path, A, B
//   - ListLengthChanged: Path, LenA, LenB
//   - ListElementChanged: Path (the list), Index, A, B
type DiffRecord struct {
	Kind  DiffKind
	Path  Path
	Index int
	A     Node
	B     Node
	LenA  int
	LenB  int
}

// Location renders the address the record refers to. For list element
// changes this includes the element index.
func (d DiffRecord) Location() string {
	if d.Kind == ListElementChanged {
		return d.Path.Append(Index(d.Index)).String()
	}

	return d.Path.String()
}
