package device

// Position describes where a camera faces relative to the user.
type Position int

const (
	PositionUnspecified Position = iota
	PositionFront
	PositionBack
)

func (p Position) String() string {
	switch p {
	case PositionFront:
		return "front"
	case PositionBack:
		return "back"
	default:
		return "unspecified"
	}
}

// Class describes the hardware category of a capture device.
type Class int

const (
	ClassExternal Class = iota // external UVC camera
	ClassBuiltInWideAngle      // built-in wide-angle camera
)

func (c Class) String() string {
	switch c {
	case ClassBuiltInWideAngle:
		return "built-in"
	default:
		return "external"
	}
}

// Device represents one physical or virtual camera exposed by the OS.
// Identity is the ID; Name, Class and Position are descriptive and may
// change between directory queries without the identity changing. The
// application never constructs devices itself outside of the directory.
type Device struct {
	ID       string
	Name     string
	Class    Class
	Position Position
}

// Equal reports identity equality (ID only).
func (d Device) Equal(o Device) bool { return d.ID == o.ID }

// List is an ordered sequence of devices, discovery order preserved.
// It is refreshed wholesale on every hot-plug notification and never
// mutated incrementally.
type List []Device

// Contains reports whether the list holds a device with the given ID.
func (l List) Contains(id string) bool {
	for _, d := range l {
		if d.ID == id {
			return true
		}
	}
	return false
}

// Dedup returns a copy of the list with duplicate IDs removed, keeping
// the first occurrence so discovery order is stable.
func (l List) Dedup() List {
	if len(l) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(l))
	out := make(List, 0, len(l))
	for _, d := range l {
		if _, ok := seen[d.ID]; ok {
			continue
		}
		seen[d.ID] = struct{}{}
		out = append(out, d)
	}
	return out
}

// SameIDs reports whether two lists contain the same IDs in the same order.
func SameIDs(a, b List) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
